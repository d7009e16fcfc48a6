package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tagcount/internal/adapters/sqlite"
	"tagcount/internal/application/commands"
	"tagcount/internal/domain"
)

func newHistoryCommand(opts *options) *cobra.Command {
	var year, limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List saved reports",
		Long: `List reports saved with --history, newest first.

Examples:
  tagcount history
  tagcount history --year 1950 --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := sqlite.Open(opts.cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			listCmd := commands.NewListRunsCommand(store, year, limit)
			runs, err := listCmd.Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(w, "No saved runs")
				return nil
			}

			for _, r := range runs {
				fmt.Fprintf(w, "#%d  %s  %d  ", r.ID, r.SavedAt.Format(time.DateTime), r.Report.Year)
				for _, tag := range domain.NamedTags {
					fmt.Fprintf(w, "%s=%d ", tag, r.Report.Counts.Get(tag))
				}
				fmt.Fprintf(w, "X=%d  %s -> %s\n", r.Report.Counts.X, r.Report.ManifestPath, r.OutputPath)
			}
			return nil
		},
	}

	historyCmd.Flags().IntVar(&year, "year", 0, "only list runs for this year")
	historyCmd.Flags().IntVar(&limit, "limit", commands.DefaultHistoryLimit, "maximum number of runs")

	return historyCmd
}
