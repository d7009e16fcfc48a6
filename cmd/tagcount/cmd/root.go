package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tagcount/internal/adapters/clipboard"
	"tagcount/internal/adapters/editor"
	"tagcount/internal/adapters/filesystem"
	"tagcount/internal/adapters/sqlite"
	"tagcount/internal/adapters/tui"
	"tagcount/internal/application"
	"tagcount/internal/application/commands"
	"tagcount/internal/config"
	"tagcount/internal/domain"
	"tagcount/internal/logging"
	"tagcount/internal/ports"
)

const usageLine = "tagcount <manifest-file> <output-file> <target-year>"

// options holds flag values and the resolved config for one invocation
type options struct {
	configPath string
	logLevel   string
	logFormat  string
	dbPath     string

	progress bool
	history  bool
	copy     bool
	open     bool

	viewer ports.ReportViewer
	cfg    *config.Config
}

// NewRootCommand builds the tagcount command tree
func NewRootCommand() *cobra.Command {
	opts := &options{viewer: editor.NewOpener()}

	rootCmd := &cobra.Command{
		Use:   usageLine,
		Short: "Count part-of-speech tagged word forms in n-gram files for one year",
		Long: `tagcount reads a manifest listing tagged n-gram frequency files, one path
per line, and counts how many records of each part-of-speech tag appear in
the target year with a volume count of at least 2.

Each data file holds whitespace-separated records of five fields:

  <word_TAG> <year> <volume_count> <document_count> <extra>

Files ending in .gz are decompressed on the fly. The report is written to
the output file.

Examples:
  tagcount files.txt report-1950.txt 1950
  tagcount --progress --history files.txt report-1950.txt 1950`,
		Args:          usageArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip initialization for help commands
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runCount(cmd, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format (text, json)")
	pf.StringVar(&opts.dbPath, "db", config.DefaultHistoryPath(), "path to the run history database")

	rootCmd.Flags().BoolVarP(&opts.progress, "progress", "p", false, "show a progress bar and summary on stderr")
	rootCmd.Flags().BoolVar(&opts.history, "history", false, "save the report to the run history database")
	rootCmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the report to the clipboard")
	rootCmd.Flags().BoolVar(&opts.open, "open", false, "open the report in $EDITOR when done")

	rootCmd.AddCommand(newHistoryCommand(opts))

	return rootCmd
}

// usageArgs requires exactly the three positional arguments
func usageArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: expected 3 arguments, got %d\nProper usage is %s", application.ErrUsage, len(args), usageLine)
	}
	return nil
}

// load resolves config from file and environment, lets explicitly set
// flags win, and sets up logging
func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = o.logFormat
	}
	if flags.Changed("db") {
		cfg.History.Path = o.dbPath
		cfg.History.Enabled = true
	}
	if flags.Changed("history") {
		cfg.History.Enabled = o.history
	}
	if flags.Changed("progress") {
		cfg.Progress = o.progress
	}
	o.cfg = cfg

	logging.SetupWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	return nil
}

func (o *options) runCount(cmd *cobra.Command, args []string) error {
	manifestPath, outputPath := args[0], args[1]
	year, err := application.ParseYear(args[2])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out, err := filesystem.CreateReportFile(outputPath)
	if err != nil {
		return &application.FileError{Op: application.OpOutput, Path: outputPath, Err: err}
	}
	defer out.Close()

	sinks := []ports.ReportSink{out}

	if o.cfg.History.Enabled {
		store, err := sqlite.Open(o.cfg.History.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		store.OutputPath = outputPath
		sinks = append(sinks, store)
	}

	if o.copy {
		if clipboard.Available() {
			sinks = append(sinks, clipboard.NewSink())
		} else {
			slog.Warn("clipboard not available, skipping copy")
		}
	}

	corpus := filesystem.NewCorpus()
	countCmd := commands.NewCountTagsCommand(corpus, corpus, manifestPath, year).
		WithSinks(sinks...).
		WithLogger(logging.WithComponent("count"))

	if o.cfg.Progress {
		report, err := executeWithProgress(ctx, cmd.ErrOrStderr(), countCmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), tui.RenderSummary(report))
	} else if _, err := countCmd.Execute(ctx); err != nil {
		return err
	}

	if o.open {
		return o.viewer.OpenFile(outputPath)
	}
	return nil
}

// executeWithProgress runs the count behind a progress display on w
func executeWithProgress(ctx context.Context, w io.Writer, countCmd *commands.CountTagsCommand) (*domain.Report, error) {
	var report *domain.Report
	err := tui.RunWithProgress(ctx, w, func(progress ports.ProgressFunc) error {
		var err error
		report, err = countCmd.WithProgress(progress).Execute(ctx)
		return err
	})
	return report, err
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, application.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
