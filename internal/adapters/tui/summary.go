package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tagcount/internal/adapters/tui/styles"
	"tagcount/internal/domain"
)

// RenderSummary renders a boxed per-tag table of a report for the terminal
func RenderSummary(r *domain.Report) string {
	rows := make([]string, 0, len(domain.NamedTags)+4)
	rows = append(rows, styles.Title.Render(fmt.Sprintf("Tags in %d", r.Year)))

	for _, tag := range domain.NamedTags {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			styles.TagName.Render(tag.String()),
			styles.TagCount.Render(fmt.Sprint(r.Counts.Get(tag))),
		))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		styles.TagName.Render(domain.TagX.String()),
		styles.TagCount.Render(fmt.Sprint(r.Counts.X)),
	))

	rows = append(rows,
		styles.Total.Render(fmt.Sprintf("total %d, with X %d", r.Counts.Sum(), r.Counts.SumWithX())),
		styles.MutedText.Render(fmt.Sprintf("%d files, %d skipped, %d records", r.Stats.FilesScanned, r.Stats.FilesSkipped, r.Stats.RecordsRead)),
	)

	return styles.Box.Render(strings.Join(rows, "\n"))
}
