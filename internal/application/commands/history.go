package commands

import (
	"context"

	"tagcount/internal/ports"
)

// DefaultHistoryLimit caps ListRunsCommand when no limit is given
const DefaultHistoryLimit = 20

// ListRunsCommand lists saved reports
type ListRunsCommand struct {
	store ports.RunStore
	Year  int
	Limit int
}

// NewListRunsCommand creates a new ListRunsCommand. year <= 0 lists every year.
func NewListRunsCommand(store ports.RunStore, year, limit int) *ListRunsCommand {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &ListRunsCommand{
		store: store,
		Year:  year,
		Limit: limit,
	}
}

// Execute runs the list runs command
func (c *ListRunsCommand) Execute(ctx context.Context) ([]ports.Run, error) {
	return c.store.ListRuns(ctx, c.Year, c.Limit)
}
