package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tagcount/internal/adapters/filesystem"
	"tagcount/internal/application/commands"
	"tagcount/internal/ports"
)

// Corpus is what the count tool needs to read a manifest and its data files
type Corpus interface {
	ports.ManifestReader
	ports.DataSource
}

// RegisterTools adds the tag counting tools to the MCP server.
// list_runs is only registered when store is non-nil.
func RegisterTools(s *server.MCPServer, corpus Corpus, store ports.RunStore) {
	s.AddTool(countTool(), countHandler(corpus, store))
	if store != nil {
		s.AddTool(listRunsTool(), listRunsHandler(store))
	}
}

// --- count_tags ---

func countTool() mcp.Tool {
	return mcp.NewTool("count_tags",
		mcp.WithDescription("Count distinct part-of-speech tagged word forms for one year across every n-gram file listed in a manifest. Only records with a volume count of at least 2 are counted."),
		mcp.WithString("manifest_path",
			mcp.Description("Path to a text file listing one data file per line"),
			mcp.Required(),
		),
		mcp.WithNumber("year",
			mcp.Description("Year to count (e.g. 1950)"),
			mcp.Required(),
		),
		mcp.WithString("output_path",
			mcp.Description("Optional path to also write the report file to"),
		),
	)
}

func countHandler(corpus Corpus, store ports.RunStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		manifestPath := req.GetString("manifest_path", "")
		if manifestPath == "" {
			return toolError(fmt.Errorf("manifest_path is required"))
		}
		year, err := req.RequireInt("year")
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewCountTagsCommand(corpus, corpus, manifestPath, year)

		if outputPath := req.GetString("output_path", ""); outputPath != "" {
			out, err := filesystem.CreateReportFile(outputPath)
			if err != nil {
				return toolError(fmt.Errorf("cannot open output %s: %w", outputPath, err))
			}
			defer out.Close()
			cmd.WithSinks(out)
		}
		if store != nil {
			cmd.WithSinks(store)
		}

		report, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(report.String())
		fmt.Fprintf(&sb, "\n(%d files scanned, %d skipped, %d records read)\n",
			report.Stats.FilesScanned, report.Stats.FilesSkipped, report.Stats.RecordsRead)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_runs ---

func listRunsTool() mcp.Tool {
	return mcp.NewTool("list_runs",
		mcp.WithDescription("List previously saved tag counts, newest first."),
		mcp.WithNumber("year",
			mcp.Description("Only list runs for this year. Omit to list all years."),
		),
		mcp.WithNumber("limit",
			mcp.Description(fmt.Sprintf("Maximum number of runs (default %d)", commands.DefaultHistoryLimit)),
		),
	)
}

func listRunsHandler(store ports.RunStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListRunsCommand(store, req.GetInt("year", 0), req.GetInt("limit", 0))
		runs, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(runs, formatRun)
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatRun(r ports.Run) string {
	return fmt.Sprintf("#%d  %s  year=%d  total=%d  with_x=%d  manifest=%s",
		r.ID, r.SavedAt.Format(time.DateTime), r.Report.Year,
		r.Report.Counts.Sum(), r.Report.Counts.SumWithX(), r.Report.ManifestPath)
}
