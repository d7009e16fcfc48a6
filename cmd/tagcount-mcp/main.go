package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tagcount/internal/adapters/filesystem"
	mcpadapter "tagcount/internal/adapters/mcp"
	"tagcount/internal/adapters/sqlite"
	"tagcount/internal/config"
	"tagcount/internal/logging"
	"tagcount/internal/ports"
)

func main() {
	configFlag := flag.String("config", "", "path to a YAML config file")
	dbFlag := flag.String("db", "", "path to the run history database (enables history)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("tagcount-mcp: %v", err)
	}
	if *dbFlag != "" {
		cfg.History.Path = *dbFlag
		cfg.History.Enabled = true
	}

	// stdout carries the MCP protocol, so logs must go to stderr
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	var store ports.RunStore
	if cfg.History.Enabled {
		s, err := sqlite.Open(cfg.History.Path)
		if err != nil {
			log.Fatalf("tagcount-mcp: %v", err)
		}
		defer s.Close()
		store = s
		slog.Info("run history enabled", "path", s.Path())
	}

	mcpServer := server.NewMCPServer(
		"tagcount-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, filesystem.NewCorpus(), store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("tagcount-mcp: %v", err)
	}
}
