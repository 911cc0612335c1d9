package main

import (
	"context"
	"flag"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"plovermd/internal/adapters/filesystem"
	mcpadapter "plovermd/internal/adapters/mcp"
	"plovermd/internal/adapters/sqlite"
	"plovermd/internal/config"
	"plovermd/internal/logger"
	"plovermd/internal/ports"
)

func main() {
	dictionaryFlag := flag.String("dictionary", "", "path to the markdown dictionary (default from config)")
	noIndex := flag.Bool("no-index", false, "disable the reverse lookup index")
	flag.Parse()

	log := logger.FromEnv("")
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("Failed to load config", "error", err)
	}
	if *dictionaryFlag != "" {
		cfg.Dictionary = *dictionaryFlag
	}

	repo := filesystem.NewRepository(cfg.Dictionary, log)

	var index ports.TranslationIndex
	if !*noIndex {
		idx := sqlite.NewIndex(cfg.IndexDir, log)
		if err := idx.Open(repo.Path()); err != nil {
			log.Warnw("Reverse lookup disabled", "error", err)
		} else {
			defer idx.Close()
			index = idx
		}
	}

	mcpServer := server.NewMCPServer(
		"plovermd-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, repo, index)
	mcpadapter.RegisterWriteTools(mcpServer, repo)

	log.Infow("Serving MCP over stdio", "dictionary", repo.Path(), "index", index != nil)
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalw("plovermd-mcp stopped", "error", err)
	}
}
