package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"plovermd/internal/adapters/editor"
	"plovermd/internal/adapters/filesystem"
	"plovermd/internal/adapters/tui"
	"plovermd/internal/config"
	"plovermd/internal/logger"
)

func main() {
	dictionaryFlag := flag.String("dictionary", "", "path to the markdown dictionary (default from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so only errors are logged unless asked otherwise
	level := cfg.LogLevel
	if level == "" {
		level = "QUIET"
	}
	log := logger.FromEnv(level)
	defer func() { _ = log.Sync() }()

	path := cfg.Dictionary
	if *dictionaryFlag != "" {
		path = *dictionaryFlag
	}

	// Initialize adapters
	repo := filesystem.NewRepository(path, log)
	editorOpener := editor.NewOpener()

	// Create and run TUI app
	app := tui.NewApp(repo, editorOpener, log)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
