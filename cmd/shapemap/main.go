package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"shapemap/internal/config"
	"shapemap/internal/logging"
	"shapemap/internal/tui"
)

func main() {
	cfg := config.Load()

	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := logging.New(logFile, cfg.LogLevel)

	opts := tui.Options{
		DataDir:      cfg.DataDir,
		Logger:       logger,
		FetchTimeout: cfg.FetchTimeout,
	}
	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithPath(opts, os.Args[1])
	} else {
		m = tui.New(opts)
	}

	logger.Info("starting", slog.String("data_dir", cfg.DataDir))
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logging.Error(logger, "program failed", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
