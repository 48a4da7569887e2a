// Package main is the entry point of the task manager. It wires the
// configuration, logger, storage and tracker together and runs the shell.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"

	"taskmanager/local-app/internal/cli"
	"taskmanager/local-app/internal/config"
	"taskmanager/local-app/internal/log"
	"taskmanager/local-app/internal/report"
	"taskmanager/local-app/internal/storage"
	"taskmanager/local-app/internal/tracker"
	"taskmanager/local-app/internal/ui"
)

func main() {
	if err := bootstrap(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration, initializes every component and runs
// the shell until the user exits.
func bootstrap() error {
	configPath := config.DefaultConfigPath
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Load configuration
	if err := config.ConfigLoad(configPath); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := config.ConfigGet()

	// Initialize logger
	level, err := log.LevelParse(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err := log.NewLogger(cfg, level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close logger: %v\n", err)
		}
	}()

	logger.Info(context.Background(), "Application started", log.Fields{
		"config":    configPath,
		"storage":   cfg.StorageType,
		"log_level": level.String(),
	})

	// Initialize storage
	store, err := storage.NewStorage(cfg, logger)
	if err != nil {
		logger.Error(context.Background(), "Failed to initialize storage", log.Fields{"error": err})
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error(context.Background(), "Failed to close storage", log.Fields{"error": err})
		}
	}()

	// Load users and tasks
	manager, err := tracker.NewManager(store, logger,
		tracker.WithAdmin(cfg.AdminUser, cfg.AdminPassword),
		tracker.WithHashPasswords(cfg.HashPasswords),
	)
	if err != nil {
		logger.Error(context.Background(), "Failed to load data", log.Fields{"error": err})
		return err
	}

	// Initialize readline with history file from config
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	// Close the reader on SIGTERM so the shell ends at the next read
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		if _, ok := <-sigChan; ok {
			logger.Info(context.Background(), "Received termination signal. Shutting down...", nil)
			rl.Close()
		}
	}()

	out := ui.NewUI(os.Stdout, cfg.UseColor && ui.ColorSupported(os.Stdout))
	out.Println("Welcome to the task manager!")

	shell := cli.NewCLI(manager, rl, out, report.NewWriter(cfg, logger), logger)
	if err := shell.Run(); err != nil {
		logger.Error(context.Background(), "CLI error", log.Fields{"error": err})
		return err
	}

	logger.Info(context.Background(), "Application shutting down", nil)
	return nil
}
