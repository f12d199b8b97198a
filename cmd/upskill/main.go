package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/cakap/upskill/pkg/assistant"
)

func main() {
	configPath := flag.String("config", "upskill.yaml", "path to configuration file")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := assistant.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Model handles are built once here and reused for every request.
	ast := assistant.New(cfg)

	for {
		q, m, err := runQuestionnaire(ast)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		app := newAppModel(ctx, ast, m, q)

		final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}

		if done, ok := final.(appModel); !ok || !done.restart {
			return nil
		}
	}
}
