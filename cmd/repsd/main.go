package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/repsd/internal/session"
	"github.com/sandeepkv93/repsd/internal/storage"
	"github.com/sandeepkv93/repsd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "repsd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(xdg.DataHome, "repsd")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	repo, err := openRepository(cfg.Backend, dataDir)
	if err != nil {
		return err
	}
	defer repo.Close()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "repsd"})
	sess := session.New(repo, logger)
	sess.Load(context.Background())
	defer sess.Flush()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	program := tea.NewProgram(update.NewModelWithConfig(sess, notifier, cfg))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func openRepository(backend, dataDir string) (storage.Repository, error) {
	switch backend {
	case update.BackendBadger:
		return storage.OpenBadger(filepath.Join(dataDir, "badger"))
	default:
		return storage.OpenSQLite(filepath.Join(dataDir, "repsd.db"))
	}
}
