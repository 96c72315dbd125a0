package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/headgate/sluice/internal/appstate"
	"github.com/headgate/sluice/internal/config"
	"github.com/headgate/sluice/internal/content"
	"github.com/headgate/sluice/internal/counter"
	"github.com/headgate/sluice/internal/logging"
	"github.com/headgate/sluice/internal/ui"
)

// Options configure the demo application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/sluice-demo/config.toml
	LogPath    string // transition log file; empty falls back to the config, then to no logging
}

// Run boots the demo TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath := opts.LogPath
	if logPath == "" {
		logPath = cfg.LogFile
	}

	logger := logging.NewNop()
	if logPath != "" {
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open transition log: %w", err)
		}
		defer file.Close()
		logger = logging.New(file, slog.LevelDebug)
	}

	counterStore, err := counter.NewStore()
	if err != nil {
		return fmt.Errorf("init counter store: %w", err)
	}

	appStore, err := appstate.NewStore(appstate.AppState{
		Settings: cfg.InitialSettings(),
	})
	if err != nil {
		return fmt.Errorf("init app store: %w", err)
	}

	stop := watchStores(logger, counterStore, appStore)
	defer stop()

	// Seed the article list through the front door so the load shows up in
	// the transition log like any other dispatch.
	appStore.Dispatch(content.LoadArticles{Articles: cfg.Articles})

	logger.Info("starting", "language", cfg.Language, "articles", len(cfg.Articles))

	err = ui.Run(ctx, ui.Options{
		Counter: counterStore,
		App:     appStore,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
