package main

import (
	"context"
	"fmt"
	"io"

	"tugasku/config"
	"tugasku/internal/chat"
	chatuc "tugasku/internal/chat/usecase"
	"tugasku/internal/model"
	"tugasku/internal/parser"
	"tugasku/internal/preview"
	previewuc "tugasku/internal/preview/usecase"
	"tugasku/internal/router"
	"tugasku/internal/storage"
	"tugasku/internal/storage/memory"
	"tugasku/internal/storage/sqlite"
	"tugasku/internal/tracker"
	trackeruc "tugasku/internal/tracker/usecase"
	"tugasku/pkg/datemath"
	"tugasku/pkg/log"
	"tugasku/pkg/toast"
)

// app wires every component used by the commands.
type app struct {
	cfg      *config.Config
	l        log.Logger
	repo     storage.Repository
	tracker  tracker.UseCase
	previews preview.UseCase
	chat     chat.UseCase
	notices  *toast.Toast
	out      io.Writer
}

// loadApp reads configuration and builds the app for a command.
// quiet raises the log level to warn so logs do not mix with command output.
func loadApp(ctx context.Context, out io.Writer, quiet bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if useMemory {
		cfg.Storage.Driver = config.StorageDriverMemory
	}
	if quiet {
		cfg.Logger.Level = "warn"
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return buildApp(ctx, cfg, logger, out)
}

func buildApp(ctx context.Context, cfg *config.Config, logger log.Logger, out io.Writer) (*app, error) {
	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	repo, err := openRepository(cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	tr := trackeruc.New(logger, storage.New(repo, logger), dates, nil)
	if err := tr.Load(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("load data: %w", err)
	}
	applyTheme(tr.Settings(ctx).Theme)

	notices := toast.New(cfg.Notify.Duration, func(m toast.Message) {
		fmt.Fprintln(out, toastStyle(m.Level).Render(m.Text))
	})

	previews, err := previewuc.New(logger, tr, notices, dates, cfg.Preview.MaxSessions)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("init previews: %w", err)
	}

	r := router.New(logger)
	chatUC := chatuc.New(logger, parser.New(logger, r, dates, nil), r, previews, chat.Config{
		ThinkingDelay:    cfg.Chat.ThinkingDelay,
		ThinkingJitter:   cfg.Chat.ThinkingJitter,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
	})

	tr.Subscribe(tracker.KindSettings, func(ctx context.Context, _ model.Kind) {
		applyTheme(tr.Settings(ctx).Theme)
	})

	return &app{
		cfg:      cfg,
		l:        logger,
		repo:     repo,
		tracker:  tr,
		previews: previews,
		chat:     chatUC,
		notices:  notices,
		out:      out,
	}, nil
}

func openRepository(cfg config.StorageConfig, l log.Logger) (storage.Repository, error) {
	if cfg.Driver == config.StorageDriverMemory {
		return memory.New(cfg.QuotaBytes), nil
	}
	path := cfg.Path
	if path == "" {
		path = sqlite.DefaultDBPath()
	}
	store, err := sqlite.New(path, cfg.QuotaBytes, l)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return store, nil
}

func (a *app) Close() error {
	a.notices.Dismiss()
	return a.repo.Close()
}
