package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tugasku/internal/httpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := loadApp(ctx, cmd.OutOrStdout(), false)
	if err != nil {
		return err
	}
	defer a.Close()

	srv, err := httpserver.New(a.l, httpserver.Config{
		Logger:          a.l,
		Host:            a.cfg.HTTPServer.Host,
		Port:            a.cfg.HTTPServer.Port,
		Mode:            a.cfg.HTTPServer.Mode,
		Environment:     a.cfg.Environment.Name,
		RateLimitPerMin: a.cfg.Chat.RateLimitPerMin,
		ChatUC:          a.chat,
		PreviewUC:       a.previews,
		TrackerUC:       a.tracker,
		Notices:         a.notices,
	})
	if err != nil {
		a.l.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return err
	}

	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	a.l.Info(context.Background(), "Server stopped")
	return nil
}
