package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tugasku/internal/chat"
	"tugasku/internal/middleware"
	"tugasku/internal/preview"
	"tugasku/internal/tracker"
	"tugasku/pkg/log"
	"tugasku/pkg/toast"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	chatUC    chat.UseCase
	previewUC preview.UseCase
	trackerUC tracker.UseCase
	notices   *toast.Toast
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Host            string
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	ChatUC    chat.UseCase
	PreviewUC preview.UseCase
	TrackerUC tracker.UseCase
	Notices   *toast.Toast
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          middleware.New(logger, cfg.RateLimitPerMin),
		chatUC:      cfg.ChatUC,
		previewUC:   cfg.PreviewUC,
		trackerUC:   cfg.TrackerUC,
		notices:     cfg.Notices,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil || srv.previewUC == nil || srv.trackerUC == nil {
		return errors.New("chat, preview and tracker use cases are required")
	}
	if srv.notices == nil {
		return errors.New("notifier is required")
	}
	return nil
}

// Handler exposes the configured router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
