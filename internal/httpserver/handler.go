package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "tugasku/internal/chat/delivery/http"
	"tugasku/internal/model"
	trackerHTTP "tugasku/internal/tracker/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.RequestLog())

	if srv.environment == string(model.EnvironmentProduction) {
		srv.gin.SetTrustedProxies(nil)
	}
	srv.l.Infof(context.Background(), "HTTP environment: %s", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	chatH := chatHTTP.New(srv.l, srv.chatUC, srv.previewUC, srv.notices)
	chatHTTP.RegisterRoutes(api, chatH, srv.mw)
	srv.l.Infof(ctx, "Chat routes registered")

	trackerH := trackerHTTP.New(srv.l, srv.trackerUC)
	trackerHTTP.RegisterRoutes(api, trackerH)
	srv.l.Infof(ctx, "Tracker routes registered")

	return nil
}
