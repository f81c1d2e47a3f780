package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youruser/agentcard/internal/api"
	"github.com/youruser/agentcard/internal/app"
	"github.com/youruser/agentcard/internal/config"
	"github.com/youruser/agentcard/internal/logger"
	"github.com/youruser/agentcard/internal/templates"
	"github.com/youruser/agentcard/internal/tracer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zl := logger.New("error", "console")
		zl.Fatal("failed to load config: " + err.Error())
	}

	zl := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = zl.Sync() }()
	log := logger.NewZapAdapter(zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracer.Setup(ctx, cfg.Tracing)
	if err != nil {
		log.WithError(err).Error("tracing disabled", nil)
		shutdownTracer = func(context.Context) error { return nil }
	}

	assets, closeAssets := app.Assets(ctx, cfg, log)
	defer closeAssets()

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	api.RegisterRoutes(r, api.NewHandler(templates.Default(), assets, cfg.Render, log), api.RouteOptions{
		RateLimit: cfg.RateLimit,
		AssetRoot: cfg.Assets.Root,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting server", map[string]interface{}{
			"addr":      "http://localhost:" + cfg.Server.Port,
			"templates": templates.Default().IDs(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server stopped", nil)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed", nil)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.WithError(err).Error("tracer shutdown failed", nil)
	}
}
