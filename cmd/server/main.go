package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "portfolio-api/internal/adapter/http"
	"portfolio-api/internal/bootstrap"
	"portfolio-api/internal/config"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := bootstrap.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer svc.Close()

	deps := httpadapter.Deps{
		Projects: svc.Projects,
		Skills:   svc.Skills,
		Posts:    svc.Posts,
		Images:   svc.Images,
		Logger:   logger,
	}
	// keep the interface nil when generation is off
	if svc.Generator != nil {
		deps.Generator = svc.Generator
	}

	h := httpadapter.NewHandler(deps, httpadapter.Config{
		SiteURL:           cfg.SiteURL,
		StaticDir:         cfg.StaticDir,
		ContentTTL:        cfg.ContentCacheTTL,
		SEOTTL:            cfg.SEOCacheTTL,
		SWR:               cfg.CacheSWR,
		GenerationEnabled: cfg.GenerationEnabled,
	})

	app := httpadapter.NewApp(logger)
	h.Register(app)

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	h.Wait()
}
