package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/DoyleJ11/lol-cooldowns/internal/aggregator"
	"github.com/DoyleJ11/lol-cooldowns/internal/config"
	"github.com/DoyleJ11/lol-cooldowns/internal/httpapi"
	"github.com/DoyleJ11/lol-cooldowns/internal/liveclient"
	"github.com/DoyleJ11/lol-cooldowns/internal/logging"
	"github.com/DoyleJ11/lol-cooldowns/internal/provider"
	"github.com/DoyleJ11/lol-cooldowns/internal/resolver"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load(".env", "../.env")

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	httpClient := provider.NewHTTPClient(cfg.ProviderTimeout)
	res := resolver.New(
		provider.NewMeraki(cfg.MerakiURL, httpClient),
		provider.NewDataDragon(cfg.DDragonURL, cfg.DDragonLocale, httpClient),
		logger,
	)
	agg := aggregator.New(liveclient.NewReader(cfg.LiveURL, cfg.LiveTimeout), res, cfg.Workers, logger)

	// Build the router *with* the aggregator injected
	handler := httpapi.SetupRoutes(agg, httpapi.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		PushInterval:   cfg.PushInterval,
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
