package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/avaldez/pedidosbot/internal/application/handler"
	"github.com/avaldez/pedidosbot/internal/application/service"
	"github.com/avaldez/pedidosbot/internal/cache"
	"github.com/avaldez/pedidosbot/internal/config"
	"github.com/avaldez/pedidosbot/internal/httpapi"
	"github.com/avaldez/pedidosbot/internal/observability"
	"github.com/avaldez/pedidosbot/internal/pedidos"
	"github.com/avaldez/pedidosbot/internal/pkg/breaker"
	"github.com/avaldez/pedidosbot/internal/whatsapp"
)

func main() {
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	metrics := observability.NewProm()

	orderCache := cache.New(cfg.Cache.TTL, cfg.Cache.SweepThreshold)

	client := pedidos.NewClient(cfg.Upstream, logger)
	lookup := pedidos.NewRetryingClient(client, cfg.Retry, logger)
	resolver := service.NewResolver(orderCache, lookup, logger, metrics)

	sender := whatsapp.NewSender(cfg.WhatsApp, breaker.New(cfg.Breaker), logger, metrics)
	bot := handler.New(resolver, sender, logger)

	server := httpapi.New(bot, resolver, orderCache, cfg, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting pedidos bot", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
