package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/wildmart/wildmart-go/internal/api"
	"github.com/wildmart/wildmart-go/internal/cart"
	"github.com/wildmart/wildmart-go/pkg/config"
	"github.com/wildmart/wildmart-go/pkg/logger"
	"github.com/wildmart/wildmart-go/pkg/metrics"
	"github.com/wildmart/wildmart-go/pkg/session"
)

// Diagnostic entry point: authenticates from the stored session, pulls the
// cart, and logs the grouped summary. Useful for smoke-testing an
// environment without the web app.
func main() {
	logg := logger.New(logger.Options{ServiceName: "wildmart"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "wildmart",
		Level:       cfg.App.LogLevel,
		WarnStack:   cfg.App.LogWarnStack,
	})

	sessions, err := session.NewStore(cfg.Session.TokenPath)
	if err != nil {
		logg.Error(context.Background(), "failed to open session store", err)
		os.Exit(1)
	}

	apiMetrics := metrics.NewAPIMetrics(prometheus.NewRegistry())
	client, err := api.NewClient(cfg.API, sessions, api.WithMetrics(apiMetrics))
	if err != nil {
		logg.Error(context.Background(), "failed to build api client", err)
		os.Exit(1)
	}

	engine, err := cart.NewEngine(client, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to build cart engine", err)
		os.Exit(1)
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"base_url": cfg.API.BaseURL,
	})

	if err := engine.Fetch(ctx); err != nil {
		logg.Error(ctx, "fetch cart failed", err)
		os.Exit(1)
	}

	for _, group := range engine.Grouped() {
		groupCtx := logg.WithFields(ctx, map[string]any{
			"seller": group.SellerName,
			"items":  len(group.Items),
		})
		logg.Info(groupCtx, "cart seller group")
	}
	summaryCtx := logg.WithFields(ctx, map[string]any{
		"lines":        len(engine.Items()),
		"out_of_stock": len(engine.OutOfStockItems()),
		"total":        engine.Total().String(),
	})
	logg.Info(summaryCtx, "cart summary")
}
