// Command expire-reviews closes client review windows that have passed
// their deadline. It is intended to be invoked by an external cron job when
// the server's own expiry loop is not running.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/attribution-portal/internal/app"
	"github.com/heartmarshall/attribution-portal/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	svc, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		logger.Error("init services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer svc.Close()

	n, err := svc.Review.ExpirePending(ctx)
	if err != nil {
		logger.Error("expire reviews failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("expire reviews completed", slog.Int("expired", n))
}
