// Command reprocess drains the pending event queue. By default it recovers
// interrupted and retryable failed events, then processes batches until the
// queue is empty, which suits an external cron job. With --loop it keeps
// polling like the server.
//
// Flags:
//
//	--loop  keep polling until interrupted
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/attribution-portal/internal/app"
	"github.com/heartmarshall/attribution-portal/internal/config"
)

func main() {
	loop := flag.Bool("loop", false, "keep polling until interrupted")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		logger.Error("init services", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer svc.Close()

	if *loop {
		if err := svc.Queue.Run(ctx, cfg.Attribution.PollInterval); err != nil {
			logger.Error("reprocess loop", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if err := svc.Queue.Recover(ctx); err != nil {
		logger.Error("recover queue", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var done, failed int
	for {
		sum, err := svc.Queue.RunOnce(ctx)
		if err != nil {
			logger.Error("reprocess batch", slog.String("error", err.Error()))
			os.Exit(1)
		}
		done += sum.Done
		failed += sum.Failed
		if sum.Claimed == 0 {
			break
		}
	}

	logger.Info("reprocess completed",
		slog.Int("done", done),
		slog.Int("failed", failed),
	)
}
