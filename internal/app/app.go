package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/attribution-portal/internal/config"
	"github.com/heartmarshall/attribution-portal/internal/transport/natsintake"
	"github.com/heartmarshall/attribution-portal/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the services
// and runs the HTTP API, the batch runner, the review expiry loop and, when
// enabled, the NATS intake until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	svc, err := NewServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	var checks []rest.Check
	if svc.Redis != nil {
		checks = append(checks, rest.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return svc.Redis.Ping(ctx).Err() },
		})
	}

	var intake *natsintake.Subscriber
	if cfg.NATS.Enabled {
		ncfg := natsintake.Config{
			URL:     cfg.NATS.URL,
			Subject: cfg.NATS.Subject,
			Queue:   cfg.NATS.Queue,
			Name:    "attribution-portal/" + Version,
		}
		conn, err := natsintake.Connect(ncfg, logger)
		if err != nil {
			return err
		}
		defer conn.Close()

		intake = natsintake.NewSubscriber(conn, ncfg, svc.Queue, logger)
		if err := intake.Start(); err != nil {
			return err
		}
		checks = append(checks, rest.Check{
			Name: "nats",
			Ping: func(context.Context) error {
				if !conn.IsConnected() {
					return errors.New("not connected")
				}
				return nil
			},
		})
	}

	handlers := rest.Handlers{
		Health:  rest.NewHealthHandler(svc.Pool, BuildVersion(), checks...),
		Events:  rest.NewEventHandler(svc.Queue, svc.Engine, logger),
		Domains: rest.NewDomainHandler(svc.Review, logger),
	}
	if cfg.Metrics.Enabled {
		handlers.Metrics = promhttp.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(logger, handlers),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return svc.Queue.Run(gctx, cfg.Attribution.PollInterval)
	})

	g.Go(func() error {
		expireLoop(gctx, logger, svc.Review, cfg.Attribution.ExpiryInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		if intake != nil {
			if err := intake.Stop(); err != nil {
				logger.Error("stop nats intake", slog.String("error", err.Error()))
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped gracefully")
	return nil
}

type reviewExpirer interface {
	ExpirePending(ctx context.Context) (int, error)
}

// expireLoop closes overdue review windows every interval until ctx is done.
func expireLoop(ctx context.Context, logger *slog.Logger, svc reviewExpirer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		// The service logs each sweep that expired something.
		if _, err := svc.ExpirePending(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("expire reviews", slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
