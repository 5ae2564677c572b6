// Command personal-domain manages the agency list of personal email domains
// that are excluded from domain-level matching in addition to the built-in
// free-mail providers.
//
// Usage:
//
//	personal-domain add example.com [other.org ...]
//	personal-domain list
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres"
	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres/personaldomain"
	"github.com/heartmarshall/attribution-portal/internal/app"
	"github.com/heartmarshall/attribution-portal/internal/config"
	"github.com/heartmarshall/attribution-portal/internal/domain"
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: personal-domain add <domain>... | list")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := personaldomain.New(pool)

	switch flag.Arg(0) {
	case "add":
		for _, raw := range flag.Args()[1:] {
			name, ok := domain.NormalizeDomain(raw)
			if !ok {
				logger.Warn("skip invalid domain", slog.String("input", raw))
				continue
			}
			if err := repo.Add(ctx, name); err != nil {
				logger.Error("add personal domain", slog.String("domain", name), slog.String("error", err.Error()))
				os.Exit(1)
			}
			logger.Info("personal domain added", slog.String("domain", name))
		}
	case "list":
		names, err := repo.List(ctx)
		if err != nil {
			logger.Error("list personal domains", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, n := range names {
			fmt.Println(n)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", flag.Arg(0))
		os.Exit(1)
	}
}
