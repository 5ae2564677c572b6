// Command client registers a client in the attribution system or updates its
// settings. Events for a client_id without a config are never attributed.
//
// Usage:
//
//	client --id=acme --name="Acme Corp" [--window=31] [--soft-match=true] [--exclude-personal=true]
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
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres"
	"github.com/heartmarshall/attribution-portal/internal/adapter/postgres/clientconfig"
	"github.com/heartmarshall/attribution-portal/internal/app"
	"github.com/heartmarshall/attribution-portal/internal/config"
	"github.com/heartmarshall/attribution-portal/internal/domain"
)

func main() {
	clientID := flag.String("id", "", "upstream client_id")
	name := flag.String("name", "", "display name")
	window := flag.Int("window", domain.DefaultAttributionWindowDays, "attribution window in days")
	softMatch := flag.Bool("soft-match", true, "allow domain-level matches")
	excludePersonal := flag.Bool("exclude-personal", true, "exclude personal email domains from domain-level matching")
	flag.Parse()

	if strings.TrimSpace(*clientID) == "" {
		fmt.Fprintln(os.Stderr, "Usage: client --id=<client_id> --name=<name> [--window=31]")
		os.Exit(1)
	}
	if *window <= 0 {
		fmt.Fprintln(os.Stderr, "--window must be > 0")
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

	saved, err := clientconfig.New(pool).Upsert(ctx, domain.ClientConfig{
		ID:                     uuid.New(),
		ClientID:               strings.TrimSpace(*clientID),
		Name:                   strings.TrimSpace(*name),
		AttributionWindowDays:  *window,
		SoftMatchEnabled:       *softMatch,
		ExcludePersonalDomains: *excludePersonal,
	})
	if err != nil {
		logger.Error("save client config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("client config saved",
		slog.String("client_id", saved.ClientID),
		slog.String("id", saved.ID.String()),
		slog.Int("window_days", saved.AttributionWindowDays),
		slog.Bool("soft_match", saved.SoftMatchEnabled),
		slog.Bool("exclude_personal", saved.ExcludePersonalDomains),
	)
}
