// Package clientconfig implements the per-client attribution settings
// repository using PostgreSQL.
package clientconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/attribution-portal/internal/adapter/postgres"
	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// Repo provides client config persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new client config repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const configColumns = `id, client_id, name, attribution_window_days, soft_match_enabled,
	exclude_personal_domains, created_at, updated_at`

const getByClientIDSQL = `
SELECT ` + configColumns + `
FROM client_configs
WHERE client_id = $1`

const upsertSQL = `
INSERT INTO client_configs (id, client_id, name, attribution_window_days, soft_match_enabled, exclude_personal_domains)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (client_id) DO UPDATE SET
    name                     = EXCLUDED.name,
    attribution_window_days  = EXCLUDED.attribution_window_days,
    soft_match_enabled       = EXCLUDED.soft_match_enabled,
    exclude_personal_domains = EXCLUDED.exclude_personal_domains,
    updated_at               = now()
RETURNING ` + configColumns

// GetByClientID returns the config for a client, or nil when the client is
// not configured. A missing client is an expected outcome, not an error.
func (r *Repo) GetByClientID(ctx context.Context, clientID string) (*domain.ClientConfig, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByClientIDSQL, clientID)

	cfg, err := scanConfig(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("clientconfig.GetByClientID: %w", err)
	}
	return cfg, nil
}

// Upsert creates or replaces the settings of a client, keyed by client_id.
func (r *Repo) Upsert(ctx context.Context, cfg domain.ClientConfig) (*domain.ClientConfig, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertSQL,
		cfg.ID, cfg.ClientID, cfg.Name, cfg.WindowDays(), cfg.SoftMatchEnabled, cfg.ExcludePersonalDomains,
	)

	saved, err := scanConfig(row)
	if err != nil {
		return nil, postgres.MapError(err, "client config", cfg.ClientID)
	}
	return saved, nil
}

func scanConfig(row pgx.Row) (*domain.ClientConfig, error) {
	var c domain.ClientConfig
	err := row.Scan(&c.ID, &c.ClientID, &c.Name, &c.AttributionWindowDays, &c.SoftMatchEnabled,
		&c.ExcludePersonalDomains, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
