// Package personaldomain implements the agency-managed list of personal
// email domains using PostgreSQL.
package personaldomain

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/attribution-portal/internal/adapter/postgres"
)

// Repo provides personal domain lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new personal domain repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const existsSQL = `SELECT EXISTS (SELECT 1 FROM personal_email_domains WHERE domain = $1)`

const addSQL = `INSERT INTO personal_email_domains (domain) VALUES ($1) ON CONFLICT DO NOTHING`

const listSQL = `SELECT domain FROM personal_email_domains ORDER BY domain`

// Exists reports whether the domain is registered as personal.
func (r *Repo) Exists(ctx context.Context, name string) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsSQL, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("personaldomain.Exists: %w", err)
	}
	return exists, nil
}

// Add registers a personal domain. Adding an existing domain is a no-op.
func (r *Repo) Add(ctx context.Context, name string) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, addSQL, name); err != nil {
		return postgres.MapError(err, "personal domain", name)
	}
	return nil
}

// List returns all registered personal domains in alphabetical order.
func (r *Repo) List(ctx context.Context) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("personaldomain.List: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("personaldomain.List: scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("personaldomain.List: %w", err)
	}
	return out, nil
}
