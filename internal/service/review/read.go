package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/attribution-portal/internal/domain"
)

// GetDomain returns one attributed domain.
func (s *Service) GetDomain(ctx context.Context, domainID uuid.UUID) (*domain.AttributedDomain, error) {
	d, err := s.domains.GetByID(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}
	return d, nil
}

// FindDomain looks a domain up by client and name. The name is normalized
// the same way the engine normalizes event domains.
func (s *Service) FindDomain(ctx context.Context, clientID, name string) (*domain.AttributedDomain, error) {
	var p domain.Problems
	if clientID == "" {
		p.Add("client_id", "required")
	}
	normalized, ok := domain.NormalizeDomain(name)
	if !ok {
		p.Add("domain", "not a matchable domain")
	}
	if err := p.Err(); err != nil {
		return nil, err
	}

	cfg, err := s.clients.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("find domain: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("find domain: client %q: %w", clientID, domain.ErrNotFound)
	}

	d, err := s.domains.GetByKey(ctx, cfg.ID, normalized)
	if err != nil {
		return nil, fmt.Errorf("find domain: %w", err)
	}
	return d, nil
}

// Matches returns the audit trail of a domain, newest first.
func (s *Service) Matches(ctx context.Context, domainID uuid.UUID, limit int) ([]domain.AttributionMatch, error) {
	if limit < 0 || limit > 500 {
		return nil, domain.NewValidationError("limit", "must be in [0, 500]")
	}
	if _, err := s.domains.GetByID(ctx, domainID); err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}

	out, err := s.matches.List(ctx, domain.MatchFilter{AttributedDomainID: &domainID, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return out, nil
}

// Timeline returns every event recorded against a domain in event-time
// order. A domain with no recorded events yields an empty slice.
func (s *Service) Timeline(ctx context.Context, domainID uuid.UUID) ([]domain.DomainEvent, error) {
	if _, err := s.domains.GetByID(ctx, domainID); err != nil {
		return nil, fmt.Errorf("get domain: %w", err)
	}

	out, err := s.timeline.ListByDomain(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("list timeline: %w", err)
	}
	if out == nil {
		out = []domain.DomainEvent{}
	}
	return out, nil
}
