package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/attribution-portal/internal/domain"
	"github.com/heartmarshall/attribution-portal/internal/metrics"
)

// RequestReview opens the dispute window on an attributed, within-window
// domain. The review expires expiryDays after now.
func (s *Service) RequestReview(ctx context.Context, domainID uuid.UUID) (*domain.AttributedDomain, error) {
	if domainID == uuid.Nil {
		return nil, domain.NewValidationError("domain_id", "required")
	}

	if err := s.checkTransition(ctx, domainID, domain.ReviewStatusPendingReview); err != nil {
		return nil, fmt.Errorf("request review: %w", err)
	}

	now := s.clock.Now()
	expires := now.AddDate(0, 0, s.expiryDays)

	d, err := s.domains.RequestReview(ctx, domainID, now, expires)
	if err != nil {
		return nil, fmt.Errorf("request review: %w", err)
	}

	metrics.ReviewTransitions.WithLabelValues(string(domain.ReviewStatusPendingReview)).Inc()
	s.log.InfoContext(ctx, "review requested",
		slog.String("domain_id", domainID.String()),
		slog.String("domain", d.Domain),
		slog.Time("expires_at", expires),
	)
	return d, nil
}

// Confirm accepts a pending review: the domain stays attributed.
func (s *Service) Confirm(ctx context.Context, input ResolveInput) (*domain.AttributedDomain, error) {
	return s.resolve(ctx, input, domain.ReviewStatusAttributed)
}

// Reject records a client dispute on a pending review.
func (s *Service) Reject(ctx context.Context, input ResolveInput) (*domain.AttributedDomain, error) {
	return s.resolve(ctx, input, domain.ReviewStatusRejected)
}

func (s *Service) resolve(ctx context.Context, input ResolveInput, to domain.ReviewStatus) (*domain.AttributedDomain, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkTransition(ctx, input.DomainID, to); err != nil {
		return nil, fmt.Errorf("resolve review to %s: %w", to, err)
	}

	d, err := s.domains.ResolveReview(ctx, input.DomainID, to, s.clock.Now(), trimOrNil(input.Note))
	if err != nil {
		return nil, fmt.Errorf("resolve review to %s: %w", to, err)
	}

	metrics.ReviewTransitions.WithLabelValues(string(to)).Inc()
	s.log.InfoContext(ctx, "review resolved",
		slog.String("domain_id", input.DomainID.String()),
		slog.String("domain", d.Domain),
		slog.String("status", string(to)),
	)
	return d, nil
}

// checkTransition rejects a move the current review status does not allow.
// The repository re-checks the status inside its UPDATE, so a concurrent
// change between the two still ends in ErrConflict.
func (s *Service) checkTransition(ctx context.Context, id uuid.UUID, to domain.ReviewStatus) error {
	d, err := s.domains.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d.Status.CanTransitionTo(to) {
		return nil
	}
	if d.Status.IsTerminal() {
		return fmt.Errorf("%w: review of %s already closed as %s", domain.ErrConflict, d.Domain, d.Status)
	}
	return fmt.Errorf("%w: %s cannot move from %s to %s", domain.ErrConflict, d.Domain, d.Status, to)
}

// ExpirePending confirms every pending review whose deadline has passed and
// returns how many domains moved to ATTRIBUTED.
func (s *Service) ExpirePending(ctx context.Context) (int, error) {
	n, err := s.domains.ExpirePending(ctx, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("expire pending reviews: %w", err)
	}

	if n > 0 {
		metrics.ReviewTransitions.WithLabelValues("EXPIRED").Add(float64(n))
		s.log.InfoContext(ctx, "pending reviews expired", slog.Int("count", n))
	}
	return n, nil
}
