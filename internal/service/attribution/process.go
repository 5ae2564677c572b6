package attribution

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/attribution-portal/internal/domain"
	"github.com/heartmarshall/attribution-portal/internal/metrics"
	"github.com/heartmarshall/attribution-portal/pkg/ctxutil"
)

// ProcessEvent matches one event against the client's send ledger and records
// the outcome: the domain aggregate, the domain timeline and an audit row.
//
// An unconfigured client yields a NO_MATCH result with a nil error and no
// writes. Lookup and persistence failures are returned; the event can then be
// retried as a whole.
func (s *Service) ProcessEvent(ctx context.Context, ev domain.AttributionEvent) (domain.MatchResult, error) {
	start := time.Now()
	defer func() { metrics.ProcessDuration.Observe(time.Since(start).Seconds()) }()

	res, err := s.process(ctx, ev)
	if err != nil {
		metrics.ProcessErrors.Inc()
		return domain.MatchResult{}, err
	}
	return res, nil
}

func (s *Service) process(ctx context.Context, ev domain.AttributionEvent) (domain.MatchResult, error) {
	if err := ev.Validate(); err != nil {
		return domain.MatchResult{}, err
	}

	cfg, err := s.clients.GetByClientID(ctx, ev.ClientID)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("load client config %s: %w", ev.ClientID, err)
	}
	if cfg == nil {
		s.log.WarnContext(ctx, "client not configured",
			slog.String("client_id", ev.ClientID),
			slog.String("event_id", ev.ID.String()),
		)
		metrics.UnconfiguredClients.Inc()
		return domain.MatchResult{
			MatchType:         domain.MatchTypeNone,
			AttributionStatus: domain.AttributionStatusNoMatch,
			MatchReason:       reasonClientNotConfigured,
		}, nil
	}

	id := resolveIdentity(ev)

	m, err := s.match(ctx, *cfg, ev, id)
	if err != nil {
		return domain.MatchResult{}, err
	}

	if err := s.record(ctx, *cfg, ev, id, m); err != nil {
		return domain.MatchResult{}, err
	}

	metrics.MatchesTotal.WithLabelValues(string(m.result.MatchType), string(m.result.AttributionStatus)).Inc()
	s.log.InfoContext(ctx, "event attributed",
		slog.String("event_id", ev.ID.String()),
		slog.String("client_id", ev.ClientID),
		slog.String("domain", id.domain),
		slog.String("match_type", string(m.result.MatchType)),
		slog.String("status", string(m.result.AttributionStatus)),
		slog.String("source", ctxutil.SourceFromCtx(ctx)),
	)

	return m.result, nil
}

// matchOutcome is a MatchResult plus what the engine learned on the way.
type matchOutcome struct {
	result domain.MatchResult
	// domainMatchable is false when the domain is a personal provider that
	// the client excludes from domain-level matching.
	domainMatchable bool
}

func (s *Service) match(ctx context.Context, cfg domain.ClientConfig, ev domain.AttributionEvent, id identity) (matchOutcome, error) {
	personal := false
	if id.domain != "" {
		var err error
		personal, err = s.personal.IsPersonal(ctx, id.domain)
		if err != nil {
			return matchOutcome{}, fmt.Errorf("classify domain: %w", err)
		}
	}
	out := matchOutcome{domainMatchable: !(personal && cfg.ExcludePersonalDomains)}

	var (
		rec       *domain.EmailSendRecord
		matchType = domain.MatchTypeNone
	)

	if id.email != "" {
		hard, err := s.ledger.FindHardMatch(ctx, cfg.ClientID, id.email, ev.EventTime)
		if err != nil {
			return matchOutcome{}, fmt.Errorf("hard match lookup: %w", err)
		}
		if hard != nil {
			rec, matchType = hard, domain.MatchTypeHard
		}
	}

	softAllowed := cfg.SoftMatchEnabled && id.domain != "" && out.domainMatchable
	if rec == nil && softAllowed {
		soft, err := s.ledger.FindSoftMatch(ctx, cfg.ClientID, id.domain, ev.EventTime)
		if err != nil {
			return matchOutcome{}, fmt.Errorf("soft match lookup: %w", err)
		}
		if soft != nil {
			rec, matchType = soft, domain.MatchTypeSoft
		}
	}

	if rec == nil {
		out.result = domain.MatchResult{
			MatchType:         domain.MatchTypeNone,
			AttributionStatus: domain.AttributionStatusNoMatch,
			MatchReason:       noMatchReason(id, !out.domainMatchable && id.domain != "", softAllowed),
		}
		return out, nil
	}

	days := domain.DaysBetween(rec.SentAt, ev.EventTime)
	window := cfg.AttributionWindowDays
	if window <= 0 {
		window = s.defaultWindowDays
	}
	within := days <= window
	sentAt := rec.SentAt

	status := domain.AttributionStatusOutsideWindow
	if within {
		status = domain.AttributionStatusAttributed
	}

	out.result = domain.MatchResult{
		MatchType:         matchType,
		AttributionStatus: status,
		IsWithinWindow:    within,
		DaysSinceEmail:    &days,
		EmailSentAt:       &sentAt,
		ProspectID:        rec.ProspectID,
	}

	matched := id.domain
	if matchType == domain.MatchTypeHard {
		out.result.MatchedEmail = id.emailPtr()
		matched = id.email
	}
	out.result.MatchReason = matchReason(matchType, matched, sentAt, days, window, within)

	return out, nil
}

// record writes the outcome. With a resolvable domain the aggregate,
// timeline and audit row are written in one transaction while holding the
// per-domain lock; without one only the audit row is written.
func (s *Service) record(ctx context.Context, cfg domain.ClientConfig, ev domain.AttributionEvent, id identity, m matchOutcome) error {
	audit := domain.AttributionMatch{
		AttributionEventID: ev.ID,
		ClientConfigID:     cfg.ID,
		Domain:             id.domain,
		EventType:          ev.EventType,
		EventTime:          ev.EventTime,
		MatchType:          m.result.MatchType,
		AttributionStatus:  m.result.AttributionStatus,
		IsWithinWindow:     m.result.IsWithinWindow,
		DaysSinceEmail:     m.result.DaysSinceEmail,
		MatchedEmail:       m.result.MatchedEmail,
		EmailSentAt:        m.result.EmailSentAt,
		ProspectID:         m.result.ProspectID,
		MatchReason:        m.result.MatchReason,
	}

	if id.domain == "" {
		if _, err := s.matches.Create(ctx, audit); err != nil {
			return fmt.Errorf("append audit row: %w", err)
		}
		return nil
	}

	waitStart := time.Now()
	unlock, err := s.locker.Lock(ctx, cfg.ClientID, id.domain)
	if err != nil {
		return fmt.Errorf("lock domain %s: %w", id.domain, err)
	}
	defer unlock()
	metrics.LockWaitDuration.Observe(time.Since(waitStart).Seconds())

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		firstSent, err := s.firstEmailSentAt(ctx, cfg.ClientID, id, m.domainMatchable, ev.EventTime)
		if err != nil {
			return err
		}

		agg, err := s.domains.Upsert(ctx, domain.AttributedDomainUpsert{
			ClientConfigID:   cfg.ID,
			Domain:           id.domain,
			FirstEmailSentAt: firstSent,
			EventTime:        ev.EventTime,
			EventType:        ev.EventType,
			IsWithinWindow:   m.result.IsWithinWindow,
			MatchType:        m.result.MatchType,
		})
		if err != nil {
			return fmt.Errorf("upsert attributed domain: %w", err)
		}

		if source, ok := domain.MapEventTypeToSource(ev.EventType); ok {
			_, err := s.timeline.Create(ctx, domain.DomainEvent{
				AttributedDomainID: agg.ID,
				AttributionEventID: ev.ID,
				EventSource:        source,
				EventTime:          ev.EventTime,
				Email:              id.emailPtr(),
				Metadata:           ev.Metadata,
			})
			if err != nil {
				return fmt.Errorf("append domain event: %w", err)
			}
		}

		audit.AttributedDomainID = &agg.ID
		if _, err := s.matches.Create(ctx, audit); err != nil {
			return fmt.Errorf("append audit row: %w", err)
		}
		return nil
	})
}

// firstEmailSentAt prefers the first send to the exact address and falls
// back to the first send to the domain. Only sends before the event count.
// The domain fallback is skipped for excluded personal domains, where any
// send to the provider is unrelated.
func (s *Service) firstEmailSentAt(ctx context.Context, clientID string, id identity, domainMatchable bool, before time.Time) (*time.Time, error) {
	if id.email != "" {
		rec, err := s.ledger.FirstSentToAddress(ctx, clientID, id.email, before)
		if err != nil {
			return nil, fmt.Errorf("first send to address: %w", err)
		}
		if rec != nil {
			return &rec.SentAt, nil
		}
	}
	if !domainMatchable {
		return nil, nil
	}

	rec, err := s.ledger.FirstSentToDomain(ctx, clientID, id.domain, before)
	if err != nil {
		return nil, fmt.Errorf("first send to domain: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	return &rec.SentAt, nil
}
