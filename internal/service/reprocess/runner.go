package reprocess

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/attribution-portal/internal/domain"
	"github.com/heartmarshall/attribution-portal/internal/metrics"
	"github.com/heartmarshall/attribution-portal/pkg/ctxutil"
)

// Summary reports one batch run.
type Summary struct {
	Claimed int
	Done    int
	Failed  int
	Groups  int
}

// group is a run of events that must be processed one at a time, in order.
type group struct {
	key    string
	events []domain.PendingEvent
}

// groupEvents partitions a time-ordered batch by (client, resolved domain),
// keeping the order within each group. Events without a domain never touch an
// aggregate, so each gets its own group.
func groupEvents(batch []domain.PendingEvent) []group {
	index := make(map[string]int)
	var out []group
	for _, pe := range batch {
		key := "event\x00" + pe.Event.ID.String()
		if d := pe.Event.ResolvedDomain(); d != "" {
			key = pe.Event.ClientID + "\x00" + d
		}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, group{key: key})
		}
		out[i].events = append(out[i].events, pe)
	}
	return out
}

// Recover returns events abandoned in processing (idle for longer than
// StaleAfter) to the queue and re-queues failed events that still have
// attempts left. It is safe to call while other runners are active.
func (s *Service) Recover(ctx context.Context) error {
	reset, err := s.queue.ResetProcessing(ctx, s.opts.StaleAfter)
	if err != nil {
		return fmt.Errorf("reset processing: %w", err)
	}
	retried, err := s.queue.RetryFailed(ctx, s.opts.MaxAttempts)
	if err != nil {
		return fmt.Errorf("retry failed: %w", err)
	}
	if reset > 0 || retried > 0 {
		s.log.InfoContext(ctx, "queue recovered",
			slog.Int("reset_processing", reset),
			slog.Int("retried_failed", retried),
		)
	}
	return nil
}

// RunOnce claims one batch and processes it. Each event is its own unit of
// work: a failure is recorded on the event and never aborts the batch. Only
// claim failures and context cancellation are returned.
func (s *Service) RunOnce(ctx context.Context) (Summary, error) {
	batch, err := s.queue.ClaimBatch(ctx, s.opts.BatchSize)
	if err != nil {
		return Summary{}, fmt.Errorf("claim batch: %w", err)
	}

	groups := groupEvents(batch)
	sum := Summary{Claimed: len(batch), Groups: len(groups)}
	if len(batch) == 0 {
		return sum, nil
	}

	var mu sync.Mutex
	record := func(ok bool) {
		mu.Lock()
		defer mu.Unlock()
		if ok {
			sum.Done++
		} else {
			sum.Failed++
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for _, grp := range groups {
		g.Go(func() error {
			for _, pe := range grp.events {
				// Unclaimed leftovers stay in processing and are recovered on the next start.
				if gctx.Err() != nil {
					return nil
				}
				record(s.processOne(gctx, pe))
			}
			return nil
		})
	}
	_ = g.Wait()

	metrics.BatchEvents.WithLabelValues("done").Add(float64(sum.Done))
	metrics.BatchEvents.WithLabelValues("failed").Add(float64(sum.Failed))

	s.log.InfoContext(ctx, "batch processed",
		slog.Int("claimed", sum.Claimed),
		slog.Int("groups", sum.Groups),
		slog.Int("done", sum.Done),
		slog.Int("failed", sum.Failed),
	)

	if err := ctx.Err(); err != nil {
		return sum, err
	}
	return sum, nil
}

// processOne runs the engine on one event and checkpoints the outcome.
func (s *Service) processOne(ctx context.Context, pe domain.PendingEvent) bool {
	ev := pe.Event
	log := s.log.With(slog.String("event_id", ev.ID.String()), slog.String("client_id", ev.ClientID))

	if _, err := s.engine.ProcessEvent(ctxutil.WithSource(ctx, SourceBatch), ev); err != nil {
		if ctx.Err() != nil {
			// Interrupted, not failed: the event stays in processing for Recover.
			return false
		}
		log.ErrorContext(ctx, "process event", slog.Int("attempt", pe.Attempts), slog.String("error", err.Error()))
		if markErr := s.queue.MarkFailed(context.WithoutCancel(ctx), ev.ID, err.Error()); markErr != nil {
			log.ErrorContext(ctx, "mark event failed", slog.String("error", markErr.Error()))
		}
		return false
	}

	if err := s.queue.MarkDone(context.WithoutCancel(ctx), ev.ID); err != nil {
		// The engine's writes are idempotent; the event is retried after recovery.
		log.ErrorContext(ctx, "mark event done", slog.String("error", err.Error()))
		return false
	}
	return true
}

// Run processes batches until ctx is cancelled, recovering the queue before
// every batch so failed events are retried without a restart. A full batch
// is followed immediately by the next one; otherwise the runner waits for
// interval.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	for {
		if err := s.Recover(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.log.ErrorContext(ctx, "recover queue", slog.String("error", err.Error()))
		}

		sum, err := s.RunOnce(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		if err != nil {
			s.log.ErrorContext(ctx, "batch run", slog.String("error", err.Error()))
		}
		if _, err := s.Stats(ctx); err != nil && ctx.Err() == nil {
			s.log.WarnContext(ctx, "queue stats", slog.String("error", err.Error()))
		}

		if err == nil && sum.Claimed == s.opts.BatchSize {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}
