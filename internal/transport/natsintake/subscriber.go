// Package natsintake feeds events published on a NATS subject into the
// pending queue.
package natsintake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/heartmarshall/attribution-portal/internal/domain"
	"github.com/heartmarshall/attribution-portal/internal/metrics"
	"github.com/heartmarshall/attribution-portal/internal/service/reprocess"
	"github.com/heartmarshall/attribution-portal/internal/transport/wire"
	"github.com/heartmarshall/attribution-portal/pkg/ctxutil"
)

// enqueueTimeout bounds the store write for one message.
const enqueueTimeout = 10 * time.Second

type eventQueue interface {
	Enqueue(ctx context.Context, ev domain.AttributionEvent, source string) (bool, error)
}

// Config holds the connection and subscription settings.
type Config struct {
	URL     string
	Subject string
	Queue   string
	Name    string
}

// Connect opens a NATS connection that reconnects forever and logs
// connection state changes.
func Connect(cfg Config, log *slog.Logger) (*nats.Conn, error) {
	name := cfg.Name
	if name == "" {
		name = "attribution-portal"
	}
	conn, err := nats.Connect(cfg.URL,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.Timeout(5*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", slog.String("error", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("nats reconnected", slog.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return conn, nil
}

// Subscriber is a queue-group subscription on the intake subject. Several
// instances share the load; each message reaches one of them.
type Subscriber struct {
	conn    *nats.Conn
	subject string
	queue   string
	events  eventQueue
	log     *slog.Logger

	mu  sync.Mutex
	sub *nats.Subscription
}

// NewSubscriber creates a Subscriber. Call Start to begin receiving.
func NewSubscriber(conn *nats.Conn, cfg Config, events eventQueue, log *slog.Logger) *Subscriber {
	return &Subscriber{
		conn:    conn,
		subject: cfg.Subject,
		queue:   cfg.Queue,
		events:  events,
		log:     log.With("component", "nats_intake", "subject", cfg.Subject),
	}
}

// Start subscribes to the intake subject.
func (s *Subscriber) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub != nil {
		return errors.New("nats intake already started")
	}

	sub, err := s.conn.QueueSubscribe(s.subject, s.queue, func(msg *nats.Msg) {
		ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
		defer cancel()
		s.handle(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", s.subject, err)
	}
	s.sub = sub
	s.log.Info("nats intake started", slog.String("queue", s.queue))
	return nil
}

// Stop drains the subscription so that in-flight messages finish.
func (s *Subscriber) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub == nil {
		return nil
	}
	err := s.sub.Drain()
	s.sub = nil
	if err != nil {
		return fmt.Errorf("drain %s: %w", s.subject, err)
	}
	return nil
}

// handle decodes one message and enqueues it. It returns the metric result
// label. Invalid payloads are dropped; they would fail on every redelivery.
func (s *Subscriber) handle(ctx context.Context, msg *nats.Msg) string {
	result := s.enqueue(ctx, msg)
	metrics.NATSMessages.WithLabelValues(result).Inc()
	return result
}

func (s *Subscriber) enqueue(ctx context.Context, msg *nats.Msg) string {
	ev, err := wire.DecodeEvent(msg.Data)
	if err != nil {
		s.log.WarnContext(ctx, "drop invalid event", slog.String("error", err.Error()))
		return "invalid"
	}

	ctx = ctxutil.WithSource(ctx, reprocess.SourceNATS)
	queued, err := s.events.Enqueue(ctx, ev, reprocess.SourceNATS)
	switch {
	case errors.Is(err, domain.ErrValidation):
		s.log.WarnContext(ctx, "drop invalid event",
			slog.String("event_id", ev.ID.String()),
			slog.String("error", err.Error()),
		)
		return "invalid"
	case err != nil:
		s.log.ErrorContext(ctx, "enqueue event",
			slog.String("event_id", ev.ID.String()),
			slog.String("error", err.Error()),
		)
		return "error"
	case !queued:
		return "duplicate"
	default:
		return "queued"
	}
}
