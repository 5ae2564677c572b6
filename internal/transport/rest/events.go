package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/attribution-portal/internal/domain"
	"github.com/heartmarshall/attribution-portal/internal/service/reprocess"
	"github.com/heartmarshall/attribution-portal/internal/transport/wire"
	"github.com/heartmarshall/attribution-portal/pkg/ctxutil"
)

type eventQueue interface {
	Enqueue(ctx context.Context, ev domain.AttributionEvent, source string) (bool, error)
	Get(ctx context.Context, eventID uuid.UUID) (*domain.PendingEvent, error)
	Stats(ctx context.Context) (domain.PendingEventStats, error)
}

type eventProcessor interface {
	ProcessEvent(ctx context.Context, ev domain.AttributionEvent) (domain.MatchResult, error)
}

// EventHandler serves event intake endpoints.
type EventHandler struct {
	queue  eventQueue
	engine eventProcessor
	log    *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(queue eventQueue, engine eventProcessor, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		queue:  queue,
		engine: engine,
		log:    logger.With("handler", "events"),
	}
}

type enqueueResponse struct {
	EventID   string `json:"event_id"`
	Duplicate bool   `json:"duplicate"`
}

// Enqueue accepts an event for asynchronous processing.
// POST /api/events
func (h *EventHandler) Enqueue(w http.ResponseWriter, r *http.Request) {
	ev, ok := h.decode(w, r)
	if !ok {
		return
	}

	queued, err := h.queue.Enqueue(r.Context(), ev, reprocess.SourceHTTP)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, enqueueResponse{EventID: ev.ID.String(), Duplicate: !queued})
}

// Process matches an event synchronously and returns the result.
// POST /api/events/process
func (h *EventHandler) Process(w http.ResponseWriter, r *http.Request) {
	ev, ok := h.decode(w, r)
	if !ok {
		return
	}

	ctx := ctxutil.WithSource(r.Context(), reprocess.SourceHTTP)
	res, err := h.engine.ProcessEvent(ctx, ev)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wire.FromMatchResult(ev, res))
}

// Get returns the queue status of one event.
// GET /api/events/{id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	pe, err := h.queue.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.FromPendingEvent(*pe))
}

// Stats returns pending queue counts.
// GET /api/events/stats
func (h *EventHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.queue.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.FromQueueStats(st))
}

func (h *EventHandler) decode(w http.ResponseWriter, r *http.Request) (domain.AttributionEvent, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return domain.AttributionEvent{}, false
	}

	ev, err := wire.DecodeEvent(body)
	if err != nil {
		handleError(h.log, w, r, err)
		return domain.AttributionEvent{}, false
	}
	return ev, true
}
