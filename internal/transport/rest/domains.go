package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/attribution-portal/internal/domain"
	"github.com/heartmarshall/attribution-portal/internal/service/review"
	"github.com/heartmarshall/attribution-portal/internal/transport/wire"
)

type reviewService interface {
	GetDomain(ctx context.Context, domainID uuid.UUID) (*domain.AttributedDomain, error)
	RequestReview(ctx context.Context, domainID uuid.UUID) (*domain.AttributedDomain, error)
	Confirm(ctx context.Context, input review.ResolveInput) (*domain.AttributedDomain, error)
	Reject(ctx context.Context, input review.ResolveInput) (*domain.AttributedDomain, error)
	Matches(ctx context.Context, domainID uuid.UUID, limit int) ([]domain.AttributionMatch, error)
	Timeline(ctx context.Context, domainID uuid.UUID) ([]domain.DomainEvent, error)
	FindDomain(ctx context.Context, clientID, name string) (*domain.AttributedDomain, error)
}

// DomainHandler serves attributed domain endpoints.
type DomainHandler struct {
	review reviewService
	log    *slog.Logger
}

// NewDomainHandler creates a DomainHandler.
func NewDomainHandler(review reviewService, logger *slog.Logger) *DomainHandler {
	return &DomainHandler{
		review: review,
		log:    logger.With("handler", "domains"),
	}
}

type resolveRequest struct {
	Note *string `json:"note"`
}

// Get returns one attributed domain.
// GET /api/domains/{id}
func (h *DomainHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.review.GetDomain(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.FromAttributedDomain(*d))
}

// Find looks a domain up by client and name.
// GET /api/clients/{client_id}/domains/{domain}
func (h *DomainHandler) Find(w http.ResponseWriter, r *http.Request) {
	d, err := h.review.FindDomain(r.Context(), r.PathValue("client_id"), r.PathValue("domain"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.FromAttributedDomain(*d))
}

// RequestReview opens the client dispute window.
// POST /api/domains/{id}/review
func (h *DomainHandler) RequestReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.review.RequestReview(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.FromAttributedDomain(*d))
}

// Confirm accepts a pending review.
// POST /api/domains/{id}/confirm
func (h *DomainHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.review.Confirm)
}

// Reject records a client dispute.
// POST /api/domains/{id}/reject
func (h *DomainHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.review.Reject)
}

func (h *DomainHandler) resolve(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, input review.ResolveInput) (*domain.AttributedDomain, error),
) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	// The body is optional; an empty one means no note.
	var req resolveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	d, err := fn(r.Context(), review.ResolveInput{DomainID: id, Note: req.Note})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.FromAttributedDomain(*d))
}

// Matches returns the audit trail of a domain, newest first.
// GET /api/domains/{id}/matches?limit=50
func (h *DomainHandler) Matches(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be an integer"))
			return
		}
	}

	ms, err := h.review.Matches(r.Context(), id, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.FromAttributionMatches(ms))
}

// Timeline returns the events recorded against a domain in event-time order.
// GET /api/domains/{id}/events
func (h *DomainHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	evs, err := h.review.Timeline(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wire.FromDomainEvents(evs))
}
