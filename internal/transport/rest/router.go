package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/attribution-portal/internal/transport/middleware"
)

// Handlers groups everything the router serves. Metrics may be nil to leave
// the Prometheus endpoint off.
type Handlers struct {
	Health      *HealthHandler
	Events      *EventHandler
	Domains     *DomainHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers all routes behind the default middleware stack.
func NewRouter(logger *slog.Logger, h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/events", h.Events.Enqueue)
	mux.HandleFunc("POST /api/events/process", h.Events.Process)
	mux.HandleFunc("GET /api/events/stats", h.Events.Stats)
	mux.HandleFunc("GET /api/events/{id}", h.Events.Get)

	mux.HandleFunc("GET /api/domains/{id}", h.Domains.Get)
	mux.HandleFunc("POST /api/domains/{id}/review", h.Domains.RequestReview)
	mux.HandleFunc("POST /api/domains/{id}/confirm", h.Domains.Confirm)
	mux.HandleFunc("POST /api/domains/{id}/reject", h.Domains.Reject)
	mux.HandleFunc("GET /api/domains/{id}/matches", h.Domains.Matches)
	mux.HandleFunc("GET /api/domains/{id}/events", h.Domains.Timeline)
	mux.HandleFunc("GET /api/clients/{client_id}/domains/{domain}", h.Domains.Find)

	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, h.Metrics)
	}

	return middleware.Default(logger)(mux)
}
