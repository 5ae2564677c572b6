package rest

import (
	"context"
	"net/http"
	"time"
)

// pingTimeout bounds one round of dependency pings.
const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// Check is an optional dependency checked by /ready and /health next to the
// database, such as the Redis lock store or the NATS connection.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	checks  []Check
	version string
}

// NewHealthHandler creates a HealthHandler. The database is always pinged
// first; extra checks follow in the order given.
func NewHealthHandler(db dbPinger, version string, checks ...Check) *HealthHandler {
	all := make([]Check, 0, len(checks)+1)
	all = append(all, Check{Name: "database", Ping: db.Ping})
	all = append(all, checks...)
	return &HealthHandler{checks: all, version: version}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the check outcome of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live reports that the process is serving. It never touches dependencies.
// GET /live
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 200 when every dependency answers and 503 otherwise. Only
// failing components are listed.
// GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.checkAll(r.Context())
	if ok {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
		return
	}

	down := make(map[string]CompStatus)
	for name, c := range components {
		if c.Status != "ok" {
			down[name] = c
		}
	}
	writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
		Status:     "down",
		Components: down,
		Timestamp:  time.Now(),
	})
}

// Health reports every component with its latency and the build version.
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.checkAll(r.Context())

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	}
	status := http.StatusOK
	if !ok {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (h *HealthHandler) checkAll(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.checks))
	ok := true
	for _, c := range h.checks {
		start := time.Now()
		if err := c.Ping(ctx); err != nil {
			components[c.Name] = CompStatus{Status: "down", Error: err.Error()}
			ok = false
			continue
		}
		components[c.Name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return components, ok
}
