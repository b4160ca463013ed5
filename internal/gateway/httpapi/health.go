package httpapi

import (
	"context"
	"net/http"
	"time"
)

// ReadinessChecker reports whether the authentication service is serving.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

type HealthHandler struct {
	checker ReadinessChecker
	now     func() time.Time
}

func NewHealthHandler(c ReadinessChecker) *HealthHandler {
	return &HealthHandler{checker: c, now: time.Now}
}

func (h *HealthHandler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339Nano)
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": h.timestamp(),
		"service":   "gateway",
	})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.checker.Ready(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, MsgServiceNotReady)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ready",
		"timestamp": h.timestamp(),
	})
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "alive",
		"timestamp": h.timestamp(),
	})
}
