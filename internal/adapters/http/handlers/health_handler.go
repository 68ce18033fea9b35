package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/http/dto"
	"github.com/jsamuelsen11/exclusive-events/internal/ports"
)

// HealthHandler serves the orchestrator probes. Both answers are JSON and
// never cached.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness answers 200 as long as the process serves requests.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: dto.StatusOK})
}

// Readiness runs every registered check and answers 503 when any fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp, healthy := dto.NewReadinessResponse(h.registry.CheckAll(r.Context()))

	status := http.StatusServiceUnavailable
	if healthy {
		status = http.StatusOK
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, status, resp)
}
