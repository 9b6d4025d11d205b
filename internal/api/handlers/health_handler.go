package handlers

import "net/http"

// @Summary Health check
// @Description Reports API liveness and archive database connectivity. Always returns 200; a broken database degrades the payload instead of failing the probe.
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Health.Check(r.Context()))
}
