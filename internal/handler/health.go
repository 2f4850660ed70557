package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/ankur09868/whatsapp-automation/internal/service"
)

// HealthCheck handles GET /health. Unhealthy dependencies yield a 503 so
// load balancers can take the instance out of rotation.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := h.service.Health.GetHealth()

	if status.Status == service.HealthStatusUnhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, status)
}
