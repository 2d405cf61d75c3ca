package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/oggyb/portfolio-inbox/internal/response"
)

// Pinger is anything the health endpoint can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HomeHandler serves the root and health endpoints.
type HomeHandler struct {
	appName string
	checks  map[string]Pinger
}

// NewHomeHandler returns a HomeHandler probing the given components. A nil
// Pinger is reported as "disabled".
func NewHomeHandler(appName string, checks map[string]Pinger) *HomeHandler {
	return &HomeHandler{appName: appName, checks: checks}
}

// Index godoc
// @Summary     Welcome endpoint
// @Description Simple root endpoint that returns a welcome message.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.WelcomeResponse
// @Router      / [get]
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	payload := response.WelcomePayload{
		Message: "Welcome to the " + h.appName + " API",
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// Health godoc
// @Summary     Health check
// @Description Always 200 while the process serves requests. Status is "degraded" when a
// @Description backing component is down; submissions are then journaled and admin reads serve demo data.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.HealthResponse
// @Router      /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	payload := response.HealthPayload{
		Status:     "ok",
		Components: make(map[string]string, len(h.checks)),
	}

	for name, p := range h.checks {
		switch {
		case p == nil:
			payload.Components[name] = "disabled"
		case p.Ping(ctx) != nil:
			payload.Components[name] = "down"
			payload.Status = "degraded"
		default:
			payload.Components[name] = "up"
		}
	}

	response.RespondJSON(w, http.StatusOK, payload)
}
