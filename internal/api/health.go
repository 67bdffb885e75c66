package api

import (
	"net/http"
	"time"

	"github.com/jalvarado/contacts-api/internal/api/shared"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Health reports service liveness. It never touches the stores, so it stays
// cheap enough for keep-alive pings and platform probes.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
