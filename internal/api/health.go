package api

import (
	"encoding/json"
	"net/http"
)

// HealthResponse is the body returned by the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// HealthHandler returns a simple health check handler function
// that responds with a 200 OK status and JSON {"status":"ok"}
func HealthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		// The status code has already been set, so a failed write is ignored
		_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Version: version})
	}
}
