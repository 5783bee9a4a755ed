package handler

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	RunID   string `json:"runId,omitempty"`
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready once a build has been published.
func HandleReadyz(src TrackSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := src.Result()
		if res == nil {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: ErrMsgNotReady,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK, RunID: res.RunID})
	}
}
