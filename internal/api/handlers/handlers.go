package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avasse/roomly-be/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError translates a service failure to a client-visible
// status. Authentication and ownership failures are 401; everything else,
// including raw store failures, surfaces at 400 with the underlying
// message. Nothing is retried and nothing is fatal to the process.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, services.ErrUnauthenticated) || errors.Is(err, services.ErrNotOwner) {
		status = http.StatusUnauthorized
	}
	writeError(w, status, err.Error())
}
