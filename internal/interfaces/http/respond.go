package http

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of every error and confirmation-only response.
type MessageResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, MessageResponse{Message: message})
}

func respondInternalError(w http.ResponseWriter) {
	respondMessage(w, http.StatusInternalServerError, "Internal server error")
}
