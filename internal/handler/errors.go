package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/faaaroooqi/Feedstagram-app/internal/repository"
	"github.com/faaaroooqi/Feedstagram-app/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps domain errors to HTTP statuses. Anything unmapped
// is a plain 500 so internal detail never leaks to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "Not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrDuplicateUsername):
		WriteError(w, "Username already taken", http.StatusConflict)
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, "Not authorized", http.StatusForbidden)
	case errors.Is(err, service.ErrInvalidCredentials):
		WriteError(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidToken):
		WriteError(w, "Invalid or expired token", http.StatusUnauthorized)
	case errors.Is(err, service.ErrNoImages):
		WriteError(w, "At least one image is required", http.StatusBadRequest)
	default:
		log.Printf("internal error: %v", err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
	}
}
