package handlers

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"pharma-backend/internal/services"
)

// writeError maps service/repository errors onto status codes: validation
// failures are 400, missing rows 404, everything else 500 with the raw
// message passed through (internal tool, deliberate).
func writeError(w http.ResponseWriter, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, pgx.ErrNoRows):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
