package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Urigo/accounter-fullstack-sub008/internal/adapter/http/dto"
	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes. Missing
// source data is the caller's problem to fix (422); residuals the
// engine refuses to force-balance are conflicts (409).
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrChargeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMissingMapping):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMissingRate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidDocument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnbalancedConversion):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnbalanceable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
