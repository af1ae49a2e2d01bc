package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"food-dashboard/internal/middleware"
	"food-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes a model.ErrorResponse carrying the request's correlation id.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFrom(r.Context())
	logger.Error().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message, CorrelationID: correlationID})
}

// writeDomainError maps service errors onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, fallback string, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, fallback, logger)
		return
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case model.ErrCodeFoodNotFound:
		status = http.StatusNotFound
	case model.ErrCodeUnauthorised:
		status = http.StatusUnauthorized
	case model.ErrCodeInternalError:
		status = http.StatusInternalServerError
	}

	writeError(w, r, status, domainErr.Code, domainErr.Message, logger)
}
