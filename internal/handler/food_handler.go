package handler

import (
	"encoding/json"
	"net/http"

	"food-dashboard/internal/model"
	"food-dashboard/internal/service"

	"github.com/rs/zerolog"
)

// FoodHandler handles food-related HTTP requests.
type FoodHandler struct {
	service service.FoodService
	logger  zerolog.Logger
}

// NewFoodHandler creates a new food handler.
func NewFoodHandler(service service.FoodService, logger zerolog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		logger:  logger.With().Str("handler", "food").Logger(),
	}
}

// List handles GET /foods requests.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err, "failed to retrieve foods", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, foods)
}

// Create handles POST /foods requests.
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	food, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, r, err, "failed to create food", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, food)
}

// Update handles PUT /foods/{id} requests.
func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeDomainError(w, r, model.ErrMissingFoodID, "", h.logger)
		return
	}

	var food model.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	updated, err := h.service.Update(r.Context(), id, &food)
	if err != nil {
		writeDomainError(w, r, err, "failed to update food", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /foods/{id} requests.
func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeDomainError(w, r, model.ErrMissingFoodID, "", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, err, "failed to delete food", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
