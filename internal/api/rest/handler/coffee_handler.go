package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/CameronXie/coffee-api/internal/domain"
	"github.com/CameronXie/coffee-api/internal/repository"
)

const (
	internalErrorMessage = "An internal error occurred while processing your request"
	trailingDataMessage  = "Request body must contain a single JSON object"
)

// CoffeeRepository defines the interface for coffee repository operations
type CoffeeRepository interface {
	FindAll(ctx context.Context) ([]domain.Coffee, error)
	FindByID(ctx context.Context, id string) (*domain.Coffee, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, coffee *domain.Coffee) (*domain.Coffee, error)
	DeleteByID(ctx context.Context, id string) error
}

// CoffeeHandler handles HTTP requests for coffee operations
type CoffeeHandler struct {
	repo   CoffeeRepository
	logger *slog.Logger
}

// NewCoffeeHandler creates a new CoffeeHandler instance
func NewCoffeeHandler(repo CoffeeRepository, logger *slog.Logger) *CoffeeHandler {
	return &CoffeeHandler{
		repo:   repo,
		logger: logger,
	}
}

// CoffeeRequest represents the request payload for creating or replacing a coffee
type CoffeeRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// ListCoffees handles GET /coffees - lists every coffee
func (h *CoffeeHandler) ListCoffees(w http.ResponseWriter, r *http.Request) {
	coffees, err := h.repo.FindAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to list coffees", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list coffees", internalErrorMessage)
		return
	}

	if coffees == nil {
		coffees = []domain.Coffee{}
	}

	WriteJSONResponse(w, http.StatusOK, coffees)
}

// GetCoffee handles GET /coffees/{id} - retrieves a coffee by ID
func (h *CoffeeHandler) GetCoffee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	coffee, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		var notFoundErr *repository.NotFoundError
		if errors.As(err, &notFoundErr) {
			h.logger.Warn("Coffee not found", "coffee_id", id, "error", err)
			WriteErrorResponse(w, http.StatusNotFound, "Coffee not found", "The requested coffee could not be found")
			return
		}

		h.logger.Error("Failed to retrieve coffee", "coffee_id", id, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve coffee", internalErrorMessage)
		return
	}

	WriteJSONResponse(w, http.StatusOK, coffee)
}

// CreateCoffee handles POST /coffees - stores the coffee, generating an ID when none is given
func (h *CoffeeHandler) CreateCoffee(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	coffee := &domain.Coffee{ID: req.ID, Name: req.Name}
	coffee.EnsureID()

	saved, err := h.repo.Save(r.Context(), coffee)
	if err != nil {
		h.logger.Error("Failed to create coffee", "coffee_id", coffee.ID, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create coffee", internalErrorMessage)
		return
	}

	WriteJSONResponse(w, http.StatusOK, saved)
}

// UpsertCoffee handles PUT /coffees/{id} - replaces the coffee at the path ID, or creates it.
// The path ID always wins over an ID in the body.
func (h *CoffeeHandler) UpsertCoffee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Parse request body
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	// The path ID is authoritative for the stored record
	if req.ID != "" && req.ID != id {
		h.logger.Warn("Body ID replaced by path ID", "coffee_id", id, "body_id", req.ID)
	}

	// Existence decides between updated and created
	exists, err := h.repo.ExistsByID(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to check coffee", "coffee_id", id, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to save coffee", internalErrorMessage)
		return
	}

	// Save to database
	saved, err := h.repo.Save(r.Context(), &domain.Coffee{ID: id, Name: req.Name})
	if err != nil {
		h.logger.Error("Failed to save coffee", "coffee_id", id, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to save coffee", internalErrorMessage)
		return
	}

	// Return saved coffee
	status := http.StatusCreated
	if exists {
		status = http.StatusOK
	}

	WriteJSONResponse(w, status, saved)
}

// DeleteCoffee handles DELETE /coffees/{id} - removes a coffee; deleting an absent ID succeeds
func (h *CoffeeHandler) DeleteCoffee(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.repo.DeleteByID(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete coffee", "coffee_id", id, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Failed to delete coffee", internalErrorMessage)
		return
	}

	WriteNoContent(w)
}

// decodeRequest parses a single JSON value from the body and writes a 400 response on failure.
func (h *CoffeeHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*CoffeeRequest, bool) {
	var req CoffeeRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return nil, false
	}

	if dec.More() {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", trailingDataMessage)
		return nil, false
	}

	return &req, true
}
