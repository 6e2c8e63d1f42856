package httpapi

import (
	"net/http"

	"github.com/Vamsi7889/Ice-cream/internal/apperrors"
	"github.com/Vamsi7889/Ice-cream/internal/models"
)

// handleListFlavors returns all flavors, filtered by ?q= when present.
func (h *Handler) handleListFlavors(w http.ResponseWriter, r *http.Request) {
	h.listFlavors(w, r, r.URL.Query().Get("q"))
}

// handleSearchFlavors serves the path-style search route.
func (h *Handler) handleSearchFlavors(w http.ResponseWriter, r *http.Request) {
	h.listFlavors(w, r, r.PathValue("query"))
}

func (h *Handler) listFlavors(w http.ResponseWriter, r *http.Request, query string) {
	flavors, err := h.flavors.List(r.Context(), query)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flavors)
}

// handleCreateFlavor creates a flavor from {name, ingredients, allergens?}.
func (h *Handler) handleCreateFlavor(w http.ResponseWriter, r *http.Request) {
	var payload models.NewFlavor
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, apperrors.Validation("Invalid JSON payload"))
		return
	}

	id, err := h.flavors.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedResponse{
		Message: "Flavor added successfully",
		ID:      id,
	})
}
