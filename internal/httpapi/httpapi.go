// Package httpapi exposes the flavor and cart services as a JSON REST API.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Vamsi7889/Ice-cream/internal/apperrors"
	"github.com/Vamsi7889/Ice-cream/internal/models"
)

// FlavorService is the catalog behavior the handlers need.
type FlavorService interface {
	List(ctx context.Context, query string) ([]models.Flavor, error)
	Create(ctx context.Context, in models.NewFlavor) (int64, error)
}

// CartService is the cart behavior the handlers need.
type CartService interface {
	Add(ctx context.Context, flavorID int64) (int64, error)
	List(ctx context.Context) ([]models.Flavor, error)
	Remove(ctx context.Context, flavorID int64) error
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CreatedResponse is the body of a successful create.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// MessageResponse is the body of a successful mutation without an ID.
type MessageResponse struct {
	Message string `json:"message"`
}

// Handler holds the services behind the REST endpoints.
type Handler struct {
	flavors FlavorService
	cart    CartService
}

// NewHandler constructs the REST handler.
func NewHandler(flavors FlavorService, cart CartService) *Handler {
	return &Handler{flavors: flavors, cart: cart}
}

// RegisterRoutes maps the HTTP endpoints to handler functions.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /flavors", h.handleListFlavors)
	mux.HandleFunc("GET /flavors/search/{query}", h.handleSearchFlavors)
	mux.HandleFunc("POST /flavors", h.handleCreateFlavor)

	mux.HandleFunc("GET /cart", h.handleListCart)
	mux.HandleFunc("POST /cart", h.handleAddToCart)
	mux.HandleFunc("DELETE /cart/{flavorId}", h.handleRemoveFromCart)
}

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

// writeError maps err onto its status code and error body.
func writeError(w http.ResponseWriter, err error) {
	kind := apperrors.KindOf(err)
	writeJSON(w, kind.HTTPStatus(), ErrorResponse{
		Error:   kind.String(),
		Message: apperrors.MessageOf(err),
	})
}
