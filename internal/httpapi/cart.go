package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Vamsi7889/Ice-cream/internal/apperrors"
)

// FlavorID decodes from a JSON number or a numeric string, since browser
// clients often send data attributes verbatim.
type FlavorID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *FlavorID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = FlavorID(n)
	return nil
}

type addToCartRequest struct {
	FlavorID FlavorID `json:"flavorId"`
}

// handleListCart returns the flavors currently in the cart.
func (h *Handler) handleListCart(w http.ResponseWriter, r *http.Request) {
	flavors, err := h.cart.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, flavors)
}

// handleAddToCart adds one entry for {flavorId}.
func (h *Handler) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var payload addToCartRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, apperrors.Validation("Invalid JSON payload"))
		return
	}

	id, err := h.cart.Add(r.Context(), int64(payload.FlavorID))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedResponse{
		Message: "Flavor added to cart",
		ID:      id,
	})
}

// handleRemoveFromCart removes every cart entry for the flavor in the path.
func (h *Handler) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	flavorID, err := strconv.ParseInt(r.PathValue("flavorId"), 10, 64)
	if err != nil {
		writeError(w, apperrors.Validation("Invalid flavor ID"))
		return
	}

	if err := h.cart.Remove(r.Context(), flavorID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Flavor removed from cart"})
}
