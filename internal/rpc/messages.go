package rpc

import "github.com/Vamsi7889/Ice-cream/internal/models"

// Fully-qualified service and procedure names.
const (
	FlavorServiceName = "flavorshop.v1.FlavorService"
	CartServiceName   = "flavorshop.v1.CartService"

	ListFlavorsProcedure    = "/" + FlavorServiceName + "/ListFlavors"
	CreateFlavorProcedure   = "/" + FlavorServiceName + "/CreateFlavor"
	AddToCartProcedure      = "/" + CartServiceName + "/AddToCart"
	ListCartProcedure       = "/" + CartServiceName + "/ListCart"
	RemoveFromCartProcedure = "/" + CartServiceName + "/RemoveFromCart"
)

// ListFlavorsRequest asks for all flavors, or those whose name contains Query.
type ListFlavorsRequest struct {
	Query string `json:"query,omitempty"`
}

// ListFlavorsResponse carries the matching flavors in insertion order.
type ListFlavorsResponse struct {
	Flavors []models.Flavor `json:"flavors"`
}

// CreateFlavorRequest carries the fields of a new flavor.
type CreateFlavorRequest struct {
	Name        string  `json:"name"`
	Ingredients string  `json:"ingredients"`
	Allergens   *string `json:"allergens,omitempty"`
}

// CreateFlavorResponse returns the ID assigned to the new flavor.
type CreateFlavorResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// AddToCartRequest names the flavor to add to the cart.
type AddToCartRequest struct {
	FlavorID int64 `json:"flavorId"`
}

// AddToCartResponse returns the ID of the new cart entry.
type AddToCartResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ListCartRequest takes no parameters; the cart is global.
type ListCartRequest struct{}

// ListCartResponse carries one flavor per cart entry.
type ListCartResponse struct {
	Flavors []models.Flavor `json:"flavors"`
}

// RemoveFromCartRequest names the flavor whose cart entries are removed.
type RemoveFromCartRequest struct {
	FlavorID int64 `json:"flavorId"`
}

// RemoveFromCartResponse confirms the removal.
type RemoveFromCartResponse struct {
	Message string `json:"message"`
}
