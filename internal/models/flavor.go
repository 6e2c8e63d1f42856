package models

// Flavor represents a catalog item that can be added to the cart.
type Flavor struct {
	// ID is assigned by the store on insert.
	ID int64 `json:"id"`

	// Name is unique across flavors (exact, case-sensitive match).
	Name string `json:"name"`

	// Ingredients is free text, e.g. "mint, sugar".
	Ingredients string `json:"ingredients"`

	// Allergens is optional. Nil means the flavor carries no allergen text.
	Allergens *string `json:"allergens"`
}

// NewFlavor holds the fields supplied when creating a flavor.
// Values are trimmed and validated by the flavor service before they reach storage.
type NewFlavor struct {
	Name        string  `json:"name"`
	Ingredients string  `json:"ingredients"`
	Allergens   *string `json:"allergens,omitempty"`
}

// AllergensText returns the allergen text or an empty string when absent.
func (f Flavor) AllergensText() string {
	if f.Allergens == nil {
		return ""
	}
	return *f.Allergens
}
