// Package models defines the core domain models for the flavor shop.
//
// # Models
//
//   - Flavor: a named catalog item with ingredients and optional allergen text
//   - NewFlavor: the caller-supplied fields of a flavor that is about to be created
//
// The cart is global. There are no user accounts or sessions, so a cart
// entry only records the flavor it points at, and listing the cart yields
// the referenced Flavor rows.
//
// # Relationships
//
// A cart entry references a Flavor by ID. Several entries may reference
// the same flavor; deleting a flavor removes its entries as well.
package models
