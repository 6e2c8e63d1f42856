// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/Vamsi7889/Ice-cream/internal/models"
)

var (
	// ErrNotFound indicates a referenced record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness constraint rejected the write.
	ErrAlreadyExists = errors.New("record already exists")
)

// FlavorStore persists the flavor catalog.
type FlavorStore interface {
	// CreateFlavor inserts a flavor and populates flavor.ID.
	// Returns ErrAlreadyExists when the name is taken.
	CreateFlavor(ctx context.Context, flavor *models.Flavor) error

	// ListFlavors returns flavors in insertion order. A non-empty query keeps
	// only flavors whose name contains it, ignoring case.
	ListFlavors(ctx context.Context, query string) ([]models.Flavor, error)
}

// CartStore persists the global cart.
type CartStore interface {
	// AddToCart inserts a cart entry for flavorID and returns the entry ID.
	// Returns ErrNotFound, without inserting, when the flavor does not exist.
	AddToCart(ctx context.Context, flavorID int64) (int64, error)

	// ListCart returns the referenced flavor for every cart entry, in entry order.
	ListCart(ctx context.Context) ([]models.Flavor, error)

	// RemoveFromCart deletes every entry referencing flavorID and reports how
	// many were removed. Removing nothing is not an error.
	RemoveFromCart(ctx context.Context, flavorID int64) (int64, error)
}

// Store defines the full set of storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	FlavorStore
	CartStore

	// Ping checks the store is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
