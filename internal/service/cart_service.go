package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Vamsi7889/Ice-cream/internal/apperrors"
	"github.com/Vamsi7889/Ice-cream/internal/events"
	"github.com/Vamsi7889/Ice-cream/internal/models"
	"github.com/Vamsi7889/Ice-cream/internal/storage"
)

// CartService manages the global cart.
type CartService struct {
	store  storage.CartStore
	events events.Publisher
}

// NewCartService creates a new CartService with the given storage backend.
// A nil publisher disables events.
func NewCartService(store storage.CartStore, publisher events.Publisher) *CartService {
	return &CartService{store: store, events: orNop(publisher)}
}

// Add puts one entry for flavorID in the cart and returns the entry ID.
// The flavor must exist; the store checks this in the insert statement.
func (s *CartService) Add(ctx context.Context, flavorID int64) (id int64, err error) {
	ctx, span := tracer.Start(ctx, "CartService.Add",
		trace.WithAttributes(attribute.Int64("flavor.id", flavorID)))
	defer func() { endSpan(span, err) }()

	slog.Info("AddToCart request received", "flavor_id", flavorID)

	id, err = s.store.AddToCart(ctx, flavorID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			slog.Warn("AddToCart rejected", "flavor_id", flavorID, "reason", "flavor not found")
			return 0, apperrors.NotFound("Flavor not found")
		}
		slog.Error("AddToCart failed", "flavor_id", flavorID, "error", err)
		return 0, apperrors.Store("Error adding to cart", err)
	}

	slog.Info("Flavor added to cart", "flavor_id", flavorID, "cart_entry_id", id)

	event := events.New(events.TypeCartAdded)
	event.FlavorID = flavorID
	event.CartEntryID = id
	publish(ctx, s.events, event)

	return id, nil
}

// List returns the flavor behind every cart entry, duplicates included.
func (s *CartService) List(ctx context.Context) (flavors []models.Flavor, err error) {
	ctx, span := tracer.Start(ctx, "CartService.List")
	defer func() { endSpan(span, err) }()

	slog.Info("ListCart request received")

	flavors, err = s.store.ListCart(ctx)
	if err != nil {
		slog.Error("ListCart failed", "error", err)
		return nil, apperrors.Store("Database error", err)
	}

	slog.Info("ListCart successful", "count", len(flavors))
	return flavors, nil
}

// Remove deletes every cart entry for flavorID. Removing nothing succeeds.
func (s *CartService) Remove(ctx context.Context, flavorID int64) (err error) {
	ctx, span := tracer.Start(ctx, "CartService.Remove",
		trace.WithAttributes(attribute.Int64("flavor.id", flavorID)))
	defer func() { endSpan(span, err) }()

	slog.Info("RemoveFromCart request received", "flavor_id", flavorID)

	removed, err := s.store.RemoveFromCart(ctx, flavorID)
	if err != nil {
		slog.Error("RemoveFromCart failed", "flavor_id", flavorID, "error", err)
		return apperrors.Store("Error removing from cart", err)
	}

	span.SetAttributes(attribute.Int64("cart.removed", removed))
	slog.Info("Flavor removed from cart", "flavor_id", flavorID, "removed", removed)

	if removed > 0 {
		event := events.New(events.TypeCartRemoved)
		event.FlavorID = flavorID
		event.Removed = removed
		publish(ctx, s.events, event)
	}

	return nil
}
