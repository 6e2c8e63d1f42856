package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Vamsi7889/Ice-cream/internal/apperrors"
	"github.com/Vamsi7889/Ice-cream/internal/events"
	"github.com/Vamsi7889/Ice-cream/internal/models"
	"github.com/Vamsi7889/Ice-cream/internal/storage"
)

// FlavorService lists, searches and creates flavors.
type FlavorService struct {
	store  storage.FlavorStore
	events events.Publisher
}

// NewFlavorService creates a new FlavorService with the given storage backend.
// A nil publisher disables events.
func NewFlavorService(store storage.FlavorStore, publisher events.Publisher) *FlavorService {
	return &FlavorService{store: store, events: orNop(publisher)}
}

// List returns all flavors, or those whose name contains query ignoring case.
func (s *FlavorService) List(ctx context.Context, query string) (flavors []models.Flavor, err error) {
	ctx, span := tracer.Start(ctx, "FlavorService.List",
		trace.WithAttributes(attribute.String("flavor.query", query)))
	defer func() { endSpan(span, err) }()

	slog.Info("ListFlavors request received", "query", query)

	flavors, err = s.store.ListFlavors(ctx, query)
	if err != nil {
		slog.Error("ListFlavors failed", "query", query, "error", err)
		return nil, apperrors.Store("Database error", err)
	}

	slog.Info("ListFlavors successful", "count", len(flavors))
	return flavors, nil
}

// Create validates and persists a new flavor and returns its ID.
// Name and ingredients are trimmed and must not be blank; blank allergens
// are stored as absent.
func (s *FlavorService) Create(ctx context.Context, in models.NewFlavor) (id int64, err error) {
	ctx, span := tracer.Start(ctx, "FlavorService.Create")
	defer func() { endSpan(span, err) }()

	flavor := models.Flavor{
		Name:        strings.TrimSpace(in.Name),
		Ingredients: strings.TrimSpace(in.Ingredients),
	}
	if in.Allergens != nil {
		if allergens := strings.TrimSpace(*in.Allergens); allergens != "" {
			flavor.Allergens = &allergens
		}
	}

	slog.Info("CreateFlavor request received", "name", flavor.Name)

	if flavor.Name == "" || flavor.Ingredients == "" {
		slog.Warn("CreateFlavor rejected", "reason", "missing name or ingredients")
		return 0, apperrors.Validation("Name and ingredients are required")
	}

	if err := s.store.CreateFlavor(ctx, &flavor); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			slog.Warn("CreateFlavor rejected", "name", flavor.Name, "reason", "duplicate name")
			return 0, apperrors.Duplicate(fmt.Sprintf("A flavor named %s already exists", flavor.Name), err)
		}
		slog.Error("CreateFlavor failed", "name", flavor.Name, "error", err)
		return 0, apperrors.Store("Error adding flavor", err)
	}

	span.SetAttributes(attribute.Int64("flavor.id", flavor.ID))
	slog.Info("Flavor created", "flavor_id", flavor.ID, "name", flavor.Name)

	event := events.New(events.TypeFlavorCreated)
	event.FlavorID = flavor.ID
	event.FlavorName = flavor.Name
	publish(ctx, s.events, event)

	return flavor.ID, nil
}
