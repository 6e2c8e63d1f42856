package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Vamsi7889/Ice-cream/internal/apperrors"
	"github.com/Vamsi7889/Ice-cream/internal/events"
	"github.com/Vamsi7889/Ice-cream/internal/models"
)

func TestFlavorService_Create(t *testing.T) {
	store := setupTestStore(t)
	pub := &recordingPublisher{}
	svc := NewFlavorService(store, pub)
	ctx := context.Background()

	t.Run("persists trimmed values", func(t *testing.T) {
		id, err := svc.Create(ctx, models.NewFlavor{
			Name:        "  Mint ",
			Ingredients: " mint, sugar\t",
			Allergens:   strPtr("  "),
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if id != 1 {
			t.Errorf("id = %d, want 1", id)
		}

		flavors, err := svc.List(ctx, "")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(flavors) != 1 {
			t.Fatalf("expected 1 flavor, got %d", len(flavors))
		}
		got := flavors[0]
		if got.Name != "Mint" || got.Ingredients != "mint, sugar" {
			t.Errorf("got %+v, want trimmed values", got)
		}
		if got.Allergens != nil {
			t.Errorf("blank allergens should be absent, got %q", *got.Allergens)
		}
	})

	t.Run("keeps allergens", func(t *testing.T) {
		if _, err := svc.Create(ctx, models.NewFlavor{
			Name:        "Pistachio",
			Ingredients: "pistachio, cream",
			Allergens:   strPtr(" nuts, dairy "),
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		flavors, err := svc.List(ctx, "pista")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(flavors) != 1 || flavors[0].AllergensText() != "nuts, dairy" {
			t.Errorf("got %+v", flavors)
		}
	})

	t.Run("rejects blank fields without persisting", func(t *testing.T) {
		inputs := []models.NewFlavor{
			{Name: "", Ingredients: "sugar"},
			{Name: "   ", Ingredients: "sugar"},
			{Name: "Lemon", Ingredients: ""},
			{Name: "Lemon", Ingredients: " \n "},
		}
		for _, in := range inputs {
			_, err := svc.Create(ctx, in)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("Create(%+v): expected validation error, got %v", in, err)
			}
		}

		flavors, err := svc.List(ctx, "lemon")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(flavors) != 0 {
			t.Errorf("validation failures must not persist rows, got %+v", flavors)
		}
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := svc.Create(ctx, models.NewFlavor{Name: "Mint", Ingredients: "different"})
		if !errors.Is(err, apperrors.ErrDuplicate) {
			t.Fatalf("expected duplicate error, got %v", err)
		}
		if apperrors.KindOf(err).HTTPStatus() != 400 {
			t.Errorf("duplicate should map to 400")
		}

		flavors, err := svc.List(ctx, "mint")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(flavors) != 1 || flavors[0].Ingredients != "mint, sugar" {
			t.Errorf("store should retain only the first Mint, got %+v", flavors)
		}
	})

	t.Run("publishes one event per created flavor", func(t *testing.T) {
		types := pub.types()
		if len(types) != 2 {
			t.Fatalf("expected 2 events, got %v", types)
		}
		for _, typ := range types {
			if typ != events.TypeFlavorCreated {
				t.Errorf("unexpected event type %q", typ)
			}
		}
	})
}

func TestFlavorService_List(t *testing.T) {
	store := setupTestStore(t)
	svc := NewFlavorService(store, nil)
	ctx := context.Background()

	for _, name := range []string{"Vanilla Bean", "Chocolate", "Mint"} {
		if _, err := svc.Create(ctx, models.NewFlavor{Name: name, Ingredients: "x"}); err != nil {
			t.Fatalf("Create(%s) failed: %v", name, err)
		}
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Vanilla Bean", "Chocolate", "Mint"}},
		{"vanilla", []string{"Vanilla Bean"}},
		{"BEAN", []string{"Vanilla Bean"}},
		{"la be", []string{"Vanilla Bean"}},
		{"o", []string{"Chocolate"}},
		{"n", []string{"Vanilla Bean", "Mint"}},
		{"strawberry", []string{}},
	}

	for _, tt := range tests {
		t.Run("query="+tt.query, func(t *testing.T) {
			got, err := svc.List(ctx, tt.query)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("List(%q) returned %d flavors, want %d", tt.query, len(got), len(tt.want))
			}
			for i, f := range got {
				if f.Name != tt.want[i] {
					t.Errorf("List(%q)[%d] = %s, want %s", tt.query, i, f.Name, tt.want[i])
				}
			}
		})
	}
}

func TestFlavorService_StoreErrors(t *testing.T) {
	cause := errors.New("disk I/O error")
	svc := NewFlavorService(failingStore{err: cause}, nil)
	ctx := context.Background()

	_, err := svc.List(ctx, "")
	if !errors.Is(err, apperrors.ErrStore) {
		t.Errorf("List: expected store error, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("List: expected cause to be wrapped")
	}

	_, err = svc.Create(ctx, models.NewFlavor{Name: "Mint", Ingredients: "mint"})
	if !errors.Is(err, apperrors.ErrStore) {
		t.Errorf("Create: expected store error, got %v", err)
	}
	if apperrors.MessageOf(err) != "Error adding flavor" {
		t.Errorf("Create message = %q", apperrors.MessageOf(err))
	}
}

func TestFlavorService_PublishFailureDoesNotFailCreate(t *testing.T) {
	store := setupTestStore(t)
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := NewFlavorService(store, pub)

	if _, err := svc.Create(context.Background(), models.NewFlavor{Name: "Mint", Ingredients: "mint"}); err != nil {
		t.Fatalf("Create should succeed despite publish failure: %v", err)
	}
	if len(pub.types()) != 1 {
		t.Errorf("expected one publish attempt, got %d", len(pub.types()))
	}
}
