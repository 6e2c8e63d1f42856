package client

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Vamsi7889/Ice-cream/internal/models"
)

func TestRenderFlavors(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderFlavors(&buf, nil); err != nil {
		t.Fatalf("RenderFlavors failed: %v", err)
	}
	if got := buf.String(); got != "No flavors found.\n" {
		t.Errorf("empty render = %q", got)
	}

	buf.Reset()
	nuts := "nuts"
	flavors := []models.Flavor{
		{ID: 1, Name: "Mint", Ingredients: "mint"},
		{ID: 2, Name: "Pecan", Ingredients: "pecans", Allergens: &nuts},
	}
	if err := RenderFlavors(&buf, flavors); err != nil {
		t.Fatalf("RenderFlavors failed: %v", err)
	}
	want := "[1] Mint (mint)\n[2] Pecan (pecans) allergens: nuts\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderCart(t *testing.T) {
	tests := []struct {
		name string
		cart []models.Flavor
		want string
	}{
		{"empty", nil, "Your cart is empty.\nTotal Items: 0\n"},
		{"duplicates counted", []models.Flavor{{ID: 1, Name: "Mint"}, {ID: 1, Name: "Mint"}},
			"[1] Mint\n[1] Mint\nTotal Items: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := RenderCart(&buf, tt.cart); err != nil {
				t.Fatalf("RenderCart failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	board := NewBoard(time.Minute)
	board.Post(SectionCart, "Added to cart!")

	state := State{
		Flavors: []models.Flavor{{ID: 1, Name: "Mint", Ingredients: "mint"}, {ID: 2, Name: "Vanilla", Ingredients: "vanilla"}},
		Cart:    []models.Flavor{{ID: 1, Name: "Mint"}},
	}

	var buf bytes.Buffer
	if err := Render(&buf, state, "van", board); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"== Flavors ==", "[2] Vanilla (vanilla)", "== Cart ==", "> Added to cart!", "[1] Mint\n", "Total Items: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[1] Mint (mint)") {
		t.Errorf("filter not applied:\n%s", out)
	}
}
