package client

import (
	"fmt"
	"io"

	"github.com/Vamsi7889/Ice-cream/internal/models"
)

// RenderFlavors writes one line per flavor, or a placeholder when empty.
func RenderFlavors(w io.Writer, flavors []models.Flavor) error {
	if len(flavors) == 0 {
		_, err := fmt.Fprintln(w, "No flavors found.")
		return err
	}
	for _, f := range flavors {
		line := fmt.Sprintf("[%d] %s (%s)", f.ID, f.Name, f.Ingredients)
		if allergens := f.AllergensText(); allergens != "" {
			line += " allergens: " + allergens
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCart writes the cart entries followed by the item total.
func RenderCart(w io.Writer, cart []models.Flavor) error {
	if len(cart) == 0 {
		if _, err := fmt.Fprintln(w, "Your cart is empty."); err != nil {
			return err
		}
	}
	for _, f := range cart {
		if _, err := fmt.Fprintf(w, "[%d] %s\n", f.ID, f.Name); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total Items: %d\n", len(cart))
	return err
}

// RenderMessages writes live board messages, newest first.
func RenderMessages(w io.Writer, messages []string) error {
	for _, m := range messages {
		if _, err := fmt.Fprintf(w, "> %s\n", m); err != nil {
			return err
		}
	}
	return nil
}

// Render writes both sections of state with their messages. Flavors are
// filtered client-side by term.
func Render(w io.Writer, state State, term string, board *Board) error {
	if _, err := fmt.Fprintln(w, "== Flavors =="); err != nil {
		return err
	}
	if board != nil {
		if err := RenderMessages(w, board.Messages(SectionFlavors)); err != nil {
			return err
		}
	}
	if err := RenderFlavors(w, FilterFlavors(state.Flavors, term)); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\n== Cart =="); err != nil {
		return err
	}
	if board != nil {
		if err := RenderMessages(w, board.Messages(SectionCart)); err != nil {
			return err
		}
	}
	return RenderCart(w, state.Cart)
}
