package client

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Vamsi7889/Ice-cream/internal/models"
)

// State is the client's mirror of the server's flavors and cart.
type State struct {
	Flavors []models.Flavor
	Cart    []models.Flavor
}

// Sync keeps a State in step with the server. The mirrors are only ever
// replaced by a full refetch, never edited locally.
type Sync struct {
	api   API
	board *Board

	mu    sync.RWMutex
	state State
}

// NewSync creates a Sync over api that reports to board.
func NewSync(api API, board *Board) *Sync {
	if board == nil {
		board = NewBoard(DefaultMessageTTL)
	}
	return &Sync{
		api:   api,
		board: board,
		state: State{Flavors: []models.Flavor{}, Cart: []models.Flavor{}},
	}
}

// State returns a copy of the current mirrors.
func (s *Sync) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Flavors: append([]models.Flavor(nil), s.state.Flavors...),
		Cart:    append([]models.Flavor(nil), s.state.Cart...),
	}
}

// Board returns the message board the Sync posts to.
func (s *Sync) Board() *Board {
	return s.board
}

// Filtered returns the mirrored flavors whose name contains term.
func (s *Sync) Filtered(term string) []models.Flavor {
	return FilterFlavors(s.State().Flavors, term)
}

// Load fetches both collections.
func (s *Sync) Load(ctx context.Context) error {
	return errors.Join(s.FetchFlavors(ctx), s.FetchCart(ctx))
}

// FetchFlavors replaces the flavor mirror with the full server list.
func (s *Sync) FetchFlavors(ctx context.Context) error {
	flavors, err := s.api.ListFlavors(ctx, "")
	if err != nil {
		s.board.Post(SectionFlavors, "Error loading flavors.")
		return err
	}

	s.mu.Lock()
	s.state.Flavors = nonNil(flavors)
	s.mu.Unlock()
	return nil
}

// FetchCart replaces the cart mirror with the server's cart.
func (s *Sync) FetchCart(ctx context.Context) error {
	cart, err := s.api.ListCart(ctx)
	if err != nil {
		s.board.Post(SectionCart, "Error loading cart.")
		return err
	}

	s.mu.Lock()
	s.state.Cart = nonNil(cart)
	s.mu.Unlock()
	return nil
}

// AddFlavor creates a flavor and refetches the flavor list. A failed
// refetch is reported on the board only.
func (s *Sync) AddFlavor(ctx context.Context, in models.NewFlavor) (int64, error) {
	id, err := s.api.CreateFlavor(ctx, in)
	if err != nil {
		s.board.Post(SectionFlavors, errorText(err))
		return 0, err
	}
	_ = s.FetchFlavors(ctx)
	s.board.Post(SectionFlavors, "Flavor added!")
	return id, nil
}

// AddToCart adds flavorID to the cart and refetches the cart.
func (s *Sync) AddToCart(ctx context.Context, flavorID int64) error {
	if _, err := s.api.AddToCart(ctx, flavorID); err != nil {
		s.board.Post(SectionCart, errorText(err))
		return err
	}
	_ = s.FetchCart(ctx)
	s.board.Post(SectionCart, "Added to cart!")
	return nil
}

// RemoveFromCart removes flavorID from the cart and refetches the cart.
func (s *Sync) RemoveFromCart(ctx context.Context, flavorID int64) error {
	if err := s.api.RemoveFromCart(ctx, flavorID); err != nil {
		s.board.Post(SectionCart, errorText(err))
		return err
	}
	_ = s.FetchCart(ctx)
	s.board.Post(SectionCart, "Removed from cart!")
	return nil
}

// FilterFlavors returns the flavors whose name contains term, ignoring case.
// An empty term keeps every flavor.
func FilterFlavors(flavors []models.Flavor, term string) []models.Flavor {
	term = strings.ToLower(term)
	filtered := make([]models.Flavor, 0, len(flavors))
	for _, f := range flavors {
		if strings.Contains(strings.ToLower(f.Name), term) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

func errorText(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Request failed."
}

func nonNil(flavors []models.Flavor) []models.Flavor {
	if flavors == nil {
		return []models.Flavor{}
	}
	return flavors
}
