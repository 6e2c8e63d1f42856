// Package rpc exposes the flavor and cart services over Connect with JSON
// payloads, and provides the matching client.
package rpc

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/Vamsi7889/Ice-cream/internal/apperrors"
	"github.com/Vamsi7889/Ice-cream/internal/models"
)

// FlavorService is the catalog behavior the RPC handlers need.
type FlavorService interface {
	List(ctx context.Context, query string) ([]models.Flavor, error)
	Create(ctx context.Context, in models.NewFlavor) (int64, error)
}

// CartService is the cart behavior the RPC handlers need.
type CartService interface {
	Add(ctx context.Context, flavorID int64) (int64, error)
	List(ctx context.Context) ([]models.Flavor, error)
	Remove(ctx context.Context, flavorID int64) error
}

// Server implements the Connect FlavorService and CartService.
type Server struct {
	flavors FlavorService
	cart    CartService
}

// NewServer creates a new Server backed by the given services.
func NewServer(flavors FlavorService, cart CartService) *Server {
	return &Server{flavors: flavors, cart: cart}
}

// RegisterHandlers mounts every procedure on mux.
func (s *Server) RegisterHandlers(mux *http.ServeMux, opts ...connect.HandlerOption) {
	options := append([]connect.HandlerOption{WithJSON()}, opts...)

	mux.Handle(ListFlavorsProcedure, connect.NewUnaryHandler(ListFlavorsProcedure, s.ListFlavors, options...))
	mux.Handle(CreateFlavorProcedure, connect.NewUnaryHandler(CreateFlavorProcedure, s.CreateFlavor, options...))
	mux.Handle(AddToCartProcedure, connect.NewUnaryHandler(AddToCartProcedure, s.AddToCart, options...))
	mux.Handle(ListCartProcedure, connect.NewUnaryHandler(ListCartProcedure, s.ListCart, options...))
	mux.Handle(RemoveFromCartProcedure, connect.NewUnaryHandler(RemoveFromCartProcedure, s.RemoveFromCart, options...))
}

// ListFlavors returns all flavors or those matching the query.
func (s *Server) ListFlavors(ctx context.Context, req *connect.Request[ListFlavorsRequest]) (*connect.Response[ListFlavorsResponse], error) {
	flavors, err := s.flavors.List(ctx, req.Msg.Query)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListFlavorsResponse{Flavors: flavors}), nil
}

// CreateFlavor validates and stores a new flavor.
func (s *Server) CreateFlavor(ctx context.Context, req *connect.Request[CreateFlavorRequest]) (*connect.Response[CreateFlavorResponse], error) {
	id, err := s.flavors.Create(ctx, models.NewFlavor{
		Name:        req.Msg.Name,
		Ingredients: req.Msg.Ingredients,
		Allergens:   req.Msg.Allergens,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&CreateFlavorResponse{ID: id, Message: "Flavor added successfully"}), nil
}

// AddToCart adds one cart entry for an existing flavor.
func (s *Server) AddToCart(ctx context.Context, req *connect.Request[AddToCartRequest]) (*connect.Response[AddToCartResponse], error) {
	id, err := s.cart.Add(ctx, req.Msg.FlavorID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&AddToCartResponse{ID: id, Message: "Flavor added to cart"}), nil
}

// ListCart returns the flavors in the cart.
func (s *Server) ListCart(ctx context.Context, _ *connect.Request[ListCartRequest]) (*connect.Response[ListCartResponse], error) {
	flavors, err := s.cart.List(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListCartResponse{Flavors: flavors}), nil
}

// RemoveFromCart removes every cart entry for a flavor.
func (s *Server) RemoveFromCart(ctx context.Context, req *connect.Request[RemoveFromCartRequest]) (*connect.Response[RemoveFromCartResponse], error) {
	if err := s.cart.Remove(ctx, req.Msg.FlavorID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&RemoveFromCartResponse{Message: "Flavor removed from cart"}), nil
}

// toConnectError maps an apperrors kind onto a Connect code, keeping only
// the user-facing message.
func toConnectError(err error) *connect.Error {
	code := connect.CodeInternal
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		code = connect.CodeInvalidArgument
	case apperrors.KindDuplicate:
		code = connect.CodeAlreadyExists
	case apperrors.KindNotFound:
		code = connect.CodeNotFound
	}
	return connect.NewError(code, errors.New(apperrors.MessageOf(err)))
}

// fromConnectError is the inverse of toConnectError, used by the client.
func fromConnectError(err error) error {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return err
	}
	switch connectErr.Code() {
	case connect.CodeInvalidArgument:
		return apperrors.Validation(connectErr.Message())
	case connect.CodeAlreadyExists:
		return apperrors.Duplicate(connectErr.Message(), nil)
	case connect.CodeNotFound:
		return apperrors.NotFound(connectErr.Message())
	default:
		return apperrors.Store(connectErr.Message(), nil)
	}
}
