package rpc

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/Vamsi7889/Ice-cream/internal/models"
)

// Client calls the Connect procedures. Errors come back as apperrors values
// carrying the server's message.
type Client struct {
	listFlavors    *connect.Client[ListFlavorsRequest, ListFlavorsResponse]
	createFlavor   *connect.Client[CreateFlavorRequest, CreateFlavorResponse]
	addToCart      *connect.Client[AddToCartRequest, AddToCartResponse]
	listCart       *connect.Client[ListCartRequest, ListCartResponse]
	removeFromCart *connect.Client[RemoveFromCartRequest, RemoveFromCartResponse]
}

// NewClient constructs a Client for the server at baseURL.
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	options := append([]connect.ClientOption{WithJSON()}, opts...)
	return &Client{
		listFlavors:    connect.NewClient[ListFlavorsRequest, ListFlavorsResponse](httpClient, baseURL+ListFlavorsProcedure, options...),
		createFlavor:   connect.NewClient[CreateFlavorRequest, CreateFlavorResponse](httpClient, baseURL+CreateFlavorProcedure, options...),
		addToCart:      connect.NewClient[AddToCartRequest, AddToCartResponse](httpClient, baseURL+AddToCartProcedure, options...),
		listCart:       connect.NewClient[ListCartRequest, ListCartResponse](httpClient, baseURL+ListCartProcedure, options...),
		removeFromCart: connect.NewClient[RemoveFromCartRequest, RemoveFromCartResponse](httpClient, baseURL+RemoveFromCartProcedure, options...),
	}
}

// ListFlavors calls FlavorService.ListFlavors.
func (c *Client) ListFlavors(ctx context.Context, query string) ([]models.Flavor, error) {
	resp, err := c.listFlavors.CallUnary(ctx, connect.NewRequest(&ListFlavorsRequest{Query: query}))
	if err != nil {
		return nil, fromConnectError(err)
	}
	return resp.Msg.Flavors, nil
}

// CreateFlavor calls FlavorService.CreateFlavor and returns the new ID.
func (c *Client) CreateFlavor(ctx context.Context, in models.NewFlavor) (int64, error) {
	resp, err := c.createFlavor.CallUnary(ctx, connect.NewRequest(&CreateFlavorRequest{
		Name:        in.Name,
		Ingredients: in.Ingredients,
		Allergens:   in.Allergens,
	}))
	if err != nil {
		return 0, fromConnectError(err)
	}
	return resp.Msg.ID, nil
}

// AddToCart calls CartService.AddToCart and returns the cart entry ID.
func (c *Client) AddToCart(ctx context.Context, flavorID int64) (int64, error) {
	resp, err := c.addToCart.CallUnary(ctx, connect.NewRequest(&AddToCartRequest{FlavorID: flavorID}))
	if err != nil {
		return 0, fromConnectError(err)
	}
	return resp.Msg.ID, nil
}

// ListCart calls CartService.ListCart.
func (c *Client) ListCart(ctx context.Context) ([]models.Flavor, error) {
	resp, err := c.listCart.CallUnary(ctx, connect.NewRequest(&ListCartRequest{}))
	if err != nil {
		return nil, fromConnectError(err)
	}
	return resp.Msg.Flavors, nil
}

// RemoveFromCart calls CartService.RemoveFromCart.
func (c *Client) RemoveFromCart(ctx context.Context, flavorID int64) error {
	_, err := c.removeFromCart.CallUnary(ctx, connect.NewRequest(&RemoveFromCartRequest{FlavorID: flavorID}))
	if err != nil {
		return fromConnectError(err)
	}
	return nil
}
