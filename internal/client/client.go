// Package client talks to the flavor shop server and mirrors its state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Vamsi7889/Ice-cream/internal/models"
)

// API is the set of server calls the client needs. Both Client and
// rpc.Client implement it.
type API interface {
	ListFlavors(ctx context.Context, query string) ([]models.Flavor, error)
	CreateFlavor(ctx context.Context, in models.NewFlavor) (int64, error)
	AddToCart(ctx context.Context, flavorID int64) (int64, error)
	ListCart(ctx context.Context) ([]models.Flavor, error)
	RemoveFromCart(ctx context.Context, flavorID int64) error
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// Client calls the REST surface. Failed calls are not retried.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New creates a Client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("client: base URL is required")
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("client: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ListFlavors fetches GET /flavors, optionally filtered by query.
func (c *Client) ListFlavors(ctx context.Context, query string) ([]models.Flavor, error) {
	var q url.Values
	if query != "" {
		q = url.Values{"q": []string{query}}
	}
	var flavors []models.Flavor
	if err := c.do(ctx, http.MethodGet, "/flavors", q, nil, &flavors); err != nil {
		return nil, err
	}
	return flavors, nil
}

// CreateFlavor posts a new flavor and returns its ID.
func (c *Client) CreateFlavor(ctx context.Context, in models.NewFlavor) (int64, error) {
	var resp createdResponse
	if err := c.do(ctx, http.MethodPost, "/flavors", nil, in, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// AddToCart adds one cart entry for flavorID and returns the entry ID.
func (c *Client) AddToCart(ctx context.Context, flavorID int64) (int64, error) {
	var resp createdResponse
	payload := map[string]int64{"flavorId": flavorID}
	if err := c.do(ctx, http.MethodPost, "/cart", nil, payload, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// ListCart fetches GET /cart.
func (c *Client) ListCart(ctx context.Context) ([]models.Flavor, error) {
	var flavors []models.Flavor
	if err := c.do(ctx, http.MethodGet, "/cart", nil, nil, &flavors); err != nil {
		return nil, err
	}
	return flavors, nil
}

// RemoveFromCart deletes every cart entry for flavorID.
func (c *Client) RemoveFromCart(ctx context.Context, flavorID int64) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+strconv.FormatInt(flavorID, 10), nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return newHTTPError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}
