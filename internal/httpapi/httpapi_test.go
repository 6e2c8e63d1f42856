package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Vamsi7889/Ice-cream/internal/apperrors"
	"github.com/Vamsi7889/Ice-cream/internal/models"
	"github.com/Vamsi7889/Ice-cream/internal/service"
	"github.com/Vamsi7889/Ice-cream/internal/storage/sqlite"
)

// setupTestServer serves the REST routes over a temp SQLite database.
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	mux := http.NewServeMux()
	NewHandler(service.NewFlavorService(store, nil), service.NewCartService(store, nil)).RegisterRoutes(mux)
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		store.Close()
		os.Remove(tmpFile.Name())
	})
	return server
}

func do(t *testing.T, method, url, body string) (*http.Response, []byte) {
	t.Helper()

	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, url, nil)
	} else {
		req, err = http.NewRequest(method, url, strings.NewReader(body))
	}
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("failed to decode %q: %v", data, err)
	}
	return v
}

func TestCreateFlavor(t *testing.T) {
	server := setupTestServer(t)

	t.Run("created", func(t *testing.T) {
		resp, body := do(t, http.MethodPost, server.URL+"/flavors", `{"name":"Mint","ingredients":"mint, sugar"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want 201 (%s)", resp.StatusCode, body)
		}
		created := decode[CreatedResponse](t, body)
		if created.ID != 1 || created.Message != "Flavor added successfully" {
			t.Errorf("got %+v", created)
		}
	})

	t.Run("blank name is 400", func(t *testing.T) {
		resp, body := do(t, http.MethodPost, server.URL+"/flavors", `{"name":"  ","ingredients":"sugar"}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		errResp := decode[ErrorResponse](t, body)
		if errResp.Error != "VALIDATION_ERROR" || errResp.Message != "Name and ingredients are required" {
			t.Errorf("got %+v", errResp)
		}
	})

	t.Run("duplicate is 400", func(t *testing.T) {
		resp, body := do(t, http.MethodPost, server.URL+"/flavors", `{"name":"Mint","ingredients":"again"}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", resp.StatusCode)
		}
		if errResp := decode[ErrorResponse](t, body); errResp.Error != "DUPLICATE_ERROR" {
			t.Errorf("got %+v", errResp)
		}
	})

	t.Run("malformed JSON is 400", func(t *testing.T) {
		resp, _ := do(t, http.MethodPost, server.URL+"/flavors", `{"name":`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

func TestListFlavors(t *testing.T) {
	server := setupTestServer(t)
	do(t, http.MethodPost, server.URL+"/flavors", `{"name":"Vanilla Bean","ingredients":"vanilla","allergens":"dairy"}`)
	do(t, http.MethodPost, server.URL+"/flavors", `{"name":"Mint","ingredients":"mint"}`)

	t.Run("all", func(t *testing.T) {
		resp, body := do(t, http.MethodGet, server.URL+"/flavors", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		flavors := decode[[]models.Flavor](t, body)
		if len(flavors) != 2 {
			t.Fatalf("got %d flavors, want 2", len(flavors))
		}
		if flavors[0].AllergensText() != "dairy" || flavors[1].Allergens != nil {
			t.Errorf("unexpected allergens: %+v", flavors)
		}
		if !strings.Contains(string(body), `"allergens":null`) {
			t.Errorf("absent allergens should encode as null: %s", body)
		}
	})

	t.Run("query parameter", func(t *testing.T) {
		_, body := do(t, http.MethodGet, server.URL+"/flavors?q=la%20be", "")
		flavors := decode[[]models.Flavor](t, body)
		if len(flavors) != 1 || flavors[0].Name != "Vanilla Bean" {
			t.Errorf("got %+v", flavors)
		}
	})

	t.Run("search path", func(t *testing.T) {
		_, body := do(t, http.MethodGet, server.URL+"/flavors/search/MINT", "")
		flavors := decode[[]models.Flavor](t, body)
		if len(flavors) != 1 || flavors[0].Name != "Mint" {
			t.Errorf("got %+v", flavors)
		}
	})

	t.Run("no match is empty array", func(t *testing.T) {
		_, body := do(t, http.MethodGet, server.URL+"/flavors?q=zzz", "")
		if strings.TrimSpace(string(body)) != "[]" {
			t.Errorf("body = %s, want []", body)
		}
	})
}

func TestCartRoutes(t *testing.T) {
	server := setupTestServer(t)
	do(t, http.MethodPost, server.URL+"/flavors", `{"name":"Mint","ingredients":"mint, sugar"}`)

	t.Run("unknown flavor is 404", func(t *testing.T) {
		resp, body := do(t, http.MethodPost, server.URL+"/cart", `{"flavorId":99}`)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", resp.StatusCode)
		}
		if errResp := decode[ErrorResponse](t, body); errResp.Message != "Flavor not found" {
			t.Errorf("got %+v", errResp)
		}
	})

	t.Run("add by number and by string", func(t *testing.T) {
		for _, body := range []string{`{"flavorId":1}`, `{"flavorId":"1"}`} {
			resp, data := do(t, http.MethodPost, server.URL+"/cart", body)
			if resp.StatusCode != http.StatusCreated {
				t.Fatalf("POST /cart %s: status = %d (%s)", body, resp.StatusCode, data)
			}
			if created := decode[CreatedResponse](t, data); created.Message != "Flavor added to cart" {
				t.Errorf("got %+v", created)
			}
		}

		_, data := do(t, http.MethodGet, server.URL+"/cart", "")
		cart := decode[[]models.Flavor](t, data)
		if len(cart) != 2 || cart[0].Name != "Mint" || cart[1].ID != 1 {
			t.Errorf("cart = %+v", cart)
		}
	})

	t.Run("non-numeric flavorId is 400", func(t *testing.T) {
		resp, _ := do(t, http.MethodPost, server.URL+"/cart", `{"flavorId":"abc"}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("delete removes all copies", func(t *testing.T) {
		resp, data := do(t, http.MethodDelete, server.URL+"/cart/1", "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d", resp.StatusCode)
		}
		if msg := decode[MessageResponse](t, data); msg.Message != "Flavor removed from cart" {
			t.Errorf("got %+v", msg)
		}

		_, data = do(t, http.MethodGet, server.URL+"/cart", "")
		if strings.TrimSpace(string(data)) != "[]" {
			t.Errorf("cart = %s, want []", data)
		}
	})

	t.Run("delete with nothing to remove is 200", func(t *testing.T) {
		resp, _ := do(t, http.MethodDelete, server.URL+"/cart/1", "")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("delete with invalid id is 400", func(t *testing.T) {
		resp, _ := do(t, http.MethodDelete, server.URL+"/cart/mint", "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})
}

// brokenServices fails every call with a store error.
type brokenServices struct{}

var errBroken = apperrors.Store("Database error", errors.New("no such table: flavors"))

func (brokenServices) List(context.Context, string) ([]models.Flavor, error) { return nil, errBroken }
func (brokenServices) Create(context.Context, models.NewFlavor) (int64, error) {
	return 0, errBroken
}

type brokenCart struct{}

func (brokenCart) Add(context.Context, int64) (int64, error)      { return 0, errBroken }
func (brokenCart) List(context.Context) ([]models.Flavor, error) { return nil, errBroken }
func (brokenCart) Remove(context.Context, int64) error           { return errBroken }

func TestStoreErrorsAre500(t *testing.T) {
	mux := http.NewServeMux()
	NewHandler(brokenServices{}, brokenCart{}).RegisterRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	requests := []struct{ method, path, body string }{
		{http.MethodGet, "/flavors", ""},
		{http.MethodPost, "/flavors", `{"name":"Mint","ingredients":"mint"}`},
		{http.MethodGet, "/cart", ""},
		{http.MethodPost, "/cart", `{"flavorId":1}`},
		{http.MethodDelete, "/cart/1", ""},
	}
	for _, r := range requests {
		resp, body := do(t, r.method, server.URL+r.path, r.body)
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("%s %s: status = %d, want 500", r.method, r.path, resp.StatusCode)
			continue
		}
		errResp := decode[ErrorResponse](t, body)
		if errResp.Message != "Database error" {
			t.Errorf("%s %s: message = %q", r.method, r.path, errResp.Message)
		}
		if strings.Contains(string(body), "no such table") {
			t.Errorf("%s %s: store cause leaked: %s", r.method, r.path, body)
		}
	}
}

func TestFlavorIDUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    FlavorID
		wantErr bool
	}{
		{`7`, 7, false},
		{`"7"`, 7, false},
		{`" 12 "`, 12, false},
		{`null`, 0, false},
		{`"x"`, 0, true},
		{`1.5`, 0, true},
	}
	for _, tt := range tests {
		var id FlavorID
		err := id.UnmarshalJSON([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalJSON(%s) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && id != tt.want {
			t.Errorf("UnmarshalJSON(%s) = %d, want %d", tt.in, id, tt.want)
		}
	}
}
