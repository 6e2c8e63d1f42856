package service

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/Vamsi7889/Ice-cream/internal/events"
	"github.com/Vamsi7889/Ice-cream/internal/models"
	"github.com/Vamsi7889/Ice-cream/internal/storage"
	"github.com/Vamsi7889/Ice-cream/internal/storage/sqlite"
)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

// failingStore fails every operation.
type failingStore struct{ err error }

func (f failingStore) CreateFlavor(context.Context, *models.Flavor) error { return f.err }
func (f failingStore) ListFlavors(context.Context, string) ([]models.Flavor, error) {
	return nil, f.err
}
func (f failingStore) AddToCart(context.Context, int64) (int64, error) { return 0, f.err }
func (f failingStore) ListCart(context.Context) ([]models.Flavor, error) {
	return nil, f.err
}
func (f failingStore) RemoveFromCart(context.Context, int64) (int64, error) { return 0, f.err }

var (
	_ storage.FlavorStore = failingStore{}
	_ storage.CartStore   = failingStore{}
)

// setupTestStore creates a SQLite store on a temp file.
func setupTestStore(t *testing.T) *sqlite.SQLiteStore {
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

	t.Cleanup(func() {
		store.Close()
		os.Remove(tmpFile.Name())
	})
	return store
}

func strPtr(s string) *string { return &s }
