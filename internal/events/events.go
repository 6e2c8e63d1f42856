// Package events publishes notifications about catalog and cart mutations.
//
// Publishing is best effort: callers log publish failures and carry on, so
// a missing or unhealthy broker never fails a request.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types.
const (
	TypeFlavorCreated = "flavor.created"
	TypeCartAdded     = "cart.added"
	TypeCartRemoved   = "cart.removed"
)

// Event is the message body sent to subscribers.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`

	FlavorID    int64  `json:"flavor_id"`
	FlavorName  string `json:"flavor_name,omitempty"`
	CartEntryID int64  `json:"cart_entry_id,omitempty"`
	Removed     int64  `json:"removed,omitempty"`
}

// New creates an event of the given type with a fresh ID and timestamp.
func New(eventType string) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Nop discards every event.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(context.Context, Event) error { return nil }
