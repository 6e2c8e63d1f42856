package client

import (
	"sync"
	"time"
)

// Section is the part of the view a message belongs to.
type Section string

const (
	SectionFlavors Section = "flavors"
	SectionCart    Section = "cart"
)

// DefaultMessageTTL is how long a status message stays visible.
const DefaultMessageTTL = 3 * time.Second

type message struct {
	text     string
	postedAt time.Time
}

// Board holds transient one-line status messages per section.
// Messages expire after the TTL and are returned newest first.
type Board struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	messages map[Section][]message
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) BoardOption {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBoard creates a Board whose messages live for ttl.
// A non-positive ttl falls back to DefaultMessageTTL.
func NewBoard(ttl time.Duration, opts ...BoardOption) *Board {
	if ttl <= 0 {
		ttl = DefaultMessageTTL
	}
	b := &Board{
		ttl:      ttl,
		now:      time.Now,
		messages: make(map[Section][]message),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Post adds a message to section. Posting never blocks on display.
func (b *Board) Post(section Section, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.messages[section] = append(b.prune(section, now), message{text: text, postedAt: now})
}

// Messages returns the live messages of section, newest first.
// Expired messages are dropped.
func (b *Board) Messages(section Section) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	live := b.prune(section, b.now())

	texts := make([]string, 0, len(live))
	for i := len(live) - 1; i >= 0; i-- {
		texts = append(texts, live[i].text)
	}
	return texts
}

// prune drops the expired messages of section and returns the rest.
// Callers hold b.mu.
func (b *Board) prune(section Section, now time.Time) []message {
	live := b.messages[section][:0]
	for _, m := range b.messages[section] {
		if now.Sub(m.postedAt) < b.ttl {
			live = append(live, m)
		}
	}
	b.messages[section] = live
	return live
}
