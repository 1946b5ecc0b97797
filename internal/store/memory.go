// apps/wordle-engine/internal/store/memory.go
//
// In-memory registry of live game sessions for the HTTP adapter.
// Sessions are ephemeral: nothing here survives a restart.
//
// Characteristics:
//   - Entries keyed by a random UUID.
//   - The map is guarded by an RWMutex (concurrent reads allowed, writes exclusive).
//   - Each Entry carries its own mutex; a game.Session is not safe for concurrent
//     use, so every access goes through Entry.Do.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/wordle-engine/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("not found")

// Store defines the registry interface for live sessions.
type Store interface {
	// Save adds or replaces an entry.
	Save(ctx context.Context, e *Entry) error

	// Get retrieves an entry by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Entry, error)

	// Delete removes an entry, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Len reports how many sessions are live.
	Len() int
}

// Entry is a registered session.
type Entry struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	session *game.Session
}

// NewEntry wraps s under a fresh ID.
func NewEntry(s *game.Session) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		session:   s,
	}
}

// Do runs fn with exclusive access to the session.
func (e *Entry) Do(fn func(s *game.Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*Entry)}
}

func (m *memory) Save(ctx context.Context, e *Entry) error {
	if e == nil || e.ID == "" {
		return errors.New("entry without id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.ID] = e
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
