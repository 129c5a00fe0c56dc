// internal/store/memory.go
//
// In-memory registry of live rooms.
//
// Characteristics:
//   - Stores *room.Room objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Rooms without an ID get a fresh UUID on Save.
//   - State is lost when the process restarts; finished games survive in the
//     results archive.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/robalobadob/crossclues/internal/room"
)

// ErrNotFound is returned by Get for an unknown room.
var ErrNotFound = errors.New("room not found")

// Store defines the registry interface for live rooms.
type Store interface {
	// Save registers or replaces a room, assigning an ID when empty.
	Save(ctx context.Context, r *room.Room) error

	// Get retrieves a room by ID.
	Get(ctx context.Context, id string) (*room.Room, error)

	// Delete forgets a room. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns every room, oldest first.
	List(ctx context.Context) ([]*room.Room, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards rooms map
	rooms map[string]*room.Room // keyed by Room.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rooms: make(map[string]*room.Room)}
}

func (m *memory) Save(ctx context.Context, r *room.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	m.rooms[r.ID] = r
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*room.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, id)
	return nil
}

func (m *memory) List(ctx context.Context) ([]*room.Room, error) {
	m.mu.RLock()
	out := make([]*room.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
