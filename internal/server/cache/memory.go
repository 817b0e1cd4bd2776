package cache

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/liftlog/internal/server/models"
)

type memoryEntry struct {
	list    []models.Workout
	expires time.Time
}

// Memory is an in-process cache. A zero ttl keeps entries until they are
// invalidated.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[int64]memoryEntry
	version map[int64]uint64
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, now: time.Now, entries: make(map[int64]memoryEntry), version: make(map[int64]uint64)}
}

func (m *Memory) Get(_ context.Context, userID int64) ([]models.Workout, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[userID]
	if !ok {
		return nil, false
	}
	if m.ttl > 0 && !m.now().Before(e.expires) {
		delete(m.entries, userID)
		return nil, false
	}
	return clone(e.list), true
}

func (m *Memory) Version(_ context.Context, userID int64) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.version[userID]
}

// Set stores list unless userID was invalidated after version was read.
func (m *Memory) Set(_ context.Context, userID int64, version uint64, list []models.Workout) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.version[userID] != version {
		return
	}
	m.entries[userID] = memoryEntry{list: clone(list), expires: m.now().Add(m.ttl)}
}

func (m *Memory) Invalidate(_ context.Context, userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, userID)
	m.version[userID]++
}
