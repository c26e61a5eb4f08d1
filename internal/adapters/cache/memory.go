package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/ports"
)

var _ ports.CategoryCache = (*Memory)(nil)

// Memory holds the category list in process memory until it expires.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	entry    []string
	expires  time.Time
	hasEntry bool
}

// NewMemory creates an empty cache whose entries live for ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, now: time.Now}
}

// Get implements ports.CategoryCache.
func (m *Memory) Get(context.Context) ([]string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.hasEntry || !m.now().Before(m.expires) {
		return nil, false, nil
	}
	return slices.Clone(m.entry), true, nil
}

// Set implements ports.CategoryCache.
func (m *Memory) Set(_ context.Context, categories []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entry = slices.Clone(categories)
	m.expires = m.now().Add(m.ttl)
	m.hasEntry = true
	return nil
}
