package cache

import (
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process read-through cache for public list endpoints.
type Memory struct {
	c *gocache.Cache

	// generation counts invalidations. A load that started before the last
	// DeletePrefix must not write its result back.
	mu         sync.Mutex
	generation uint64
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{c: gocache.New(ttl, 2*ttl)}
}

func (m *Memory) GetOrLoad(key string, load func() (interface{}, error)) (interface{}, error) {
	if data, found := m.c.Get(key); found {
		return data, nil
	}

	m.mu.Lock()
	started := m.generation
	m.mu.Unlock()

	data, err := load()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if m.generation == started {
		m.c.Set(key, data, gocache.DefaultExpiration)
	}
	m.mu.Unlock()
	return data, nil
}

// DeletePrefix drops every entry whose key starts with prefix.
func (m *Memory) DeletePrefix(prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation++
	for key := range m.c.Items() {
		if strings.HasPrefix(key, prefix) {
			m.c.Delete(key)
		}
	}
}
