package filter

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of compiled expressions a Manager keeps
const DefaultCacheSize = 100

// Manager holds named filter presets and compiles ad-hoc expressions
// through a shared LRU cache keyed by expression
type Manager struct {
	cache   *lru.Cache[string, *Filter]
	filters map[string]*Filter
	mu      sync.RWMutex
}

// NewManager creates a new filter manager
func NewManager(cacheSize int) *Manager {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size
	cache, _ := lru.New[string, *Filter](cacheSize)
	return &Manager{
		cache:   cache,
		filters: make(map[string]*Filter),
	}
}

// Compile compiles an expression, reusing a cached program when the same
// expression was compiled before
func (m *Manager) Compile(expression string) (*Filter, error) {
	if f, ok := m.cache.Get(expression); ok {
		return f, nil
	}
	f, err := Compile(expression)
	if err != nil {
		return nil, err
	}
	m.cache.Add(expression, f)
	return f, nil
}

// RegisterFilters registers several named filters. Nothing is registered
// unless every expression compiles.
func (m *Manager) RegisterFilters(filters map[string]string) error {
	compiled := make(map[string]*Filter, len(filters))

	for name, expression := range filters {
		f, err := m.Compile(expression)
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = f
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	return nil
}

// GetFilter returns a registered filter by name
func (m *Manager) GetFilter(name string) (*Filter, bool) {
	m.mu.RLock()
	f, exists := m.filters[name]
	m.mu.RUnlock()
	return f, exists
}

// ListFilters returns all registered filter names, sorted
func (m *Manager) ListFilters() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.filters))
}

// Resolve picks the filter for a command: an explicit expression wins over a
// preset name. Both empty yields a nil filter, which matches everything.
func (m *Manager) Resolve(expression, preset string) (*Filter, error) {
	if expression != "" {
		return m.Compile(expression)
	}
	if preset != "" {
		f, ok := m.GetFilter(preset)
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		return f, nil
	}
	return nil, nil
}
