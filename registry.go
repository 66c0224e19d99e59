package orsf

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry indexes adapters by simulator id and car key. The zero value
// is ready to use, and all methods are safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	adapters map[string]Adapter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

func registryKey(id, carKey string) string {
	if carKey == "" {
		return id
	}
	return id + "/" + carKey
}

// Register adds an adapter under its (id, car key) pair, replacing any
// previous adapter registered for the same pair.
func (r *Registry) Register(a Adapter) {
	key := registryKey(a.ID(), a.CarKey())

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.adapters == nil {
		r.adapters = make(map[string]Adapter)
	}
	if _, exists := r.adapters[key]; exists {
		zap.S().Debugw("registry: replacing adapter", "key", key)
	}
	r.adapters[key] = a
}

// Resolve finds the adapter for a simulator and car. An exact
// (id, carKey) registration wins; otherwise a car-agnostic adapter for
// the same simulator serves as fallback.
func (r *Registry) Resolve(id, carKey string) (Adapter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.adapters[registryKey(id, carKey)]; ok {
		return a, nil
	}
	if carKey != "" {
		if a, ok := r.adapters[id]; ok {
			return a, nil
		}
	}
	return nil, NewError(ErrCodeAdapterNotFound,
		fmt.Sprintf("no adapter registered for simulator %q, car %q", id, carKey))
}

// Adapters lists every registered adapter's descriptor, sorted by id
// then car key for stable output.
func (r *Registry) Adapters() []AdapterInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	infos := make([]AdapterInfo, 0, len(r.adapters))
	for _, a := range r.adapters {
		infos = append(infos, a.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].ID != infos[j].ID {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].CarKey < infos[j].CarKey
	})
	return infos
}

// AdaptersForGame lists descriptors registered under one simulator id.
func (r *Registry) AdaptersForGame(id string) []AdapterInfo {
	all := r.Adapters()
	out := all[:0]
	for _, info := range all {
		if info.ID == id {
			out = append(out, info)
		}
	}
	return out
}

// Unregister removes the adapter for an (id, car key) pair, reporting
// whether one was registered.
func (r *Registry) Unregister(id, carKey string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey(id, carKey)
	if _, ok := r.adapters[key]; !ok {
		return false
	}
	delete(r.adapters, key)
	return true
}

// Clear removes every registered adapter.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters = make(map[string]Adapter)
}
