package tokenizer

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps tokenizer names to implementations. Build one at startup
// and hand it to the analyzer; there is no ambient package-level registry.
type Registry struct {
	mu         sync.RWMutex
	tokenizers map[string]Tokenizer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tokenizers: make(map[string]Tokenizer),
	}
}

// DefaultRegistry returns a registry with the built-in approximate
// tokenizer registered under its name.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewApprox())
	return r
}

// Register adds a tokenizer under its own name.
// Panics if the name is already taken.
func (r *Registry) Register(t Tokenizer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.Name()
	if _, exists := r.tokenizers[name]; exists {
		panic(fmt.Sprintf("tokenizer %q already registered", name))
	}
	r.tokenizers[name] = t
}

// Get returns the tokenizer registered under name.
// Returns ErrUnknownTokenizer if the name is not registered.
func (r *Registry) Get(name string) (Tokenizer, error) {
	r.mu.RLock()
	t, ok := r.tokenizers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTokenizer, name, r.Available())
	}
	return t, nil
}

// Available returns the names of all registered tokenizers, sorted.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tokenizers))
	for name := range r.tokenizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks whether a tokenizer name is registered.
func (r *Registry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.tokenizers[name]
	return ok
}
