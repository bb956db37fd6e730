package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zoobzio/dynsql/internal/types"
	"github.com/zoobzio/dynsql/mybatis"
	"github.com/zoobzio/dynsql/named"
	"github.com/zoobzio/dynsql/positional"
	"github.com/zoobzio/dynsql/postgres"
	"github.com/zoobzio/dynsql/spring"
)

// Factory creates a binding strategy.
type Factory func() types.Strategy

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{
		"mybatis":    func() types.Strategy { return mybatis.New() },
		"spring":     func() types.Strategy { return spring.New() },
		"named":      func() types.Strategy { return named.New() },
		"positional": func() types.Strategy { return positional.New() },
		"postgres":   func() types.Strategy { return postgres.New() },
	}
)

// Register makes a strategy available under name. Names are unique.
func Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("strategy name is required")
	}
	if factory == nil {
		return fmt.Errorf("strategy %q: factory is required", name)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("strategy %q is already registered", name)
	}
	registry[name] = factory
	return nil
}

// Lookup creates the strategy registered under name.
func Lookup(name string) (types.Strategy, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
	return factory(), nil
}

// Registered reports whether a strategy is registered under name.
func Registered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Strategy creates the configured strategy.
func (c Config) Strategy() (types.Strategy, error) {
	return Lookup(c.Strategy)
}
