package nobrain

import (
	"context"
	"sync"
)

var (
	registry   = make(map[Config]*Engine)
	registryMu sync.RWMutex
)

// Use returns a cached engine for cfg or builds a new one.
// Engines are immutable, so one instance per configuration is enough.
func Use(cfg Config) (*Engine, error) {
	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[cfg]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[cfg]; ok {
		return cached, nil
	}

	engine, err := cfg.Engine()
	if err != nil {
		return nil, err
	}

	registry[cfg] = engine
	return engine, nil
}

// Reset clears the engine cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[Config]*Engine)
}

// DerivePassword derives a password with the reference configuration.
func DerivePassword(ctx context.Context, req Request) (Result, error) {
	engine, err := Use(DefaultConfig())
	if err != nil {
		return Result{}, err
	}
	return engine.DerivePassword(ctx, req)
}
