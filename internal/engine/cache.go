package engine

import (
	"context"
	"sort"
	"sync"

	"translateapi/internal/core"
	"translateapi/internal/registry"
)

// Cache memoizes model handles per language pair with single-load
// semantics: concurrent first use of one pair performs exactly one load,
// cache hits and distinct pairs never block on each other, and a failed
// load leaves no entry behind.
type Cache struct {
	registry *registry.Registry
	loader   Loader
	logger   core.Logger

	mu      sync.Mutex
	entries map[core.LanguagePair]*cacheEntry
}

// cacheEntry is either a completed load (handle or err set, ready closed)
// or an in-flight one (ready open). The loading entry doubles as the
// per-pair acquisition guard.
type cacheEntry struct {
	ready  chan struct{}
	handle *ModelHandle
	err    error
}

// NewCache creates an empty cache over the registry.
func NewCache(reg *registry.Registry, loader Loader, logger core.Logger) *Cache {
	return &Cache{
		registry: reg,
		loader:   loader,
		logger:   logger,
		entries:  make(map[core.LanguagePair]*cacheEntry),
	}
}

// EnsureLoaded returns the cached handle for the pair, loading and
// memoizing it on first use. Failed loads are reported as ModelLoadFailed
// and are retried on the next call.
func (c *Cache) EnsureLoaded(ctx context.Context, pair core.LanguagePair) (*ModelHandle, error) {
	c.mu.Lock()
	if entry, ok := c.entries[pair]; ok {
		c.mu.Unlock()
		return c.await(ctx, entry)
	}

	// Defensive: the validator rejects unregistered pairs before any model
	// work, but the cache must not load arbitrary identifiers either.
	modelID, ok := c.registry.Resolve(pair)
	if !ok {
		c.mu.Unlock()
		return nil, core.NewTranslateError(core.ErrUnsupportedPair, "unsupported language pair: %s", pair)
	}

	entry := &cacheEntry{ready: make(chan struct{})}
	c.entries[pair] = entry
	c.mu.Unlock()

	handle, err := c.loader.Load(ctx, pair, modelID)

	c.mu.Lock()
	if err != nil {
		entry.err = core.PairError(core.ErrModelLoadFailed, pair, err, "failed to load model for %s", pair)
		delete(c.entries, pair)
	} else {
		entry.handle = handle
	}
	c.mu.Unlock()
	close(entry.ready)

	if entry.err != nil {
		c.logger.Error("Model load failed for %s: %v", pair, err)
		return nil, entry.err
	}
	return entry.handle, nil
}

// await blocks until the entry's load completes. Callers that hit a
// finished entry pass straight through the closed channel.
func (c *Cache) await(ctx context.Context, entry *cacheEntry) (*ModelHandle, error) {
	select {
	case <-entry.ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if entry.err != nil {
		return nil, entry.err
	}
	return entry.handle, nil
}

// LoadAll eagerly loads every registered pair. The first failure aborts:
// eager mode never starts with a partially loaded cache.
func (c *Cache) LoadAll(ctx context.Context) error {
	for _, pair := range c.registry.Pairs() {
		if _, err := c.EnsureLoaded(ctx, pair); err != nil {
			return err
		}
	}
	return nil
}

// IsLoaded reports whether the pair has a completed handle.
func (c *Cache) IsLoaded(pair core.LanguagePair) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[pair]
	return ok && entry.handle != nil
}

// Loaded enumerates pairs with completed handles, sorted by canonical form.
func (c *Cache) Loaded() []core.LanguagePair {
	c.mu.Lock()
	pairs := make([]core.LanguagePair, 0, len(c.entries))
	for pair, entry := range c.entries {
		if entry.handle != nil {
			pairs = append(pairs, pair)
		}
	}
	c.mu.Unlock()

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].String() < pairs[j].String()
	})
	return pairs
}
