// Package cache memoizes loader results per key with a time-to-live and
// optional stale-while-revalidate refreshes.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const defaultRefreshTimeout = 30 * time.Second

type Options struct {
	TTL                  time.Duration
	StaleWhileRevalidate bool
	// RefreshTimeout bounds a background refresh, which runs detached from
	// the request that triggered it.
	RefreshTimeout time.Duration
	Now            func() time.Time
	Logger         *slog.Logger
}

type LoadFunc[V any] func(ctx context.Context) (V, error)

type entry[V any] struct {
	value      V
	expiresAt  time.Time
	refreshing bool
}

type Cache[V any] struct {
	opts Options

	mu      sync.Mutex
	entries map[string]*entry[V]
	// epoch advances on every Invalidate; loads that straddle one are not stored.
	epoch uint64
	wg    sync.WaitGroup
}

func New[V any](opts Options) *Cache[V] {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RefreshTimeout <= 0 {
		opts.RefreshTimeout = defaultRefreshTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Cache[V]{opts: opts, entries: map[string]*entry[V]{}}
}

func (c *Cache[V]) TTL() time.Duration {
	return c.opts.TTL
}

func (c *Cache[V]) StaleWhileRevalidate() bool {
	return c.opts.StaleWhileRevalidate
}

// Get returns the cached value for key, calling load on a miss. An expired
// entry is either served stale while a single background refresh replaces
// it, or reloaded synchronously when stale-while-revalidate is off.
// Load errors are returned to the caller and never cached.
func (c *Cache[V]) Get(ctx context.Context, key string, load LoadFunc[V]) (V, error) {
	now := c.opts.Now()

	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && now.Before(e.expiresAt) {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	if ok && c.opts.StaleWhileRevalidate {
		v := e.value
		if !e.refreshing {
			e.refreshing = true
			c.wg.Add(1)
			go c.refresh(key, e, load)
		}
		c.mu.Unlock()
		return v, nil
	}
	epoch := c.epoch
	c.mu.Unlock()

	v, err := load(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	if c.epoch == epoch {
		c.entries[key] = &entry[V]{value: v, expiresAt: c.opts.Now().Add(c.opts.TTL)}
	}
	c.mu.Unlock()

	return v, nil
}

func (c *Cache[V]) refresh(key string, stale *entry[V], load LoadFunc[V]) {
	defer c.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), c.opts.RefreshTimeout)
	defer cancel()

	v, err := load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.entries[key]
	// invalidated while refreshing
	if !ok || current != stale {
		return
	}
	if err != nil {
		current.refreshing = false
		c.opts.Logger.Warn("cache refresh failed, keeping stale value", "key", key, "error", err)
		return
	}
	c.entries[key] = &entry[V]{value: v, expiresAt: c.opts.Now().Add(c.opts.TTL)}
}

// Invalidate drops every entry whose key starts with prefix.
func (c *Cache[V]) Invalidate(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	n := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			n++
		}
	}
	return n
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Wait blocks until in-flight background refreshes have finished.
func (c *Cache[V]) Wait() {
	c.wg.Wait()
}
