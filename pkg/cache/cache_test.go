package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

type listing struct {
	Version int
}

func countingLoader(calls *int32) LoadFunc[*listing] {
	return func(context.Context) (*listing, error) {
		n := atomic.AddInt32(calls, 1)
		return &listing{Version: int(n)}, nil
	}
}

func TestCache_StaleWhileRevalidateScenario(t *testing.T) {
	clock := newFakeClock()
	c := New[*listing](Options{TTL: 5 * time.Second, StaleWhileRevalidate: true, Now: clock.Now})
	ctx := context.Background()
	var calls int32
	load := countingLoader(&calls)

	// t=0: miss
	first, err := c.Get(ctx, "/api/skills", load)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	// t=1: hit, same reference
	clock.Advance(time.Second)
	second, err := c.Get(ctx, "/api/skills", load)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	// t=6: expired, stale served and refresh scheduled
	clock.Advance(5 * time.Second)
	stale, err := c.Get(ctx, "/api/skills", load)
	require.NoError(t, err)
	assert.Same(t, first, stale)
	c.Wait()
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))

	// t=7: refreshed value
	clock.Advance(time.Second)
	refreshed, err := c.Get(ctx, "/api/skills", load)
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed.Version)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestCache_ExpiredWithoutSWRReloadsSynchronously(t *testing.T) {
	clock := newFakeClock()
	c := New[*listing](Options{TTL: 5 * time.Second, Now: clock.Now})
	var calls int32
	load := countingLoader(&calls)

	_, err := c.Get(context.Background(), "k", load)
	require.NoError(t, err)

	clock.Advance(6 * time.Second)
	v, err := c.Get(context.Background(), "k", load)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Version)
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	c := New[*listing](Options{TTL: time.Minute})
	boom := errors.New("boom")
	var calls int32

	_, err := c.Get(context.Background(), "k", func(context.Context) (*listing, error) {
		atomic.AddInt32(&calls, 1)
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	v, err := c.Get(context.Background(), "k", countingLoader(&calls))
	require.NoError(t, err)
	assert.Equal(t, 2, v.Version)
}

func TestCache_FailedRefreshKeepsStaleValue(t *testing.T) {
	clock := newFakeClock()
	c := New[*listing](Options{TTL: 5 * time.Second, StaleWhileRevalidate: true, Now: clock.Now})
	var calls int32

	first, err := c.Get(context.Background(), "k", countingLoader(&calls))
	require.NoError(t, err)

	clock.Advance(10 * time.Second)
	failing := func(context.Context) (*listing, error) { return nil, errors.New("store down") }
	stale, err := c.Get(context.Background(), "k", failing)
	require.NoError(t, err)
	assert.Same(t, first, stale)
	c.Wait()

	again, err := c.Get(context.Background(), "k", countingLoader(&calls))
	require.NoError(t, err)
	assert.Same(t, first, again)
	c.Wait()
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestCache_KeysAreIndependent(t *testing.T) {
	c := New[string](Options{TTL: time.Minute})
	a, _ := c.Get(context.Background(), "/api/projects?slug=a", func(context.Context) (string, error) { return "a", nil })
	b, _ := c.Get(context.Background(), "/api/projects?slug=b", func(context.Context) (string, error) { return "b", nil })

	assert.Equal(t, "a", a)
	assert.Equal(t, "b", b)
	assert.Equal(t, 2, c.Len())
}

func TestCache_Invalidate(t *testing.T) {
	c := New[string](Options{TTL: time.Minute})
	for _, key := range []string{"/api/blog/posts", "/api/blog/posts?slug=x", "/api/skills"} {
		_, err := c.Get(context.Background(), key, func(context.Context) (string, error) { return key, nil })
		require.NoError(t, err)
	}

	assert.Equal(t, 2, c.Invalidate("/api/blog/posts"))
	assert.Equal(t, 1, c.Len())
}

func TestCache_LoadRacingInvalidateIsNotStored(t *testing.T) {
	c := New[string](Options{TTL: time.Minute})
	ctx := context.Background()

	v, err := c.Get(ctx, "/api/blog/posts", func(context.Context) (string, error) {
		c.Invalidate("/api/blog/")
		return "before-append", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "before-append", v)
	assert.Equal(t, 0, c.Len())

	v, err = c.Get(ctx, "/api/blog/posts", func(context.Context) (string, error) { return "after-append", nil })
	require.NoError(t, err)
	assert.Equal(t, "after-append", v)
	assert.Equal(t, 1, c.Len())
}
