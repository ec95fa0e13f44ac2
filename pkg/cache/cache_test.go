package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.t = f.t.Add(d)
	f.mu.Unlock()
}

func TestKey(t *testing.T) {
	assert.Equal(t, "videos:猫:3600", Key("videos", "猫", time.Hour))
	assert.Equal(t, "comments:a b:60", Key("comments", "a b", time.Minute))
}

func TestTTL_GetSet(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[[]string](WithClock(clock.Now))

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Set("k", []string{"a"}, time.Minute)
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, v)

	clock.Advance(59 * time.Second)
	_, ok = c.Get("k")
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok, "expired at exactly ttl")
	assert.Equal(t, 1, c.Len(), "expired entries are not evicted")

	c.Set("k", []string{"b"}, time.Minute)
	v, ok = c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, v)
	assert.Equal(t, 1, c.Len())
}

func TestTTL_GetOrLoad(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[int](WithClock(clock.Now))

	calls := 0
	load := func() (int, error) {
		calls++
		return calls * 10, nil
	}

	v, hit, err := c.GetOrLoad("k", time.Hour, load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 10, v)

	v, hit, err = c.GetOrLoad("k", time.Hour, load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, calls)

	clock.Advance(time.Hour)
	v, hit, err = c.GetOrLoad("k", time.Hour, load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 20, v)
}

func TestTTL_GetOrLoadError(t *testing.T) {
	c := New[int]()
	_, _, err := c.GetOrLoad("k", time.Hour, func() (int, error) { return 0, errors.New("boom") })
	require.EqualError(t, err, "boom")
	_, ok := c.Get("k")
	assert.False(t, ok, "errors are not cached")
}

func TestTTL_GetOrLoadConcurrent(t *testing.T) {
	c := New[int]()
	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _, err := c.GetOrLoad("k", time.Hour, func() (int, error) {
				calls.Add(1)
				<-release
				return 42, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	assert.LessOrEqual(t, calls.Load(), int32(10))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}
