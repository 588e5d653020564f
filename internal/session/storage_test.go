package session

import (
	"sync"
	"testing"
	"time"

	"univar/domain/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore(ttl)
	s.now = clock.Now
	return s, clock
}

func TestStore_PutGetDelete(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	ds := dataset.NewDataset("a.csv", nil)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Put("sess", ds)
	got, ok := s.Get("sess")
	require.True(t, ok)
	assert.Same(t, ds, got)

	replacement := dataset.NewDataset("b.csv", nil)
	s.Put("sess", replacement)
	got, _ = s.Get("sess")
	assert.Same(t, replacement, got)

	s.Delete("sess")
	_, ok = s.Get("sess")
	assert.False(t, ok)
}

func TestStore_Expiry(t *testing.T) {
	s, clock := newTestStore(time.Hour)
	s.Put("old", dataset.NewDataset("old.csv", nil))

	clock.Advance(50 * time.Minute)
	_, ok := s.Get("old")
	require.True(t, ok, "reads extend the lifetime")

	clock.Advance(50 * time.Minute)
	_, ok = s.Get("old")
	require.True(t, ok)

	clock.Advance(61 * time.Minute)
	_, ok = s.Get("old")
	assert.False(t, ok)
}

func TestStore_PutSweepsIdleSessions(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	s.Put("a", dataset.NewDataset("a.csv", nil))
	s.Put("b", dataset.NewDataset("b.csv", nil))
	assert.Equal(t, 2, s.Len())

	clock.Advance(2 * time.Minute)
	s.Put("c", dataset.NewDataset("c.csv", nil))
	assert.Equal(t, 1, s.Len())
}

func TestStore_Concurrent(t *testing.T) {
	s := NewStore(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := NewID()
			s.Put(id, dataset.NewDataset(id, nil))
			_, ok := s.Get(id)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, s.Len())
}

func TestNewID(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
	assert.Len(t, NewID(), 36)
}
