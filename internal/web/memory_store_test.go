package web

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loginform/pkg/form"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestMemoryStore(ttl time.Duration) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(ttl, 0)
	s.now = clock.Now
	return s, clock
}

func testDraft(id string) Draft {
	return Draft{
		ID:     id,
		Locale: "pt-BR",
		State: form.FormState{
			Form:   "login",
			Order:  []string{"email"},
			Fields: map[string]form.FieldState{"email": {Value: "a@b.co", Status: form.StatusTouchedValid, Touched: true}},
		},
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("save and load", func(t *testing.T) {
		t.Parallel()
		s, clock := newTestMemoryStore(time.Minute)

		require.NoError(t, s.Save(ctx, testDraft("d1")))
		d, err := s.Load(ctx, "d1")
		require.NoError(t, err)
		assert.Equal(t, "pt-BR", d.Locale)
		assert.Equal(t, clock.Now(), d.UpdatedAt)
		assert.Equal(t, "a@b.co", d.State.Fields["email"].Value)
	})

	t.Run("loaded state is a copy", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestMemoryStore(time.Minute)
		require.NoError(t, s.Save(ctx, testDraft("d1")))

		d, err := s.Load(ctx, "d1")
		require.NoError(t, err)
		d.State.Fields["email"] = form.FieldState{Value: "changed"}

		again, err := s.Load(ctx, "d1")
		require.NoError(t, err)
		assert.Equal(t, "a@b.co", again.State.Fields["email"].Value)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestMemoryStore(time.Minute)
		_, err := s.Load(ctx, "nope")
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestMemoryStore(time.Minute)
		assert.ErrorIs(t, s.Save(ctx, Draft{}), ErrInvalidDraft)
	})

	t.Run("expiry", func(t *testing.T) {
		t.Parallel()
		s, clock := newTestMemoryStore(time.Minute)
		require.NoError(t, s.Save(ctx, testDraft("d1")))

		clock.Advance(59 * time.Second)
		_, err := s.Load(ctx, "d1")
		require.NoError(t, err)

		clock.Advance(time.Second)
		_, err = s.Load(ctx, "d1")
		assert.ErrorIs(t, err, ErrDraftNotFound)
		assert.Zero(t, s.Len())
	})

	t.Run("save refreshes ttl", func(t *testing.T) {
		t.Parallel()
		s, clock := newTestMemoryStore(time.Minute)
		require.NoError(t, s.Save(ctx, testDraft("d1")))

		clock.Advance(50 * time.Second)
		require.NoError(t, s.Save(ctx, testDraft("d1")))
		clock.Advance(50 * time.Second)

		_, err := s.Load(ctx, "d1")
		assert.NoError(t, err)
	})

	t.Run("delete expired", func(t *testing.T) {
		t.Parallel()
		s, clock := newTestMemoryStore(time.Minute)
		require.NoError(t, s.Save(ctx, testDraft("old")))
		clock.Advance(2 * time.Minute)
		require.NoError(t, s.Save(ctx, testDraft("new")))

		s.DeleteExpired()
		assert.Equal(t, 1, s.Len())
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		t.Parallel()
		s, clock := newTestMemoryStore(0)
		require.NoError(t, s.Save(ctx, testDraft("d1")))
		clock.Advance(24 * time.Hour)

		_, err := s.Load(ctx, "d1")
		assert.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestMemoryStore(time.Minute)
		require.NoError(t, s.Save(ctx, testDraft("d1")))
		require.NoError(t, s.Delete(ctx, "d1"))
		_, err := s.Load(ctx, "d1")
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()
		s := NewMemoryStore(time.Minute, time.Millisecond)
		assert.NoError(t, s.Close())
		assert.NoError(t, s.Close())
	})
}

func TestDraftCodec(t *testing.T) {
	t.Parallel()

	d := testDraft("d1")
	d.UpdatedAt = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	data, err := encodeDraft(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"touched_valid"`)

	got, err := decodeDraft(data)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	assert.True(t, d.UpdatedAt.Equal(got.UpdatedAt))
	assert.Equal(t, d.State.Fields, got.State.Fields)

	_, err = decodeDraft([]byte(`{"locale":"en"}`))
	assert.ErrorIs(t, err, ErrInvalidDraft)

	_, err = decodeDraft([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidDraft)
}

func TestDraftLocks(t *testing.T) {
	t.Parallel()

	l := newDraftLocks()
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.lock("d1")
			defer unlock()

			mu.Lock()
			active++
			maxSeen = max(maxSeen, active)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	l.mu.Lock()
	assert.Empty(t, l.locks)
	l.mu.Unlock()
}
