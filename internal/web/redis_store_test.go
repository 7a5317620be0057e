package web_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/loginform/internal/web"
	"github.com/dmitrymomot/loginform/pkg/form"
	"github.com/dmitrymomot/loginform/pkg/redis"
)

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := redis.Connect(ctx, redis.Config{
		ConnectionURL:  url,
		RetryAttempts:  3,
		RetryInterval:  100 * time.Millisecond,
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := web.NewRedisStore(client, "loginform:test:", time.Minute)
	id := uuid.NewString()
	t.Cleanup(func() { _ = store.Delete(ctx, id) })

	_, err = store.Load(ctx, id)
	require.ErrorIs(t, err, web.ErrDraftNotFound)

	d := web.Draft{
		ID:     id,
		Locale: "en",
		State: form.FormState{
			Form:   "login",
			Order:  []string{"email"},
			Fields: map[string]form.FieldState{"email": {Value: "a@b.co", Status: form.StatusUntouched}},
		},
	}
	require.NoError(t, store.Save(ctx, d))

	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "en", got.Locale)
	assert.Equal(t, "a@b.co", got.State.Fields["email"].Value)

	ttl, err := client.TTL(ctx, "loginform:test:"+id).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, web.ErrDraftNotFound)
}
