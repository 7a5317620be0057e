package web

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps drafts as JSON values under prefix+id with a TTL that is
// refreshed on every Save.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(id string) string { return s.prefix + id }

func (s *RedisStore) Load(ctx context.Context, id string) (Draft, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Draft{}, ErrDraftNotFound
	}
	if err != nil {
		return Draft{}, fmt.Errorf("load draft %s: %w", id, err)
	}
	return decodeDraft(data)
}

func (s *RedisStore) Save(ctx context.Context, d Draft) error {
	if d.ID == "" {
		return ErrInvalidDraft
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = time.Now()
	}
	data, err := encodeDraft(d)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(d.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft %s: %w", d.ID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete draft %s: %w", id, err)
	}
	return nil
}

func encodeDraft(d Draft) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, errors.Join(ErrInvalidDraft, err)
	}
	return data, nil
}

func decodeDraft(data []byte) (Draft, error) {
	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return Draft{}, errors.Join(ErrInvalidDraft, err)
	}
	if d.ID == "" {
		return Draft{}, ErrInvalidDraft
	}
	return d, nil
}
