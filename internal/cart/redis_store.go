package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, baseTTL: ttl}
}

// wire format, private to this store
type cartData struct {
	Lines []Line `json:"lines"`
}

func (s *RedisStore) Load(ctx context.Context, sessionKey string) (*Cart, error) {
	data, err := s.client.Get(ctx, storeKey(sessionKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cd cartData
	if err := json.Unmarshal(data, &cd); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCart, err)
	}

	return FromLines(cd.Lines), nil
}

func (s *RedisStore) Save(ctx context.Context, sessionKey string, c *Cart) error {
	body, err := json.Marshal(cartData{Lines: c.Lines()})
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	// jitter spreads expiry so a burst of sessions doesn't lapse at once
	jitter := time.Duration(rand.Intn(120)) * time.Second
	if err := s.client.Set(ctx, storeKey(sessionKey), body, s.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionKey string) error {
	if err := s.client.Del(ctx, storeKey(sessionKey)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func storeKey(sessionKey string) string {
	return fmt.Sprintf("cart:%s", sessionKey)
}
