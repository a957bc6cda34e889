package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travel-backoffice/internal/model"
	"travel-backoffice/internal/session"
	apperrors "travel-backoffice/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore shares session principals between gateway instances.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// session key, never the raw token
func (s *RedisSessionStore) getSessionKey(token string) string {
	return fmt.Sprintf("session:%s", session.TokenID(token))
}

func (s *RedisSessionStore) Save(ctx context.Context, token string, principal *model.Principal, ttl time.Duration) error {
	data, err := json.Marshal(principal)
	if err != nil {
		return fmt.Errorf("marshal principal: %w", err)
	}
	key := s.getSessionKey(token)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"principal": string(data),
			"username":  principal.Username,
			"saved_at":  time.Now().UTC().Format(time.RFC3339),
		})
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

func (s *RedisSessionStore) Load(ctx context.Context, token string) (*model.Principal, error) {
	data, err := s.client.HGet(ctx, s.getSessionKey(token), "principal").Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}
	var principal model.Principal
	if err := json.Unmarshal([]byte(data), &principal); err != nil {
		return nil, fmt.Errorf("invalid principal: %v", err)
	}
	return &principal, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.getSessionKey(token)).Err()
}
