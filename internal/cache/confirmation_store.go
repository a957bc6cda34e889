package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-backoffice/internal/model"
	apperrors "travel-backoffice/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// RedisConfirmationStore keeps pending delete confirmations in Redis so the
// confirming request may land on any gateway instance.
type RedisConfirmationStore struct {
	client *redis.Client
}

func NewRedisConfirmationStore(client *redis.Client) *RedisConfirmationStore {
	return &RedisConfirmationStore{client: client}
}

func (s *RedisConfirmationStore) getKey(token string) string {
	return fmt.Sprintf("confirmation:%s", token)
}

func (s *RedisConfirmationStore) Put(ctx context.Context, c *model.Confirmation, ttl time.Duration) error {
	key := s.getKey(c.Token)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"owner":    c.Owner,
			"resource": c.Resource,
			"entity":   c.EntityID,
		})
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	return err
}

// consumeScript checks and deletes a confirmation atomically.
var consumeScript = redis.NewScript(`
	local key = KEYS[1]
	local fields = redis.call('HMGET', key, 'owner', 'resource', 'entity')
	if not fields[1] then
		return -1 -- missing or expired
	end
	if fields[1] ~= ARGV[1] then
		return -1 -- issued to another session
	end
	if fields[2] ~= ARGV[2] or fields[3] ~= ARGV[3] then
		return -2 -- issued for another delete
	end
	redis.call('DEL', key)
	return 1
`)

// cancelScript deletes a confirmation only for its owner.
var cancelScript = redis.NewScript(`
	local owner = redis.call('HGET', KEYS[1], 'owner')
	if not owner or owner ~= ARGV[1] then
		return -1
	end
	redis.call('DEL', KEYS[1])
	return 1
`)

func (s *RedisConfirmationStore) Consume(ctx context.Context, owner, token, resource, entityID string) error {
	code, err := consumeScript.Run(ctx, s.client, []string{s.getKey(token)}, owner, resource, entityID).Int64()
	if err != nil {
		return err
	}
	switch code {
	case 1:
		return nil
	case -1, -2:
		return apperrors.ErrConfirmationNeeded
	default:
		return errors.New("unexpected result")
	}
}

func (s *RedisConfirmationStore) Cancel(ctx context.Context, owner, token string) error {
	code, err := cancelScript.Run(ctx, s.client, []string{s.getKey(token)}, owner).Int64()
	if err != nil {
		return err
	}
	if code != 1 {
		return apperrors.ErrNotFound
	}
	return nil
}
