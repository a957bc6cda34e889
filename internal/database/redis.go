package database

import (
	"context"
	"fmt"
	"time"

	"travel-backoffice/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the client shared by the session store, the
// confirmation store and the invalidation bus.
func InitRedis(config *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
