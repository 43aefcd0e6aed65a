package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ds124wfegd/catchcraft/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// FrameCache stores encoded frames by state fingerprint.
type FrameCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, frame []byte) error
	Close() error
}

const keyPrefix = "frame:"

type redisFrameCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFrameCache connects to Redis. Without a configured host, or when Redis cannot be
// reached, frames are not cached.
func NewFrameCache(ctx context.Context, cfg *config.RedisConfig, ttl time.Duration) FrameCache {
	if cfg.Host == "" {
		logrus.Info("Redis host not configured, frame cache disabled")
		return NopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Warnf("Redis connection failed, frame cache disabled: %v", err)
		_ = client.Close()
		return NopCache{}
	}

	logrus.Infof("Connected to Redis at %s:%d", cfg.Host, cfg.Port)
	return NewRedisFrameCache(client, ttl)
}

func NewRedisFrameCache(client *redis.Client, ttl time.Duration) FrameCache {
	return &redisFrameCache{client: client, ttl: ttl}
}

func (c *redisFrameCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (c *redisFrameCache) Set(ctx context.Context, key string, frame []byte) error {
	return c.client.Set(ctx, keyPrefix+key, frame, c.ttl).Err()
}

func (c *redisFrameCache) Close() error {
	return c.client.Close()
}

// NopCache never holds a frame.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NopCache) Set(context.Context, string, []byte) error         { return nil }
func (NopCache) Close() error                                      { return nil }
