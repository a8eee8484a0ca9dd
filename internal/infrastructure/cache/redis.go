package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// NewRedisClient connects to Redis, retrying the first ping with exponential backoff
func NewRedisClient(ctx context.Context, cfg *config.Config, log *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxElapsedTime = 10 * time.Second

	ping := func() error {
		return client.Ping(ctx).Err()
	}
	notify := func(err error, wait time.Duration) {
		log.Warn("⚠️ Redis not ready, retrying",
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(bo, ctx), notify); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info("✅ Redis connected successfully", zap.String("addr", cfg.GetRedisAddr()))
	return client, nil
}

// RedisSummaryCache stores summaries as JSON strings with a TTL
type RedisSummaryCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisSummaryCache creates a summary cache backed by Redis
func NewRedisSummaryCache(client redis.Cmdable, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: ttl}
}

func (c *RedisSummaryCache) Get(ctx context.Context, id uuid.UUID) (*entities.Summary, bool, error) {
	raw, err := c.client.Get(ctx, summaryKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read summary from redis: %w", err)
	}

	s, err := decodeSummary(raw)
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, summary *entities.Summary) error {
	raw, err := encodeSummary(summary)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, summaryKey(summary.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary to redis: %w", err)
	}
	return nil
}

func (c *RedisSummaryCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, summaryKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete summary from redis: %w", err)
	}
	return nil
}
