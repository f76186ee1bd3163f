package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ayodiya/hux-assessment-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config holds Redis connection configuration
type Config struct {
	Enabled      bool
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// Client wraps the go-redis client. A disabled client is a valid value:
// every operation reports a miss and no connection is opened.
type Client struct {
	rdb     *redis.Client
	enabled bool
}

// NewClient connects to Redis, or returns a disabled client when the cache
// is turned off. Connection failure disables the client rather than failing
// startup; the cache is an optimization, not a dependency.
func NewClient(cfg Config) *Client {
	if !cfg.Enabled {
		return &Client{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.GetLogger().Warn("Redis unreachable, cache disabled",
			zap.String("address", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
			zap.Error(err),
		)
		_ = rdb.Close()
		return &Client{}
	}

	logger.GetLogger().Info("Connected to Redis",
		zap.String("address", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("database", cfg.DB),
	)

	return &Client{rdb: rdb, enabled: true}
}

// IsEnabled reports whether the client holds a live connection.
func (c *Client) IsEnabled() bool {
	return c != nil && c.enabled
}

// Get returns the cached payload for key; the bool reports a hit.
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !c.IsEnabled() {
		return nil, false, nil
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}

	return data, true, nil
}

// Set stores a payload under key with the given TTL.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !c.IsEnabled() {
		return nil
	}

	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}

	return nil
}

// Del removes keys.
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if !c.IsEnabled() || len(keys) == 0 {
		return nil
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

// Ping checks the connection.
func (c *Client) Ping(ctx context.Context) error {
	if !c.IsEnabled() {
		return errors.New("redis disabled")
	}
	return c.rdb.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if !c.IsEnabled() {
		return nil
	}
	return c.rdb.Close()
}
