// Package cache provides a Redis-backed cache for user records. The
// cache is optional: a nil *UserCache is a no-op, so the service runs
// unchanged when Redis is not configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"messagely/internal/api/models"
)

type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache connects to Redis and verifies the connection.
func NewUserCache(addr, password string, ttl time.Duration) (*UserCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &UserCache{client: rdb, ttl: ttl}, nil
}

func userKey(username string) string {
	return fmt.Sprintf("user:%s", username)
}

// Get returns the cached user, or (nil, false) on a miss. Cache errors
// are treated as misses; the database stays the source of truth.
func (c *UserCache) Get(ctx context.Context, username string) (*models.User, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, userKey(username)).Bytes()
	if err != nil {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, false
	}
	return &user, true
}

// Set stores the user with the configured TTL.
func (c *UserCache) Set(ctx context.Context, user *models.User) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, userKey(user.Username), data, c.ttl).Err()
}

// Invalidate drops the cached entry, e.g. after a login-timestamp update.
func (c *UserCache) Invalidate(ctx context.Context, username string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, userKey(username)).Err()
}

// Close releases the underlying Redis connection.
func (c *UserCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
