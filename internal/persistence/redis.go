package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/campus-helpdesk/internal/config"
)

const unreadCountTTL = 5 * time.Minute

// Redis wraps the go-redis client. It caches per-user unread notification
// counts so dashboards do not hit the database on every render. All methods
// are nil-safe; a nil receiver means caching is disabled.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration. Returns nil
// when caching is disabled.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

func unreadCountKey(userID string) string {
	return fmt.Sprintf("helpdesk:unread:%s", userID)
}

// GetUnreadCount returns the cached unread count for a user. The boolean is
// false on a cache miss or when caching is disabled.
func (r *Redis) GetUnreadCount(ctx context.Context, userID string) (int, bool) {
	if r == nil || r.Client == nil {
		return 0, false
	}
	val, err := r.Client.Get(ctx, unreadCountKey(userID)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return count, true
}

// SetUnreadCount stores the unread count for a user.
func (r *Redis) SetUnreadCount(ctx context.Context, userID string, count int) {
	if r == nil || r.Client == nil {
		return
	}
	_ = r.Client.Set(ctx, unreadCountKey(userID), strconv.Itoa(count), unreadCountTTL).Err()
}

// InvalidateUnreadCount drops the cached count after any notification write.
func (r *Redis) InvalidateUnreadCount(ctx context.Context, userID string) {
	if r == nil || r.Client == nil {
		return
	}
	_ = r.Client.Del(ctx, unreadCountKey(userID)).Err()
}
