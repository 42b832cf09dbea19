package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ErrCacheMiss is returned when a key is absent. Callers fall back to the
// database; a cache failure must never fail the request.
var ErrCacheMiss = errors.New("cache miss")

// CacheService caches per-tenant /stats aggregates and backs the login
// rate limiter. Stats entries are invalidated on every write to the
// resource they summarize.
type CacheService interface {
	GetStats(ctx context.Context, tenantID uuid.UUID, resource string, dest any) error
	SetStats(ctx context.Context, tenantID uuid.UUID, resource string, stats any, ttl time.Duration) error
	InvalidateStats(ctx context.Context, tenantID uuid.UUID, resource string) error

	IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error)

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port as well as bare host:port.
	if trimmed := strings.TrimPrefix(strings.TrimPrefix(addr, "rediss://"), "redis://"); trimmed != addr {
		addr = trimmed
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("redis ping failed on initialization")
	}

	return &redisCacheService{client: client}
}

func statsKey(tenantID uuid.UUID, resource string) string {
	return fmt.Sprintf("stats:%s:%s", tenantID, resource)
}

func (s *redisCacheService) GetStats(ctx context.Context, tenantID uuid.UUID, resource string, dest any) error {
	data, err := s.client.Get(ctx, statsKey(tenantID, resource)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (s *redisCacheService) SetStats(ctx context.Context, tenantID uuid.UUID, resource string, stats any, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, statsKey(tenantID, resource), data, ttl).Err()
}

func (s *redisCacheService) InvalidateStats(ctx context.Context, tenantID uuid.UUID, resource string) error {
	return s.client.Del(ctx, statsKey(tenantID, resource)).Err()
}

// IsRateLimited implements a fixed-window counter. The first request in a
// window sets the expiry; requests past the limit are rejected until the
// window rolls over.
func (s *redisCacheService) IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	fullKey := "ratelimit:" + key
	count, err := s.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := s.client.Expire(ctx, fullKey, window).Err(); err != nil {
			return false, err
		}
	}
	return count > int64(limit), nil
}

func (s *redisCacheService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
