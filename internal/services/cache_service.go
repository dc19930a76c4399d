package services

import (
	"context"
	"fmt"
	"time"

	"logitrack/pkg/cache"
	"logitrack/pkg/logger"
)

// CacheService is the read-through cache used by the repositories. A nil
// CacheService is valid and means caching is disabled.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	DeletePattern(ctx context.Context, pattern string) error
}

type cacheService struct {
	redisClient *cache.RedisCache
	logger      *logger.Logger
	keyPrefix   string
	defaultTTL  time.Duration
}

func NewCacheService(redisClient *cache.RedisCache, logger *logger.Logger, keyPrefix string, defaultTTL time.Duration) CacheService {
	return &cacheService{
		redisClient: redisClient,
		logger:      logger,
		keyPrefix:   keyPrefix,
		defaultTTL:  defaultTTL,
	}
}

func (s *cacheService) buildKey(key string) string {
	if s.keyPrefix == "" {
		return key
	}
	return fmt.Sprintf("%s:%s", s.keyPrefix, key)
}

func (s *cacheService) Get(ctx context.Context, key string, dest interface{}) error {
	return s.redisClient.Get(ctx, s.buildKey(key), dest)
}

func (s *cacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if expiration <= 0 {
		expiration = s.defaultTTL
	}

	err := s.redisClient.Set(ctx, s.buildKey(key), value, expiration)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to set cache entry")
	}
	return err
}

func (s *cacheService) Delete(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.buildKey(key)
	}
	return s.redisClient.Delete(ctx, prefixed...)
}

func (s *cacheService) Exists(ctx context.Context, key string) (bool, error) {
	return s.redisClient.Exists(ctx, s.buildKey(key))
}

func (s *cacheService) DeletePattern(ctx context.Context, pattern string) error {
	keys, err := s.redisClient.Keys(ctx, s.buildKey(pattern))
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.redisClient.Delete(ctx, keys...)
}
