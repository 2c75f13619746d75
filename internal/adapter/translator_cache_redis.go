// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary/internal/config"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/redis/go-redis/v9"
)

// redisCmdable is the subset of redis.Cmdable the translation cache uses.
type redisCmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type cachedTranslator struct {
	next   Translator
	cache  redisCmdable
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisClient connects to Redis and pings it once.
func NewRedisClient(ctx context.Context, cfg config.Cache) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddress, err)
	}
	return client, nil
}

// NewCachedTranslator memoises translations in Redis. Cache failures are
// logged and the call goes to next.
func NewCachedTranslator(next Translator, cache redisCmdable, ttl time.Duration, log *logger.Logger) Translator {
	return &cachedTranslator{next: next, cache: cache, ttl: ttl, logger: log}
}

func (c *cachedTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	key := translationCacheKey(text, targetLanguage)

	cached, err := c.cache.Get(ctx, key).Result()
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, redis.Nil):
		c.logger.Warn().Err(err).Str("func", "*cachedTranslator.Translate").Msg("translation cache read failed")
	}

	translated, err := c.next.Translate(ctx, text, targetLanguage)
	if err != nil {
		return "", err
	}

	if err = c.cache.Set(ctx, key, translated, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("func", "*cachedTranslator.Translate").Msg("translation cache write failed")
	}
	return translated, nil
}

func translationCacheKey(text, targetLanguage string) string {
	sum := sha256.Sum256([]byte(text))
	return "translation:" + targetLanguage + ":" + hex.EncodeToString(sum[:])
}
