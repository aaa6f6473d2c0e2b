package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/stadiumbooking/config"
	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client    *redis.Client
	venuesTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, venuesTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		venuesTTL,
	)
}

func NewRedisCacheWithClient(client *redis.Client, venuesTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, venuesTTL: venuesTTL}
}

// GetVenues returns nil, nil on a miss.
func (c *RedisCache) GetVenues(ctx context.Context, query, category string) ([]domain.Venue, error) {
	data, err := c.client.Get(ctx, venuesKey(query, category)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var venues []domain.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *RedisCache) SetVenues(ctx context.Context, query, category string, venues []domain.Venue) error {
	payload, err := json.Marshal(venues)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, venuesKey(query, category), payload, c.venuesTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func venuesKey(query, category string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	cat := strings.ToLower(strings.TrimSpace(category))
	if cat == "" {
		cat = "all"
	}
	return fmt.Sprintf("cache:venues:%s:%s", cat, q)
}
