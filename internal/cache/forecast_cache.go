// internal/cache/forecast_cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/warelens/backend-go/internal/config"
	"github.com/warelens/backend-go/internal/domain"
)

const (
	forecastAllKey      = "forecast:all"
	forecastItemKeyStem = "forecast:item"
)

// ForecastCache caches computed forecast results. The forecast is a pure
// function of item + history, so short TTLs are only there to bound staleness
// after stock updates and demand ingests.
type ForecastCache interface {
	GetAll(ctx context.Context) ([]domain.ItemForecast, bool, error)
	SetAll(ctx context.Context, forecasts []domain.ItemForecast) error
	GetItem(ctx context.Context, itemID int64) (domain.ItemForecast, bool, error)
	SetItem(ctx context.Context, forecast domain.ItemForecast) error
	Invalidate(ctx context.Context) error
}

type redisForecastCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopForecastCache struct{}

// NewForecastCache returns a redis-backed cache when enabled, a noop
// otherwise.
func NewForecastCache(cfg config.CacheConfig) (ForecastCache, error) {
	if !cfg.Enabled {
		return &noopForecastCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisForecastCache{client: client, ttl: ttl}, nil
}

func NewNoopForecastCache() ForecastCache {
	return &noopForecastCache{}
}

func (c *redisForecastCache) GetAll(ctx context.Context) ([]domain.ItemForecast, bool, error) {
	payload, err := c.client.Get(ctx, forecastAllKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var forecasts []domain.ItemForecast
	if err := json.Unmarshal(payload, &forecasts); err != nil {
		return nil, false, fmt.Errorf("decode forecast cache: %w", err)
	}

	return forecasts, true, nil
}

func (c *redisForecastCache) SetAll(ctx context.Context, forecasts []domain.ItemForecast) error {
	payload, err := json.Marshal(forecasts)
	if err != nil {
		return fmt.Errorf("encode forecast cache: %w", err)
	}

	if err := c.client.Set(ctx, forecastAllKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisForecastCache) GetItem(ctx context.Context, itemID int64) (domain.ItemForecast, bool, error) {
	payload, err := c.client.Get(ctx, itemKey(itemID)).Bytes()
	if err == redis.Nil {
		return domain.ItemForecast{}, false, nil
	}
	if err != nil {
		return domain.ItemForecast{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var forecast domain.ItemForecast
	if err := json.Unmarshal(payload, &forecast); err != nil {
		return domain.ItemForecast{}, false, fmt.Errorf("decode forecast cache: %w", err)
	}

	return forecast, true, nil
}

func (c *redisForecastCache) SetItem(ctx context.Context, forecast domain.ItemForecast) error {
	payload, err := json.Marshal(forecast)
	if err != nil {
		return fmt.Errorf("encode forecast cache: %w", err)
	}

	if err := c.client.Set(ctx, itemKey(forecast.Item.ID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisForecastCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	pattern := "forecast:*"
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis delete failed: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			return nil
		}
	}
}

func (n *noopForecastCache) GetAll(ctx context.Context) ([]domain.ItemForecast, bool, error) {
	return nil, false, nil
}

func (n *noopForecastCache) SetAll(ctx context.Context, forecasts []domain.ItemForecast) error {
	return nil
}

func (n *noopForecastCache) GetItem(ctx context.Context, itemID int64) (domain.ItemForecast, bool, error) {
	return domain.ItemForecast{}, false, nil
}

func (n *noopForecastCache) SetItem(ctx context.Context, forecast domain.ItemForecast) error {
	return nil
}

func (n *noopForecastCache) Invalidate(ctx context.Context) error {
	return nil
}

func itemKey(itemID int64) string {
	return forecastItemKeyStem + ":" + strconv.FormatInt(itemID, 10)
}
