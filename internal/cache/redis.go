package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flightsearch/config"
	"github.com/Domenick1991/flightsearch/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores catalog snapshots, one per catalog source.
type RedisCache struct {
	client     *redis.Client
	namespace  string
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, namespace string, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		namespace:  namespace,
		flightsTTL: flightsTTL,
	}
}

// GetFlights returns nil, nil on a cache miss.
func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey(c.namespace)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("decode cached flights: %w", err)
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(c.namespace), payload, c.flightsTTL).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func flightsKey(namespace string) string {
	if namespace == "" {
		return "cache:flights"
	}
	return fmt.Sprintf("cache:flights:%s", namespace)
}
