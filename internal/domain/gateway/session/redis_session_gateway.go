package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/pkg/redis"
)

const (
	sessionCacheName = "weather-session"
	maxTxAttempts    = 100
)

// RedisSessionGateway keeps sessions in Redis as JSON documents that expire after the session TTL
type RedisSessionGateway struct {
	cache *redis.Cache
}

func NewRedisSessionGateway(client *redis.Client, ttl time.Duration) *RedisSessionGateway {
	opts := redis.NewCacheOptions().
		WithCacheName(sessionCacheName).
		WithTTL(ttl).
		WithRefreshTTL(true)

	return &RedisSessionGateway{cache: redis.NewCache(client, opts)}
}

func (gateway *RedisSessionGateway) Name() string {
	return StoreRedis
}

func (gateway *RedisSessionGateway) Load(ctx context.Context, id string) (entity.ViewState, error) {
	var state entity.ViewState
	if _, err := gateway.cache.Get(ctx, id, &state); err != nil {
		return entity.ViewState{}, fmt.Errorf("failed to load session: %w", err)
	}
	return state, nil
}

// Update runs fn inside a WATCH/MULTI transaction on the session key.
// A transaction aborted by a concurrent writer is run again against the fresh value.
func (gateway *RedisSessionGateway) Update(ctx context.Context, id string, fn UpdateFunc) (entity.ViewState, error) {
	key := gateway.cache.Key(id)
	var next entity.ViewState

	txf := func(tx *goredis.Tx) error {
		var current entity.ViewState
		data, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, goredis.Nil):
		case err != nil:
			return err
		default:
			if err := json.Unmarshal(data, &current); err != nil {
				return fmt.Errorf("failed to deserialize session: %w", err)
			}
		}

		next = fn(current)
		encoded, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to serialize session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, gateway.cache.TTL())
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := gateway.cache.Client().Watch(ctx, txf, key)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, goredis.TxFailedErr) {
			return entity.ViewState{}, fmt.Errorf("failed to update session: %w", err)
		}
	}
	return entity.ViewState{}, fmt.Errorf("failed to update session: %d conflicting writes", maxTxAttempts)
}

// Sweep is a no-op, Redis expires idle sessions through their TTL
func (gateway *RedisSessionGateway) Sweep(context.Context, time.Duration) (int, error) {
	return 0, nil
}

func (gateway *RedisSessionGateway) Health() model.ComponentHealthStatus {
	check := redis.HealthCheck(context.Background(), gateway.cache.Client())

	details := map[string]string{"store": StoreRedis}
	for key, value := range check.Details {
		details[key] = value
	}

	status := model.StatusUnknown
	switch check.Status {
	case redis.StatusUp:
		status = model.StatusUp
	case redis.StatusDown:
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{Status: status, Details: details}
}
