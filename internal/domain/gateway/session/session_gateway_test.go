package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/pkg/redis"
)

func newRedisGateway(t *testing.T) (*RedisSessionGateway, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)

	client, err := redis.NewClient(redis.NewRedisConfig().WithAddr(server.Addr()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionGateway(client, 30*time.Minute), server
}

func gateways(t *testing.T) map[string]SessionGateway {
	redisGateway, _ := newRedisGateway(t)
	return map[string]SessionGateway{
		StoreMemory: NewMemorySessionGateway(),
		StoreRedis:  redisGateway,
	}
}

func TestLoadUnknownSessionIsZero(t *testing.T) {
	for name, gateway := range gateways(t) {
		t.Run(name, func(t *testing.T) {
			state, err := gateway.Load(context.Background(), "missing")
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if state.Query != "" || state.Weather != nil || state.SubmitSeq != 0 {
				t.Fatalf("unexpected state %+v", state)
			}
		})
	}
}

func TestUpdateThenLoad(t *testing.T) {
	for name, gateway := range gateways(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			updated, err := gateway.Update(ctx, "abc", func(s entity.ViewState) entity.ViewState {
				s.Query = "Paris"
				s.Weather = &entity.CurrentWeather{LocationName: "Paris", TemperatureCelsius: 18.3, ConditionMain: "Clouds"}
				s.Alert = entity.AlertForecastNotFound
				return s
			})
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			if updated.Query != "Paris" {
				t.Fatalf("update returned %+v", updated)
			}

			loaded, err := gateway.Load(ctx, "abc")
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if loaded.Query != "Paris" || loaded.Weather == nil || loaded.Weather.TemperatureCelsius != 18.3 || loaded.Alert != entity.AlertForecastNotFound {
				t.Fatalf("loaded %+v", loaded)
			}

			other, _ := gateway.Load(ctx, "other")
			if other.Query != "" {
				t.Fatalf("sessions leaked into each other: %+v", other)
			}
		})
	}
}

func TestConcurrentUpdatesAreSerialised(t *testing.T) {
	for name, gateway := range gateways(t) {
		t.Run(name, func(t *testing.T) {
			const writers = 10
			ctx := context.Background()

			var wg sync.WaitGroup
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if _, err := gateway.Update(ctx, "shared", func(s entity.ViewState) entity.ViewState {
						s.SubmitSeq++
						return s
					}); err != nil {
						t.Errorf("update: %v", err)
					}
				}()
			}
			wg.Wait()

			state, err := gateway.Load(ctx, "shared")
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if state.SubmitSeq != writers {
				t.Fatalf("SubmitSeq = %d, want %d", state.SubmitSeq, writers)
			}
		})
	}
}

func TestMemorySweepRemovesIdleSessions(t *testing.T) {
	gateway := NewMemorySessionGateway()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	gateway.now = func() time.Time { return now }
	ctx := context.Background()

	identity := func(s entity.ViewState) entity.ViewState { return s }
	_, _ = gateway.Update(ctx, "old", identity)
	now = now.Add(20 * time.Minute)
	_, _ = gateway.Update(ctx, "fresh", identity)
	now = now.Add(15 * time.Minute)

	removed, err := gateway.Sweep(ctx, 30*time.Minute)
	if err != nil || removed != 1 {
		t.Fatalf("removed=%d err=%v", removed, err)
	}
	if got := gateway.Health().Details["sessions"]; got != "1" {
		t.Fatalf("sessions = %s", got)
	}
}

func TestMemoryLoadRefreshesLastSeen(t *testing.T) {
	gateway := NewMemorySessionGateway()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	gateway.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = gateway.Update(ctx, "abc", func(s entity.ViewState) entity.ViewState { return s })
	now = now.Add(25 * time.Minute)
	_, _ = gateway.Load(ctx, "abc")
	now = now.Add(25 * time.Minute)

	if removed, _ := gateway.Sweep(ctx, 30*time.Minute); removed != 0 {
		t.Fatalf("removed %d recently loaded sessions", removed)
	}
}

func TestRedisSessionExpires(t *testing.T) {
	gateway, server := newRedisGateway(t)
	ctx := context.Background()

	_, err := gateway.Update(ctx, "abc", func(s entity.ViewState) entity.ViewState {
		s.Query = "Paris"
		return s
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !server.Exists("weather-session::abc") {
		t.Fatalf("keys = %v", server.Keys())
	}

	server.FastForward(31 * time.Minute)
	state, err := gateway.Load(ctx, "abc")
	if err != nil || state.Query != "" {
		t.Fatalf("expected expired session, got %+v err=%v", state, err)
	}
}

func TestHealth(t *testing.T) {
	if got := NewMemorySessionGateway().Health(); got.Status != model.StatusUp || got.Details["store"] != StoreMemory {
		t.Fatalf("memory health %+v", got)
	}

	gateway, server := newRedisGateway(t)
	if got := gateway.Health(); got.Status != model.StatusUp || got.Details["store"] != StoreRedis {
		t.Fatalf("redis health %+v", got)
	}
	server.Close()
	if got := gateway.Health(); got.Status != model.StatusDown {
		t.Fatalf("redis health after close %+v", got)
	}
}
