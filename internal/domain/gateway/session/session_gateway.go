package session

import (
	"context"
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// UpdateFunc derives the next state of a session from its current one.
// It may be invoked more than once for a single Update and must not have side effects.
type UpdateFunc func(current entity.ViewState) entity.ViewState

// SessionGateway stores the view state of every browser session
type SessionGateway interface {
	// Load returns the state of session id, or the zero state when it is unknown
	Load(ctx context.Context, id string) (entity.ViewState, error)

	// Update atomically replaces the state of session id with fn(current) and returns it
	Update(ctx context.Context, id string, fn UpdateFunc) (entity.ViewState, error)

	// Sweep drops sessions not touched for longer than idle and returns how many were removed
	Sweep(ctx context.Context, idle time.Duration) (int, error)

	// Health reports the status of the backing store
	Health() model.ComponentHealthStatus

	// Name identifies the backing store
	Name() string
}
