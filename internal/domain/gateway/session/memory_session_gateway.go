package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

type memoryEntry struct {
	state    entity.ViewState
	lastSeen time.Time
}

// MemorySessionGateway keeps sessions in process memory
type MemorySessionGateway struct {
	sessions map[string]*memoryEntry
	mutex    sync.RWMutex
	now      func() time.Time
}

func NewMemorySessionGateway() *MemorySessionGateway {
	return &MemorySessionGateway{
		sessions: make(map[string]*memoryEntry),
		mutex:    sync.RWMutex{},
		now:      time.Now,
	}
}

func (gateway *MemorySessionGateway) Name() string {
	return StoreMemory
}

func (gateway *MemorySessionGateway) Load(_ context.Context, id string) (entity.ViewState, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	entry, ok := gateway.sessions[id]
	if !ok {
		return entity.ViewState{}, nil
	}
	entry.lastSeen = gateway.now()
	return entry.state, nil
}

func (gateway *MemorySessionGateway) Update(ctx context.Context, id string, fn UpdateFunc) (entity.ViewState, error) {
	if err := ctx.Err(); err != nil {
		return entity.ViewState{}, err
	}

	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	entry, ok := gateway.sessions[id]
	if !ok {
		entry = &memoryEntry{}
		gateway.sessions[id] = entry
	}
	entry.state = fn(entry.state)
	entry.lastSeen = gateway.now()
	return entry.state, nil
}

func (gateway *MemorySessionGateway) Sweep(_ context.Context, idle time.Duration) (int, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	cutoff := gateway.now().Add(-idle)
	removed := 0
	for id, entry := range gateway.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(gateway.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (gateway *MemorySessionGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"store":    StoreMemory,
			"sessions": strconv.Itoa(len(gateway.sessions)),
		},
	}
}
