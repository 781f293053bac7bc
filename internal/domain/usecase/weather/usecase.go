package weather

import (
	"context"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

type UseCase interface {
	// ChangeInput records a keystroke and loads suggestions for it.
	// It returns the resulting state and the suggestion sequence number the keystroke was issued with.
	ChangeInput(ctx context.Context, sessionID string, text string) (entity.ViewState, uint64, error)

	// SelectSuggestion copies the label of the index-th suggestion into the query
	SelectSuggestion(ctx context.Context, sessionID string, index int) (entity.ViewState, error)

	// Submit searches for text and loads its current weather and, on success, its forecast
	Submit(ctx context.Context, sessionID string, text string) (entity.ViewState, error)

	// State returns the current state of a session
	State(ctx context.Context, sessionID string) (entity.ViewState, error)

	// DismissAlert clears the pending alert of a session
	DismissAlert(ctx context.Context, sessionID string) (entity.ViewState, error)

	// Suggest returns suggestions for query without touching any session
	Suggest(ctx context.Context, query string) []entity.Suggestion

	// Lookup returns the weather and outlook for location without touching any session
	Lookup(ctx context.Context, location string) (*model.WeatherDTO, error)
}
