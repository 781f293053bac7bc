package api

import (
	"context"
	"errors"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model/external"
)

var (
	// ErrLocationNotFound is returned when the provider answers with a non-success status.
	// A rejected API key ends up here as well; the user sees the same message either way.
	ErrLocationNotFound = errors.New("location not found")
	// ErrNetwork is returned for transport failures and unreadable responses.
	ErrNetwork = errors.New("weather service unreachable")
)

// WeatherGateway defines the calls made to the weather data provider.
// Every call is a single GET; nothing is retried.
type WeatherGateway interface {
	// FetchSuggestions returns up to the configured limit of geocoding matches for query.
	// An empty query makes no call. Failures are logged and yield an empty slice.
	FetchSuggestions(ctx context.Context, query string) []entity.Suggestion

	// FetchCurrentWeather returns the current weather for location,
	// or an error wrapping ErrLocationNotFound or ErrNetwork.
	FetchCurrentWeather(ctx context.Context, location string) (*entity.CurrentWeather, error)

	// FetchForecast returns the raw 5-day/3-hour forecast list for location,
	// or an error wrapping ErrLocationNotFound or ErrNetwork.
	FetchForecast(ctx context.Context, location string) ([]external.ForecastEntry, error)

	// Configured reports whether an API key is present.
	Configured() bool
}
