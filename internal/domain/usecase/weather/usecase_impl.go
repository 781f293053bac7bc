package weather

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/forecast"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/session"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/state"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

// ErrEmptyLocation is returned by Lookup for an empty location
var ErrEmptyLocation = errors.New("location is required")

type weatherUseCase struct {
	apiGateway     api.WeatherGateway
	sessionGateway session.SessionGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway, sessionGateway session.SessionGateway) UseCase {
	return &weatherUseCase{
		apiGateway:     apiGateway,
		sessionGateway: sessionGateway,
	}
}

// ChangeInput records a keystroke and loads suggestions for it
func (uc *weatherUseCase) ChangeInput(ctx context.Context, sessionID string, text string) (entity.ViewState, uint64, error) {
	current, err := uc.apply(ctx, sessionID, state.InputChanged{Text: text})
	if err != nil {
		return entity.ViewState{}, 0, err
	}

	seq := current.SuggestionSeq
	if text == "" {
		return current, seq, nil
	}

	entries := uc.apiGateway.FetchSuggestions(ctx, text)

	current, err = uc.apply(ctx, sessionID, state.SuggestionsLoaded{Seq: seq, Entries: entries})
	if err != nil {
		return entity.ViewState{}, 0, err
	}
	uc.logIfStale("suggestions", current.SuggestionSeq, seq, sessionID)
	return current, seq, nil
}

// SelectSuggestion copies the label of the index-th suggestion into the query
func (uc *weatherUseCase) SelectSuggestion(ctx context.Context, sessionID string, index int) (entity.ViewState, error) {
	return uc.apply(ctx, sessionID, state.SuggestionSelected{Index: index})
}

// Submit searches for text. The forecast is only requested once the current weather has loaded.
func (uc *weatherUseCase) Submit(ctx context.Context, sessionID string, text string) (entity.ViewState, error) {
	if text == "" {
		return uc.State(ctx, sessionID)
	}

	current, err := uc.sessionGateway.Update(ctx, sessionID, func(s entity.ViewState) entity.ViewState {
		s = state.Apply(s, state.InputChanged{Text: text})
		return state.Apply(s, state.Submitted{})
	})
	if err != nil {
		return entity.ViewState{}, fmt.Errorf("failed to submit search: %w", err)
	}
	seq := current.SubmitSeq

	weather, err := uc.apiGateway.FetchCurrentWeather(ctx, text)
	if err != nil {
		log.Warn(msg.GetMessage("weather.current-failed", text, err),
			zap.String("session_id", sessionID),
			zap.Uint64("seq", seq))
		current, err = uc.apply(ctx, sessionID, state.WeatherFailed{Seq: seq, Alert: alertFor(err)})
		if err != nil {
			return entity.ViewState{}, err
		}
		uc.logIfStale("current weather", current.SubmitSeq, seq, sessionID)
		return current, nil
	}

	current, err = uc.apply(ctx, sessionID, state.WeatherLoaded{Seq: seq, Weather: *weather})
	if err != nil {
		return entity.ViewState{}, err
	}
	if state.IsStale(current.SubmitSeq, seq) {
		uc.logIfStale("current weather", current.SubmitSeq, seq, sessionID)
		return current, nil
	}

	entries, err := uc.apiGateway.FetchForecast(ctx, text)
	if err != nil {
		log.Warn(msg.GetMessage("weather.forecast-failed", text, err),
			zap.String("session_id", sessionID),
			zap.Uint64("seq", seq))
		current, err = uc.apply(ctx, sessionID, state.ForecastFailed{Seq: seq})
	} else {
		current, err = uc.apply(ctx, sessionID, state.ForecastLoaded{Seq: seq, Days: forecast.Reduce(entries)})
	}
	if err != nil {
		return entity.ViewState{}, err
	}
	uc.logIfStale("forecast", current.SubmitSeq, seq, sessionID)
	return current, nil
}

// State returns the current state of a session
func (uc *weatherUseCase) State(ctx context.Context, sessionID string) (entity.ViewState, error) {
	current, err := uc.sessionGateway.Load(ctx, sessionID)
	if err != nil {
		return entity.ViewState{}, fmt.Errorf("failed to load session state: %w", err)
	}
	return current, nil
}

// DismissAlert clears the pending alert of a session
func (uc *weatherUseCase) DismissAlert(ctx context.Context, sessionID string) (entity.ViewState, error) {
	return uc.apply(ctx, sessionID, state.AlertDismissed{})
}

// Suggest returns suggestions for query without touching any session
func (uc *weatherUseCase) Suggest(ctx context.Context, query string) []entity.Suggestion {
	return uc.apiGateway.FetchSuggestions(ctx, query)
}

// Lookup returns the weather and outlook for location.
// A forecast failure still returns the current weather, with the alert text as a warning.
func (uc *weatherUseCase) Lookup(ctx context.Context, location string) (*model.WeatherDTO, error) {
	if location == "" {
		return nil, ErrEmptyLocation
	}

	weather, err := uc.apiGateway.FetchCurrentWeather(ctx, location)
	if err != nil {
		log.Warn(msg.GetMessage("weather.current-failed", location, err))
		return nil, fmt.Errorf("failed to fetch current weather: %w", err)
	}

	result := &model.WeatherDTO{
		Current:  *weather,
		Forecast: []entity.ForecastDay{},
	}

	entries, err := uc.apiGateway.FetchForecast(ctx, location)
	if err != nil {
		log.Warn(msg.GetMessage("weather.forecast-failed", location, err))
		result.Warning = msg.GetMessage(entity.AlertForecastNotFound.MessageKey())
		return result, nil
	}

	result.Forecast = forecast.Reduce(entries)
	return result, nil
}

func (uc *weatherUseCase) apply(ctx context.Context, sessionID string, event state.Event) (entity.ViewState, error) {
	next, err := uc.sessionGateway.Update(ctx, sessionID, func(s entity.ViewState) entity.ViewState {
		return state.Apply(s, event)
	})
	if err != nil {
		return entity.ViewState{}, fmt.Errorf("failed to update session state: %w", err)
	}
	return next, nil
}

func (uc *weatherUseCase) logIfStale(kind string, latest, seq uint64, sessionID string) {
	if state.IsStale(latest, seq) {
		log.Debug(msg.GetMessage("weather.stale-discarded", kind, seq, latest), zap.String("session_id", sessionID))
	}
}

// alertFor maps a current-weather failure onto the alert shown to the user
func alertFor(err error) entity.Alert {
	if errors.Is(err, api.ErrNetwork) {
		return entity.AlertNetworkError
	}
	return entity.AlertLocationNotFound
}
