package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model/external"
	"weather-app/pkg/http"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

const (
	geocodingPath       = "/geo/1.0/direct"
	currentWeatherPath  = "/data/2.5/weather"
	forecastPath        = "/data/2.5/forecast"
	apiKeyParam         = "appid"
	defaultSuggestLimit = 5
)

// GatewayOptions configures the OpenWeatherMap gateway
type GatewayOptions struct {
	APIKey          string
	Units           string
	SuggestionLimit int
	ClientOptions   http.ClientOptions
}

// weatherGatewayImpl implements the WeatherGateway interface against OpenWeatherMap
type weatherGatewayImpl struct {
	httpClient      *http.Client
	apiKey          string
	units           string
	suggestionLimit int
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, opts GatewayOptions) WeatherGateway {
	if opts.SuggestionLimit <= 0 {
		opts.SuggestionLimit = defaultSuggestLimit
	}
	if opts.Units == "" {
		opts.Units = "metric"
	}

	clientOptions := opts.ClientOptions
	clientOptions.DefaultQueryParams = map[string]string{apiKeyParam: opts.APIKey}
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.NewZapLogger("openweather", apiKeyParam)
	}

	return &weatherGatewayImpl{
		httpClient:      http.NewHttpClient(baseUrl, clientOptions),
		apiKey:          opts.APIKey,
		units:           opts.Units,
		suggestionLimit: opts.SuggestionLimit,
	}
}

func (w *weatherGatewayImpl) Configured() bool {
	return w.apiKey != ""
}

// FetchSuggestions searches the geocoding API
func (w *weatherGatewayImpl) FetchSuggestions(ctx context.Context, query string) []entity.Suggestion {
	if query == "" {
		return []entity.Suggestion{}
	}

	successResp, _, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(geocodingPath).
		WithQueryParams(map[string]string{
			"q":     query,
			"limit": strconv.Itoa(w.suggestionLimit),
		}).
		WithSuccessResp(&[]external.GeoLocationResponse{}).
		Execute()

	if err != nil {
		err = http.RedactError(err, apiKeyParam)
		log.Warn(msg.GetMessage("weather.suggestions-failed", query, err), zap.String("query", query), zap.Error(err))
		return []entity.Suggestion{}
	}

	results := *successResp.(*[]external.GeoLocationResponse)
	if len(results) > w.suggestionLimit {
		results = results[:w.suggestionLimit]
	}

	suggestions := make([]entity.Suggestion, 0, len(results))
	for _, r := range results {
		suggestions = append(suggestions, entity.Suggestion{
			Name:    r.Name,
			State:   r.State,
			Country: r.Country,
			Lat:     r.Lat,
			Lon:     r.Lon,
		})
	}
	return suggestions
}

// FetchCurrentWeather gets the current weather for a location
func (w *weatherGatewayImpl) FetchCurrentWeather(ctx context.Context, location string) (*entity.CurrentWeather, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(currentWeatherPath).
		WithQueryParams(w.locationParams(location)).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classify(status, errResp, err)
	}

	response := successResp.(*external.CurrentWeatherResponse)
	return &entity.CurrentWeather{
		LocationName:       response.Name,
		TemperatureCelsius: response.Temperature(),
		ConditionMain:      response.Condition(),
	}, nil
}

// FetchForecast gets the 5-day/3-hour forecast list for a location
func (w *weatherGatewayImpl) FetchForecast(ctx context.Context, location string) ([]external.ForecastEntry, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(w.locationParams(location)).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, classify(status, errResp, err)
	}

	return successResp.(*external.ForecastResponse).List, nil
}

func (w *weatherGatewayImpl) locationParams(location string) map[string]string {
	return map[string]string{
		"q":     location,
		"units": w.units,
	}
}

// classify maps a failed call onto the gateway's error taxonomy.
// Transport errors quote the request URL, so the API key is masked first.
func classify(status int, errResp any, err error) error {
	var statusErr *http.StatusError
	if !errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %v", ErrNetwork, http.RedactError(err, apiKeyParam))
	}

	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil && apiErr.Message != "" {
		return fmt.Errorf("%w: status %d: %s", ErrLocationNotFound, status, apiErr.Message)
	}
	return fmt.Errorf("%w: status %d", ErrLocationNotFound, status)
}
