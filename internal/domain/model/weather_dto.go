package model

import "weather-app/internal/domain/entity"

// SuggestionDTO is a geocoding match together with its display label
type SuggestionDTO struct {
	Label   string  `json:"label"`
	Name    string  `json:"name"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// WeatherDTO is the current weather plus the midday outlook for a location
// Warning carries the alert text when the forecast could not be fetched
type WeatherDTO struct {
	Current  entity.CurrentWeather `json:"current"`
	Forecast []entity.ForecastDay  `json:"forecast"`
	Warning  string                `json:"warning,omitempty"`
}

// ErrorDTO is the body of every JSON error response
type ErrorDTO struct {
	Error string `json:"error"`
}

func NewSuggestionDTOs(suggestions []entity.Suggestion) []SuggestionDTO {
	dtos := make([]SuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		dtos = append(dtos, SuggestionDTO{
			Label:   s.Label(),
			Name:    s.Name,
			State:   s.State,
			Country: s.Country,
			Lat:     s.Lat,
			Lon:     s.Lon,
		})
	}
	return dtos
}
