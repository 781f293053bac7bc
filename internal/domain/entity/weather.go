package entity

// CurrentWeather is the part of the provider's current-weather response the page shows.
type CurrentWeather struct {
	LocationName       string  `json:"locationName"`
	TemperatureCelsius float64 `json:"temperatureCelsius"`
	ConditionMain      string  `json:"conditionMain"`
}

// ForecastDay is one midday slot of the 3-day outlook.
// Timestamp is the provider's dt_txt, taken at face value.
type ForecastDay struct {
	Timestamp          string  `json:"timestamp"`
	TemperatureCelsius float64 `json:"temperatureCelsius"`
	ConditionMain      string  `json:"conditionMain"`
}
