package external

// GeoLocationResponse is one element of the /geo/1.0/direct array
type GeoLocationResponse struct {
	Name    string  `json:"name"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// MainDTO holds the temperature block shared by the weather and forecast responses
type MainDTO struct {
	Temp float64 `json:"temp"`
}

// ConditionDTO is one element of the "weather" array
type ConditionDTO struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// CurrentWeatherResponse represents the response from /data/2.5/weather
type CurrentWeatherResponse struct {
	Name    string         `json:"name"`
	Main    *MainDTO       `json:"main"`
	Weather []ConditionDTO `json:"weather"`
}

// ForecastResponse represents the response from /data/2.5/forecast
type ForecastResponse struct {
	List []ForecastEntry `json:"list"`
}

// ForecastEntry is one 3-hour slot of the forecast list
type ForecastEntry struct {
	DtTxt   string         `json:"dt_txt"`
	Main    *MainDTO       `json:"main"`
	Weather []ConditionDTO `json:"weather"`
}

// APIErrorResponse represents error responses from OpenWeatherMap.
// "cod" is a string on some endpoints and a number on others.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// Temperature returns main.temp, or 0 when the block is missing
func (r CurrentWeatherResponse) Temperature() float64 {
	return temperature(r.Main)
}

// Condition returns weather[0].main, or "" when the array is empty
func (r CurrentWeatherResponse) Condition() string {
	return condition(r.Weather)
}

// Temperature returns main.temp, or 0 when the block is missing
func (e ForecastEntry) Temperature() float64 {
	return temperature(e.Main)
}

// Condition returns weather[0].main, or "" when the array is empty
func (e ForecastEntry) Condition() string {
	return condition(e.Weather)
}

func temperature(main *MainDTO) float64 {
	if main == nil {
		return 0
	}
	return main.Temp
}

func condition(weather []ConditionDTO) string {
	if len(weather) == 0 {
		return ""
	}
	return weather[0].Main
}
