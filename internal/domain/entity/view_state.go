package entity

// Alert identifies a blocking message waiting to be shown to the user.
type Alert string

const (
	AlertNone             Alert = ""
	AlertLocationNotFound Alert = "location-not-found"
	AlertForecastNotFound Alert = "forecast-not-found"
	AlertNetworkError     Alert = "network-error"
)

// MessageKey is the messages.yml key holding the alert text.
func (a Alert) MessageKey() string {
	return "alert." + string(a)
}

// ViewState is everything one browser session shows: the four UI slots plus
// the bookkeeping needed to drop out-of-order completions.
type ViewState struct {
	Query       string          `json:"query"`
	Suggestions []Suggestion    `json:"suggestions,omitempty"`
	Weather     *CurrentWeather `json:"weather,omitempty"`
	Forecast    []ForecastDay   `json:"forecast,omitempty"`

	// SuggestionSeq and SubmitSeq are the latest sequence numbers issued per request kind.
	SuggestionSeq uint64 `json:"suggestionSeq"`
	SubmitSeq     uint64 `json:"submitSeq"`

	Alert Alert `json:"alert,omitempty"`
}
