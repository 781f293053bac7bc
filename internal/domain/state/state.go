// Package state holds the pure transition function of a browser session's view state.
package state

import "weather-app/internal/domain/entity"

// Event is anything that moves a ViewState forward.
type Event interface {
	event()
}

// InputChanged is a keystroke in the location box.
type InputChanged struct{ Text string }

// SuggestionsLoaded completes the suggestion fetch issued with Seq.
type SuggestionsLoaded struct {
	Seq     uint64
	Entries []entity.Suggestion
}

// SuggestionSelected is a click on the Index-th suggestion.
type SuggestionSelected struct{ Index int }

// Submitted is the search form being submitted.
type Submitted struct{}

// WeatherLoaded completes the current-weather fetch of submit Seq.
type WeatherLoaded struct {
	Seq     uint64
	Weather entity.CurrentWeather
}

// WeatherFailed reports a failed current-weather fetch of submit Seq.
type WeatherFailed struct {
	Seq   uint64
	Alert entity.Alert
}

// ForecastLoaded completes the forecast fetch of submit Seq with the reduced days.
type ForecastLoaded struct {
	Seq  uint64
	Days []entity.ForecastDay
}

// ForecastFailed reports a failed forecast fetch of submit Seq.
type ForecastFailed struct{ Seq uint64 }

// AlertDismissed clears the pending alert once it has been shown.
type AlertDismissed struct{}

func (InputChanged) event()       {}
func (SuggestionsLoaded) event()  {}
func (SuggestionSelected) event() {}
func (Submitted) event()          {}
func (WeatherLoaded) event()      {}
func (WeatherFailed) event()      {}
func (ForecastLoaded) event()     {}
func (ForecastFailed) event()     {}
func (AlertDismissed) event()     {}

// Apply returns the state that follows s after e. It never mutates s.
//
// Completions carry the sequence number they were issued with and are dropped
// unless it is still the latest for their kind, so overlapping requests resolve
// to the most recently issued one regardless of arrival order.
func Apply(s entity.ViewState, e Event) entity.ViewState {
	switch e := e.(type) {
	case InputChanged:
		s.Query = e.Text
		s.SuggestionSeq++
		if e.Text == "" {
			s.Suggestions = nil
		}

	case SuggestionsLoaded:
		if e.Seq != s.SuggestionSeq {
			return s
		}
		s.Suggestions = cloneSuggestions(e.Entries)

	case SuggestionSelected:
		if e.Index < 0 || e.Index >= len(s.Suggestions) {
			return s
		}
		s.Query = s.Suggestions[e.Index].Label()
		s.Suggestions = nil
		s.SuggestionSeq++

	case Submitted:
		if s.Query == "" {
			return s
		}
		s.SubmitSeq++
		s.Suggestions = nil
		s.SuggestionSeq++

	case WeatherLoaded:
		if e.Seq != s.SubmitSeq {
			return s
		}
		weather := e.Weather
		s.Weather = &weather

	case WeatherFailed:
		if e.Seq != s.SubmitSeq {
			return s
		}
		s.Weather = nil
		s.Forecast = nil
		s.Alert = e.Alert

	case ForecastLoaded:
		if e.Seq != s.SubmitSeq {
			return s
		}
		s.Forecast = cloneDays(e.Days)

	case ForecastFailed:
		if e.Seq != s.SubmitSeq {
			return s
		}
		s.Forecast = nil
		s.Alert = entity.AlertForecastNotFound

	case AlertDismissed:
		s.Alert = entity.AlertNone
	}
	return s
}

// IsStale reports whether a completion issued with seq has been superseded.
func IsStale(latest, seq uint64) bool {
	return seq != latest
}

func cloneSuggestions(in []entity.Suggestion) []entity.Suggestion {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.Suggestion, len(in))
	copy(out, in)
	return out
}

func cloneDays(in []entity.ForecastDay) []entity.ForecastDay {
	if len(in) == 0 {
		return nil
	}
	out := make([]entity.ForecastDay, len(in))
	copy(out, in)
	return out
}
