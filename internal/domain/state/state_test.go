package state

import (
	"testing"

	"weather-app/internal/domain/entity"
)

var london = []entity.Suggestion{
	{Name: "London", Country: "GB"},
	{Name: "London", State: "Ontario", Country: "CA"},
	{Name: "London", State: "Kentucky", Country: "US"},
}

func TestInputChangedBumpsSuggestionSeq(t *testing.T) {
	s := Apply(entity.ViewState{}, InputChanged{Text: "Lon"})
	if s.Query != "Lon" || s.SuggestionSeq != 1 {
		t.Fatalf("unexpected state %+v", s)
	}

	s = Apply(s, SuggestionsLoaded{Seq: 1, Entries: london})
	s = Apply(s, InputChanged{Text: ""})
	if s.Query != "" || s.Suggestions != nil || s.SuggestionSeq != 2 {
		t.Fatalf("empty input should clear suggestions: %+v", s)
	}
}

func TestSuggestionsLoadedDiscardsStaleResponses(t *testing.T) {
	s := Apply(entity.ViewState{}, InputChanged{Text: "L"})
	s = Apply(s, InputChanged{Text: "Lo"})

	// The response to "Lo" arrives first, then the older "L" response.
	s = Apply(s, SuggestionsLoaded{Seq: 2, Entries: london[:1]})
	s = Apply(s, SuggestionsLoaded{Seq: 1, Entries: london})

	if len(s.Suggestions) != 1 {
		t.Fatalf("stale response overwrote state: %+v", s.Suggestions)
	}
}

func TestSuggestionSelected(t *testing.T) {
	s := Apply(entity.ViewState{}, InputChanged{Text: "Lon"})
	s = Apply(s, SuggestionsLoaded{Seq: s.SuggestionSeq, Entries: london})
	seq := s.SuggestionSeq

	s = Apply(s, SuggestionSelected{Index: 1})

	if s.Query != "London, Ontario, CA" {
		t.Fatalf("query = %q", s.Query)
	}
	if s.Suggestions != nil {
		t.Fatalf("suggestions not cleared: %+v", s.Suggestions)
	}

	// A late response for the typed text must not reopen the dropdown.
	s = Apply(s, SuggestionsLoaded{Seq: seq, Entries: london})
	if s.Suggestions != nil {
		t.Fatalf("late response reopened dropdown: %+v", s.Suggestions)
	}
}

func TestSuggestionSelectedOutOfRangeIsNoop(t *testing.T) {
	s := Apply(entity.ViewState{}, InputChanged{Text: "Lon"})
	s = Apply(s, SuggestionsLoaded{Seq: s.SuggestionSeq, Entries: london})

	for _, index := range []int{-1, 3, 10} {
		got := Apply(s, SuggestionSelected{Index: index})
		if got.Query != "Lon" || len(got.Suggestions) != 3 {
			t.Fatalf("index %d changed state: %+v", index, got)
		}
	}
}

func TestSubmittedWithEmptyQueryIsNoop(t *testing.T) {
	before := entity.ViewState{SuggestionSeq: 4, SubmitSeq: 2}
	after := Apply(before, Submitted{})
	if after.SubmitSeq != 2 || after.SuggestionSeq != 4 {
		t.Fatalf("state changed: %+v", after)
	}
}

func TestSubmitLifecycle(t *testing.T) {
	s := Apply(entity.ViewState{}, InputChanged{Text: "Paris"})
	s = Apply(s, SuggestionsLoaded{Seq: s.SuggestionSeq, Entries: london})
	s = Apply(s, Submitted{})

	if s.SubmitSeq != 1 || s.Suggestions != nil {
		t.Fatalf("unexpected state after submit: %+v", s)
	}

	s = Apply(s, WeatherLoaded{Seq: 1, Weather: entity.CurrentWeather{LocationName: "Paris", TemperatureCelsius: 18.3, ConditionMain: "Clouds"}})
	s = Apply(s, ForecastLoaded{Seq: 1, Days: []entity.ForecastDay{{Timestamp: "2024-05-01 12:00:00"}}})

	if s.Weather == nil || s.Weather.LocationName != "Paris" || len(s.Forecast) != 1 {
		t.Fatalf("unexpected state: %+v", s)
	}
	if s.Query != "Paris" {
		t.Fatalf("query not retained: %q", s.Query)
	}
}

func TestWeatherFailedClearsBothPanels(t *testing.T) {
	s := entity.ViewState{
		Query:     "Atlantis",
		SubmitSeq: 1,
		Weather:   &entity.CurrentWeather{LocationName: "Paris"},
		Forecast:  []entity.ForecastDay{{Timestamp: "2024-05-01 12:00:00"}},
	}
	s = Apply(s, Submitted{})
	s = Apply(s, WeatherFailed{Seq: 2, Alert: entity.AlertLocationNotFound})

	if s.Weather != nil || s.Forecast != nil {
		t.Fatalf("panels not cleared: %+v", s)
	}
	if s.Alert != entity.AlertLocationNotFound {
		t.Fatalf("alert = %q", s.Alert)
	}
}

func TestForecastFailedClearsForecastOnly(t *testing.T) {
	s := Apply(entity.ViewState{Query: "Paris", Forecast: []entity.ForecastDay{{}}}, Submitted{})
	s = Apply(s, WeatherLoaded{Seq: 1, Weather: entity.CurrentWeather{LocationName: "Paris"}})
	s = Apply(s, ForecastFailed{Seq: 1})

	if s.Weather == nil || s.Forecast != nil {
		t.Fatalf("unexpected panels: %+v", s)
	}
	if s.Alert != entity.AlertForecastNotFound {
		t.Fatalf("alert = %q", s.Alert)
	}

	s = Apply(s, AlertDismissed{})
	if s.Alert != entity.AlertNone {
		t.Fatalf("alert not dismissed: %q", s.Alert)
	}
}

func TestOverlappingSubmitsKeepLatest(t *testing.T) {
	s := Apply(entity.ViewState{Query: "Paris"}, Submitted{})
	s = Apply(s, InputChanged{Text: "Rome"})
	s = Apply(s, Submitted{})

	s = Apply(s, WeatherLoaded{Seq: 2, Weather: entity.CurrentWeather{LocationName: "Rome"}})
	s = Apply(s, WeatherLoaded{Seq: 1, Weather: entity.CurrentWeather{LocationName: "Paris"}})
	s = Apply(s, ForecastLoaded{Seq: 1, Days: []entity.ForecastDay{{}, {}}})
	s = Apply(s, WeatherFailed{Seq: 1, Alert: entity.AlertNetworkError})

	if s.Weather == nil || s.Weather.LocationName != "Rome" {
		t.Fatalf("stale submit won: %+v", s.Weather)
	}
	if s.Forecast != nil || s.Alert != entity.AlertNone {
		t.Fatalf("stale completions applied: %+v", s)
	}
}

func TestApplyDoesNotAliasInput(t *testing.T) {
	entries := []entity.Suggestion{{Name: "Paris", Country: "FR"}}
	s := Apply(entity.ViewState{}, InputChanged{Text: "Par"})
	s = Apply(s, SuggestionsLoaded{Seq: s.SuggestionSeq, Entries: entries})

	entries[0].Name = "Changed"
	if s.Suggestions[0].Name != "Paris" {
		t.Fatal("state aliases caller slice")
	}
}
