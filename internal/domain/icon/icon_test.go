package icon

import "testing"

func TestForKnownLabels(t *testing.T) {
	want := map[string]Icon{
		"Clear":        {"wi-day-sunny", "#f39c12"},
		"Clouds":       {"wi-cloud", "#95a5a6"},
		"Rain":         {"wi-rain", "#3498db"},
		"Thunderstorm": {"wi-thunderstorm", "#9b59b6"},
		"Snow":         {"wi-snow", "#ecf0f1"},
		"Mist":         {"wi-fog", "#7f8c8d"},
		"Haze":         {"wi-fog", "#bdc3c7"},
		"Smoke":        {"wi-fog", "#95a5a6"},
		"Drizzle":      {"wi-day-cloudy", "#3498db"},
		"Night":        {"wi-night-clear", "#2c3e50"},
	}

	if len(Labels()) != len(want) {
		t.Fatalf("labels = %v", Labels())
	}
	for _, label := range Labels() {
		got, ok := For(label)
		if !ok {
			t.Fatalf("%s not mapped", label)
		}
		if got != want[label] {
			t.Fatalf("%s = %+v, want %+v", label, got, want[label])
		}
	}
}

func TestForUnknownLabelsFallBack(t *testing.T) {
	for _, label := range []string{"", "Tornado", "Squall", "Dust", "clear", "CLOUDS", " Rain"} {
		if got, ok := For(label); ok {
			t.Fatalf("%q unexpectedly mapped to %+v", label, got)
		}
	}
}

func TestLabelsReturnsCopy(t *testing.T) {
	Labels()[0] = "Changed"
	if Labels()[0] != "Clear" {
		t.Fatal("Labels exposed internal slice")
	}
}
