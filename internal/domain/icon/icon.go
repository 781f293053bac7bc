// Package icon maps provider condition labels to Weather Icons glyphs.
package icon

// Icon is a Weather Icons CSS class with its display colour.
type Icon struct {
	Glyph string
	Color string
}

// "Night" is never produced by the provider's weather[].main field; it stays
// in the table so a night rule can use it without touching the view.
var table = map[string]Icon{
	"Clear":        {Glyph: "wi-day-sunny", Color: "#f39c12"},
	"Clouds":       {Glyph: "wi-cloud", Color: "#95a5a6"},
	"Rain":         {Glyph: "wi-rain", Color: "#3498db"},
	"Thunderstorm": {Glyph: "wi-thunderstorm", Color: "#9b59b6"},
	"Snow":         {Glyph: "wi-snow", Color: "#ecf0f1"},
	"Mist":         {Glyph: "wi-fog", Color: "#7f8c8d"},
	"Haze":         {Glyph: "wi-fog", Color: "#bdc3c7"},
	"Smoke":        {Glyph: "wi-fog", Color: "#95a5a6"},
	"Drizzle":      {Glyph: "wi-day-cloudy", Color: "#3498db"},
	"Night":        {Glyph: "wi-night-clear", Color: "#2c3e50"},
}

var labels = []string{"Clear", "Clouds", "Rain", "Thunderstorm", "Snow", "Mist", "Haze", "Smoke", "Drizzle", "Night"}

// For looks up the icon of a condition label. The match is exact and case-sensitive;
// ok is false for unknown labels and the caller shows the label as text instead.
func For(label string) (Icon, bool) {
	i, ok := table[label]
	return i, ok
}

// Labels returns the known condition labels.
func Labels() []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
