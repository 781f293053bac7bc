// Package view renders a session's state as the search page.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/icon"
	"weather-app/pkg/msg"
)

// ForecastTimeLayout is the layout of the provider's dt_txt field
const ForecastTimeLayout = "2006-01-02 15:04:05"

//go:embed templates/*.html
var templates embed.FS

// View holds the parsed page templates
type View struct {
	templates *template.Template
	basePath  string
}

// Page is the data the page template is executed with
type Page struct {
	BasePath    string
	Title       string
	Placeholder string
	NextDays    string
	Query       string
	Suggestions SuggestionList
	Weather     *WeatherPanel
	NoWeather   string
	Forecast    []ForecastCard
	NoForecast  string
	Alert       string
}

// SuggestionList is the dropdown fragment
type SuggestionList struct {
	BasePath string
	Seq      uint64
	Items    []SuggestionItem
}

type SuggestionItem struct {
	Index int
	Label string
}

type WeatherPanel struct {
	Heading string
	Icon    IconView
}

type ForecastCard struct {
	Weekday     string
	Temperature string
	Icon        IconView
}

// IconView is a condition label with its glyph, when one is known
type IconView struct {
	Label  string
	Glyph  string
	Style  template.CSS
	Mapped bool
}

func New(basePath string) (*View, error) {
	parsed, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &View{templates: parsed, basePath: basePath}, nil
}

// Render writes the full page for state
func (v *View) Render(w io.Writer, state entity.ViewState) error {
	return v.templates.ExecuteTemplate(w, "page.html", NewPage(v.basePath, state))
}

// RenderSuggestions writes the dropdown fragment answering the keystroke issued with seq
func (v *View) RenderSuggestions(w io.Writer, suggestions []entity.Suggestion, seq uint64) error {
	return v.templates.ExecuteTemplate(w, "suggestions", newSuggestionList(v.basePath, suggestions, seq))
}

// NewPage projects state onto what the page shows
func NewPage(basePath string, state entity.ViewState) Page {
	page := Page{
		BasePath:    basePath,
		Title:       msg.GetMessage("view.title"),
		Placeholder: msg.GetMessage("view.location-placeholder"),
		NextDays:    msg.GetMessage("view.next-days"),
		Query:       state.Query,
		Suggestions: newSuggestionList(basePath, state.Suggestions, state.SuggestionSeq),
		NoWeather:   msg.GetMessage("view.no-weather"),
		NoForecast:  msg.GetMessage("view.no-forecast"),
	}

	if state.Weather != nil {
		page.Weather = &WeatherPanel{
			Heading: fmt.Sprintf("%s : %s", state.Weather.LocationName, FormatTemperature(state.Weather.TemperatureCelsius)),
			Icon:    newIconView(state.Weather.ConditionMain),
		}
	}

	for _, day := range state.Forecast {
		page.Forecast = append(page.Forecast, ForecastCard{
			Weekday:     Weekday(day.Timestamp),
			Temperature: FormatTemperature(day.TemperatureCelsius),
			Icon:        newIconView(day.ConditionMain),
		})
	}

	if state.Alert != entity.AlertNone {
		page.Alert = msg.GetMessage(state.Alert.MessageKey())
	}
	return page
}

// FormatTemperature renders a Celsius value with one decimal
func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("%.1f°C", celsius)
}

// Weekday returns the English weekday of a dt_txt timestamp, or the timestamp itself when it does not parse
func Weekday(timestamp string) string {
	parsed, err := time.Parse(ForecastTimeLayout, timestamp)
	if err != nil {
		return timestamp
	}
	return parsed.Weekday().String()
}

func newSuggestionList(basePath string, suggestions []entity.Suggestion, seq uint64) SuggestionList {
	list := SuggestionList{BasePath: basePath, Seq: seq}
	for i, s := range suggestions {
		list.Items = append(list.Items, SuggestionItem{Index: i, Label: s.Label()})
	}
	return list
}

func newIconView(label string) IconView {
	view := IconView{Label: label}
	if mapped, ok := icon.For(label); ok {
		view.Glyph = mapped.Glyph
		view.Style = template.CSS("color: " + mapped.Color)
		view.Mapped = true
	}
	return view
}
