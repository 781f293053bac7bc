// Package forecast turns the provider's 3-hour forecast list into a daily outlook.
package forecast

import (
	"strings"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model/external"
)

const (
	// MiddayMarker is the dt_txt fragment of a slot at local noon.
	MiddayMarker = "12:00:00"
	// Days is the length of the outlook.
	Days = 3
)

// Reduce keeps the midday entries of raw, in order, and returns at most the first Days of them.
// Fewer midday entries than Days is not an error; the result is simply shorter.
func Reduce(raw []external.ForecastEntry) []entity.ForecastDay {
	days := make([]entity.ForecastDay, 0, Days)
	for _, entry := range raw {
		if len(days) == Days {
			break
		}
		if !strings.Contains(entry.DtTxt, MiddayMarker) {
			continue
		}
		days = append(days, entity.ForecastDay{
			Timestamp:          entry.DtTxt,
			TemperatureCelsius: entry.Temperature(),
			ConditionMain:      entry.Condition(),
		})
	}
	return days
}
