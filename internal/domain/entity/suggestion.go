package entity

import "strings"

// Suggestion is one geocoding match offered while the user is typing.
type Suggestion struct {
	Name    string  `json:"name"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Label formats the suggestion as "name, state, country", leaving out the state when absent.
func (s Suggestion) Label() string {
	parts := make([]string, 0, 3)
	parts = append(parts, s.Name)
	if s.State != "" {
		parts = append(parts, s.State)
	}
	parts = append(parts, s.Country)
	return strings.Join(parts, ", ")
}
