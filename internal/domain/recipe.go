// Package domain defines the recipe entity shared by the server, the query
// engine and the command-line client.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Defaults applied when optional fields are absent.
const (
	DefaultCategory   = "Uncategorized"
	DefaultDifficulty = "medium"
)

// Recipe is a single catalog entry. Title is the identifier.
type Recipe struct {
	Title       string     `json:"title"`
	Ingredients []string   `json:"ingredients"`
	Steps       []string   `json:"steps"`
	PrepTime    FlexString `json:"prepTime"`
	Category    string     `json:"category,omitempty"`
	Difficulty  string     `json:"difficulty,omitempty"`
	Servings    FlexString `json:"servings,omitempty"`
}

// EffectiveCategory returns the category, or DefaultCategory when absent.
func (r Recipe) EffectiveCategory() string {
	if strings.TrimSpace(r.Category) == "" {
		return DefaultCategory
	}
	return r.Category
}

// EffectiveDifficulty returns the difficulty, or DefaultDifficulty when absent.
func (r Recipe) EffectiveDifficulty() string {
	if strings.TrimSpace(r.Difficulty) == "" {
		return DefaultDifficulty
	}
	return r.Difficulty
}

// PrepMinutes parses PrepTime. ok is false when it is not a finite number.
func (r Recipe) PrepMinutes() (minutes float64, ok bool) {
	return ParseNumber(string(r.PrepTime))
}

// TitleKey is the comparison key for title uniqueness.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// ParseNumber parses a decimal number, rejecting NaN and infinities.
func ParseNumber(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatNumber renders v with the fewest digits that round-trip.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FlexString is a string that also accepts a JSON number when decoding.
// Files written by older clients store prepTime and servings either way.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = FlexString(n.String())
	return nil
}
