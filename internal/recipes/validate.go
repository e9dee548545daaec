package recipes

import (
	"encoding/json"
	"strings"

	"recipe-backend/internal/domain"
)

var requiredFields = []string{"title", "ingredients", "steps", "prepTime"}

// Validate checks a decoded JSON submission and returns the trimmed recipe.
// The first failing rule wins; uniqueness is the Store's concern.
func Validate(payload map[string]any) (domain.Recipe, error) {
	for _, field := range requiredFields {
		if isBlank(payload[field]) {
			return domain.Recipe{}, ErrMissingFields
		}
	}

	title, ok := payload["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return domain.Recipe{}, ErrInvalidTitle
	}

	ingredients, ok := textList(payload["ingredients"])
	if !ok {
		return domain.Recipe{}, ErrInvalidIngredients
	}

	steps, ok := textList(payload["steps"])
	if !ok {
		return domain.Recipe{}, ErrInvalidSteps
	}

	prepTime, ok := prepTimeValue(payload["prepTime"])
	if !ok {
		return domain.Recipe{}, ErrInvalidPrepTime
	}

	r := domain.Recipe{
		Title:       strings.TrimSpace(title),
		Ingredients: ingredients,
		Steps:       steps,
		PrepTime:    domain.FlexString(prepTime),
	}
	if v, ok := optionalText(payload["category"]); ok {
		r.Category = v
	}
	if v, ok := optionalText(payload["difficulty"]); ok {
		r.Difficulty = v
	}
	if v, ok := optionalText(payload["servings"]); ok {
		r.Servings = domain.FlexString(v)
	}
	return r, nil
}

// isBlank reports absent, null, false, empty-string and zero values.
func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f == 0
	default:
		return false
	}
}

// textList trims every item and drops empty ones. It fails when v is not an
// array, holds a non-string item, or ends up empty.
func textList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func prepTimeValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		raw := strings.TrimSpace(t)
		n, ok := domain.ParseNumber(raw)
		if !ok || n < 0 {
			return "", false
		}
		return raw, true
	case float64:
		if t < 0 {
			return "", false
		}
		return domain.FormatNumber(t), true
	case json.Number:
		n, ok := domain.ParseNumber(t.String())
		if !ok || n < 0 {
			return "", false
		}
		return t.String(), true
	default:
		return "", false
	}
}

func optionalText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case float64:
		return domain.FormatNumber(t), t != 0
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}
