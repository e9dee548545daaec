package recipes

import (
	"strings"

	"recipe-backend/internal/domain"
)

// htmlEscaper replaces markup-significant characters in a single pass, so the
// ampersands it introduces are never escaped again within one call.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// SanitizeString escapes & < > " ' as HTML entities. Re-sanitizing escapes the
// ampersands of existing entities again ("&amp;" becomes "&amp;amp;").
func SanitizeString(s string) string {
	return htmlEscaper.Replace(s)
}

// Sanitize returns a copy of r with every text field escaped. r is not modified.
func Sanitize(r domain.Recipe) domain.Recipe {
	out := domain.Recipe{
		Title:       SanitizeString(r.Title),
		Ingredients: sanitizeAll(r.Ingredients),
		Steps:       sanitizeAll(r.Steps),
		PrepTime:    domain.FlexString(SanitizeString(string(r.PrepTime))),
	}
	if r.Category != "" {
		out.Category = SanitizeString(r.Category)
	}
	if r.Difficulty != "" {
		out.Difficulty = SanitizeString(r.Difficulty)
	}
	if r.Servings != "" {
		out.Servings = domain.FlexString(SanitizeString(string(r.Servings)))
	}
	return out
}

func sanitizeAll(items []string) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = SanitizeString(item)
	}
	return out
}
