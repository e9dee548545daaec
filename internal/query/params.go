package query

import (
	"net/url"
	"strconv"
	"strings"

	"recipe-backend/internal/domain"
)

var paramNames = []string{"search", "category", "difficulty", "maxTime", "favoritesOnly", "sort"}

// FromValues builds a Query from URL parameters. ok is false when none of the
// query parameters are present.
func FromValues(v url.Values) (q Query, ok bool) {
	for _, name := range paramNames {
		if _, present := v[name]; present {
			ok = true
			break
		}
	}
	if !ok {
		return Query{}, false
	}
	favoritesOnly, _ := strconv.ParseBool(strings.TrimSpace(v.Get("favoritesOnly")))
	return Query{
		Search: v.Get("search"),
		Filters: Filters{
			Category:      v.Get("category"),
			Difficulty:    v.Get("difficulty"),
			MaxTime:       ParseMaxTime(v.Get("maxTime")),
			FavoritesOnly: favoritesOnly,
		},
		Sort: SortKey(strings.TrimSpace(v.Get("sort"))),
	}, true
}

// ParseMaxTime parses a maximum prep time. Malformed or non-positive input
// returns 0, which disables the filter.
func ParseMaxTime(raw string) float64 {
	v, ok := domain.ParseNumber(raw)
	if !ok || v <= 0 {
		return 0
	}
	return v
}
