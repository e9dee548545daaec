// Package query implements the search, filter and sort pipeline that produces
// a view over the recipe collection.
//
// Every stage returns a new slice and leaves its input untouched. Stages run
// in a fixed order: search, then filter, then sort.
package query

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"recipe-backend/internal/domain"
)

// SortKey selects the ordering applied by Sort.
type SortKey string

// Recognized sort keys. Anything else keeps the input order.
const (
	NameAsc    SortKey = "name-asc"
	NameDesc   SortKey = "name-desc"
	TimeAsc    SortKey = "time-asc"
	TimeDesc   SortKey = "time-desc"
	RatingDesc SortKey = "rating-desc"
)

// Annotations supplies per-client favorites and ratings.
type Annotations interface {
	IsFavorite(title string) bool
	Rating(title string) int
}

// Filters holds the filter criteria. Zero values disable each filter.
type Filters struct {
	Category      string
	Difficulty    string
	MaxTime       float64
	FavoritesOnly bool
}

// Query is one request against the pipeline.
type Query struct {
	Search  string
	Filters Filters
	Sort    SortKey
}

// Engine runs queries. The zero value has no annotations (no favorites, all
// ratings 0) and collates titles with the root locale.
type Engine struct {
	Annotations Annotations
	Locale      language.Tag
}

// Run applies search, filter and sort in that order.
func (e Engine) Run(recipes []domain.Recipe, q Query) []domain.Recipe {
	out := Search(recipes, q.Search)
	out = e.Filter(out, q.Filters)
	return e.Sort(out, q.Sort)
}

// Search keeps recipes whose title, any ingredient, or category contains term,
// case-insensitively. A blank term returns recipes unchanged. An absent
// category never matches; the "Uncategorized" default is not searched.
func Search(recipes []domain.Recipe, term string) []domain.Recipe {
	if strings.TrimSpace(term) == "" {
		return recipes
	}
	needle := strings.ToLower(term)
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if matches(r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r domain.Recipe, needle string) bool {
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), needle) {
			return true
		}
	}
	return r.Category != "" && strings.Contains(strings.ToLower(r.Category), needle)
}

// Filter keeps recipes passing every active filter.
func (e Engine) Filter(recipes []domain.Recipe, f Filters) []domain.Recipe {
	category := activeChoice(f.Category)
	difficulty := activeChoice(f.Difficulty)

	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if category != "" && !strings.EqualFold(r.EffectiveCategory(), category) {
			continue
		}
		if difficulty != "" && !strings.EqualFold(r.EffectiveDifficulty(), difficulty) {
			continue
		}
		if f.MaxTime > 0 {
			minutes, ok := r.PrepMinutes()
			if !ok || minutes > f.MaxTime {
				continue
			}
		}
		if f.FavoritesOnly && !e.isFavorite(r.Title) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// activeChoice returns the trimmed choice, or "" when it is blank or "all".
func activeChoice(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

// Sort returns a stably sorted copy. Unknown keys keep the input order.
func (e Engine) Sort(recipes []domain.Recipe, key SortKey) []domain.Recipe {
	out := slices.Clone(recipes)

	switch key {
	case NameAsc, NameDesc:
		col := collate.New(e.Locale)
		sign := 1
		if key == NameDesc {
			sign = -1
		}
		slices.SortStableFunc(out, func(a, b domain.Recipe) int {
			return sign * col.CompareString(a.Title, b.Title)
		})
	case TimeAsc:
		slices.SortStableFunc(out, func(a, b domain.Recipe) int {
			return compareFloat(minutesOf(a), minutesOf(b))
		})
	case TimeDesc:
		slices.SortStableFunc(out, func(a, b domain.Recipe) int {
			return compareFloat(minutesOf(b), minutesOf(a))
		})
	case RatingDesc:
		slices.SortStableFunc(out, func(a, b domain.Recipe) int {
			return e.rating(b.Title) - e.rating(a.Title)
		})
	}
	return out
}

// minutesOf treats an unparseable prep time as 0.
func minutesOf(r domain.Recipe) float64 {
	m, _ := r.PrepMinutes()
	return m
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (e Engine) isFavorite(title string) bool {
	return e.Annotations != nil && e.Annotations.IsFavorite(title)
}

func (e Engine) rating(title string) int {
	if e.Annotations == nil {
		return 0
	}
	return e.Annotations.Rating(title)
}

// Categories returns the distinct non-empty categories, sorted.
func Categories(recipes []domain.Recipe) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range recipes {
		if r.Category == "" {
			continue
		}
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	slices.Sort(out)
	return out
}
