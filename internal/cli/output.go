package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"recipe-backend/internal/domain"
	"recipe-backend/internal/prefs"
)

// recipeView is a recipe with the local annotations attached.
type recipeView struct {
	domain.Recipe
	Favorite    bool    `json:"favorite"`
	Rating      int     `json:"rating"`
	RatingCount int     `json:"ratingCount"`
	Average     float64 `json:"averageRating"`
}

func annotate(list []domain.Recipe, p *prefs.Provider) []recipeView {
	out := make([]recipeView, 0, len(list))
	for _, r := range list {
		out = append(out, recipeView{
			Recipe:      r,
			Favorite:    p.IsFavorite(r.Title),
			Rating:      p.Rating(r.Title),
			RatingCount: p.RatingCount(r.Title),
			Average:     p.AverageRating(r.Title),
		})
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, views []recipeView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TITLE\tCATEGORY\tDIFFICULTY\tPREP (MIN)\tRATING\tFAV")
	for _, v := range views {
		fav := ""
		if v.Favorite {
			fav = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			v.Title,
			v.EffectiveCategory(),
			v.EffectiveDifficulty(),
			string(v.PrepTime),
			stars(v.Rating),
			fav,
		)
	}
	return tw.Flush()
}

func writeDetail(w io.Writer, v recipeView) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", v.Title)
	fmt.Fprintf(&b, "Category:   %s\n", v.EffectiveCategory())
	fmt.Fprintf(&b, "Difficulty: %s\n", v.EffectiveDifficulty())
	fmt.Fprintf(&b, "Prep time:  %s min\n", string(v.PrepTime))
	if v.Servings != "" {
		fmt.Fprintf(&b, "Servings:   %s\n", string(v.Servings))
	}
	fmt.Fprintf(&b, "Rating:     %s (%d)\n", stars(v.Rating), v.RatingCount)
	if v.Favorite {
		b.WriteString("Favorite:   yes\n")
	}
	b.WriteString("\nIngredients:\n")
	for _, ing := range v.Ingredients {
		fmt.Fprintf(&b, "  - %s\n", ing)
	}
	b.WriteString("\nSteps:\n")
	for i, step := range v.Steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func stars(n int) string {
	if n <= 0 {
		return "-"
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", prefs.MaxRating-n)
}
