// Package prefs holds the client-local favorites and ratings for recipes.
//
// State lives under two independent keys of a KV store: FavoritesKey holds a
// JSON array of titles and RatingsKey a JSON object of title to rating. A new
// store starts empty, every mutation is written through immediately, and
// nothing expires. None of it is sent to the recipe server.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Storage keys, matching the browser client's local storage layout.
const (
	FavoritesKey = "recipeFavorites"
	RatingsKey   = "recipeRatings"
)

// Rating bounds.
const (
	MinRating = 0
	MaxRating = 5
)

// ErrInvalidRating is returned for ratings outside MinRating..MaxRating.
var ErrInvalidRating = errors.New("rating must be between 0 and 5")

// Provider keeps one favorite flag and one rating per recipe title.
type Provider struct {
	mu        sync.RWMutex
	kv        KV
	favorites []string
	ratings   map[string]int
}

// Open loads the provider state from kv. Missing keys start empty.
func Open(kv KV) (*Provider, error) {
	p := &Provider{kv: kv, favorites: []string{}, ratings: map[string]int{}}

	if raw, ok, err := kv.Get(FavoritesKey); err != nil {
		return nil, err
	} else if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &p.favorites); err != nil {
			return nil, fmt.Errorf("decode %s: %w", FavoritesKey, err)
		}
	}

	if raw, ok, err := kv.Get(RatingsKey); err != nil {
		return nil, err
	} else if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &p.ratings); err != nil {
			return nil, fmt.Errorf("decode %s: %w", RatingsKey, err)
		}
	}
	if p.favorites == nil {
		p.favorites = []string{}
	}
	if p.ratings == nil {
		p.ratings = map[string]int{}
	}
	return p, nil
}

// Favorites returns the favorite titles in the order they were added.
func (p *Provider) Favorites() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.favorites)
}

// IsFavorite reports whether title is a favorite.
func (p *Provider) IsFavorite(title string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Contains(p.favorites, title)
}

// ToggleFavorite adds title if absent, removes it otherwise, and returns
// whether it is now a favorite. State is unchanged if persisting fails.
func (p *Provider) ToggleFavorite(title string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := slices.Clone(p.favorites)
	idx := slices.Index(next, title)
	if idx >= 0 {
		next = slices.Delete(next, idx, idx+1)
	} else {
		next = append(next, title)
	}
	if err := p.save(FavoritesKey, next); err != nil {
		return idx >= 0, err
	}
	p.favorites = next
	return idx < 0, nil
}

// SetRating overwrites the rating for title. A rating of 0 clears it.
func (p *Provider) SetRating(title string, value int) error {
	if value < MinRating || value > MaxRating {
		return ErrInvalidRating
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	next := make(map[string]int, len(p.ratings)+1)
	for k, v := range p.ratings {
		next[k] = v
	}
	if value == 0 {
		delete(next, title)
	} else {
		next[title] = value
	}
	if err := p.save(RatingsKey, next); err != nil {
		return err
	}
	p.ratings = next
	return nil
}

// Rating returns the rating for title, or 0 when unset.
func (p *Provider) Rating(title string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ratings[title]
}

// RatingCount is 1 when title has a rating and 0 otherwise. Only one rating
// per title is kept, so this is not a count of raters.
func (p *Provider) RatingCount(title string) int {
	if p.Rating(title) > 0 {
		return 1
	}
	return 0
}

// AverageRating returns the single stored rating as a float.
func (p *Provider) AverageRating(title string) float64 {
	return float64(p.Rating(title))
}

func (p *Provider) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := p.kv.Set(key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
