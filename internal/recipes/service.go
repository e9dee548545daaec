package recipes

import (
	"context"
	"errors"

	"recipe-backend/internal/domain"
	"recipe-backend/internal/query"
	"recipe-backend/internal/shared/metrics"
)

// Service contains business logic for recipes.
type Service struct {
	Store *Store
}

// NewService constructs a Service.
func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// Create validates, sanitizes and appends a submission. A rejected submission
// leaves the collection untouched.
func (s *Service) Create(ctx context.Context, payload map[string]any) (domain.Recipe, error) {
	r, err := Validate(payload)
	if err != nil {
		metrics.IncRecipeRejected(ErrorCode(err))
		return domain.Recipe{}, err
	}
	r = Sanitize(r)

	if err := s.Store.Append(ctx, r); err != nil {
		metrics.IncRecipeRejected(ErrorCode(err))
		return domain.Recipe{}, err
	}
	metrics.IncRecipeCreated()
	return r, nil
}

// List returns the full collection in stored order.
func (s *Service) List(ctx context.Context) ([]domain.Recipe, error) {
	return s.Store.Load(ctx)
}

// Query runs the search, filter and sort pipeline over the collection. The
// server holds no per-client annotations: favoritesOnly is ignored and every
// rating is 0.
func (s *Service) Query(ctx context.Context, q query.Query) ([]domain.Recipe, error) {
	list, err := s.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	q.Filters.FavoritesOnly = false
	return query.Engine{}.Run(list, q), nil
}

// Categories returns the distinct categories present in the collection.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	list, err := s.Store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return query.Categories(list), nil
}

// ErrorCode returns the machine-readable code for err.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, ErrInvalidTitle):
		return "invalid_title"
	case errors.Is(err, ErrInvalidIngredients):
		return "invalid_ingredients"
	case errors.Is(err, ErrInvalidSteps):
		return "invalid_steps"
	case errors.Is(err, ErrInvalidPrepTime):
		return "invalid_prep_time"
	case errors.Is(err, ErrDuplicateTitle):
		return "duplicate_title"
	case errors.Is(err, ErrPersistence):
		return "persistence_failure"
	default:
		return "internal"
	}
}
