package health

import (
	"context"

	"recipe-backend/internal/domain"
)

// Collection is the read side of the recipe store.
type Collection interface {
	Load(ctx context.Context) ([]domain.Recipe, error)
}

// Service encapsulates health-related checks.
type Service struct {
	Collection Collection
}

// NewService constructs a new health service.
func NewService(c Collection) *Service {
	return &Service{Collection: c}
}

// Status reports whether the collection can be read, and its size when it can.
func (s *Service) Status(ctx context.Context) (map[string]any, bool) {
	if s == nil || s.Collection == nil {
		return map[string]any{"ok": true}, true
	}
	list, err := s.Collection.Load(ctx)
	if err != nil {
		return map[string]any{"ok": false, "storage": "unreadable"}, false
	}
	return map[string]any{"ok": true, "recipes": len(list)}, true
}
