package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"recipe-backend/internal/domain"
	"recipe-backend/internal/shared/metrics"
	"recipe-backend/internal/shared/storage/object"
	"recipe-backend/internal/shared/telemetry"
)

const collectionContentType = "application/json; charset=utf-8"

// Store persists the whole collection as one pretty-printed JSON array under a
// single object key.
//
// Appends are serialized within the process. Two processes sharing the same
// object still race: each reads, appends and rewrites the full array, and the
// last writer wins.
type Store struct {
	mu      sync.Mutex
	objects object.ObjectStore
	key     string
}

// NewStore constructs a Store over objects, keeping the collection at key.
func NewStore(objects object.ObjectStore, key string) *Store {
	return &Store{objects: objects, key: key}
}

// Load reads the persisted collection. A missing object is an empty collection.
func (s *Store) Load(ctx context.Context) ([]domain.Recipe, error) {
	rc, err := s.objects.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return []domain.Recipe{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersistence, s.key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersistence, s.key, err)
	}
	list, err := decodeCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrPersistence, s.key, err)
	}
	metrics.SetCollectionSize(len(list))
	return list, nil
}

// Append adds r to the collection and rewrites it. r must already be validated
// and sanitized. A title clash returns ErrDuplicateTitle without writing.
func (s *Store) Append(ctx context.Context, r domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Load(ctx)
	if err != nil {
		return err
	}

	key := domain.TitleKey(r.Title)
	for _, existing := range list {
		if domain.TitleKey(existing.Title) == key {
			return ErrDuplicateTitle
		}
	}

	list = append(list, r)
	data, err := encodeCollection(list)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersistence, err)
	}
	if _, err := s.objects.Put(ctx, s.key, collectionContentType, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, s.key, err)
	}

	metrics.SetCollectionSize(len(list))
	telemetry.Info("recipes.persisted", map[string]any{
		"key":   s.key,
		"count": len(list),
		"bytes": len(data),
	})
	return nil
}

func decodeCollection(data []byte) ([]domain.Recipe, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []domain.Recipe{}, nil
	}
	var list []domain.Recipe
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.Recipe{}
	}
	return list, nil
}

// encodeCollection renders the array with two-space indentation, leaving
// already-escaped entities such as &amp; readable.
func encodeCollection(list []domain.Recipe) ([]byte, error) {
	if list == nil {
		list = []domain.Recipe{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(list); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
