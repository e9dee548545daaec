package recipes

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recipe-backend/internal/domain"
	"recipe-backend/internal/shared/storage/object"
	localstore "recipe-backend/internal/shared/storage/object/local"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return NewStore(localstore.New(dir), "recipes.json"), filepath.Join(dir, "recipes.json")
}

func soup() domain.Recipe {
	return domain.Recipe{
		Title:       "Soup",
		Ingredients: []string{"water", "salt"},
		Steps:       []string{"boil"},
		PrepTime:    "20",
	}
}

func TestStoreLoadMissingFileIsEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	list, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}
}

func TestStoreLoadEmptyFileIsEmpty(t *testing.T) {
	store, path := newTestStore(t)
	for _, content := range []string{"", "  \n", "null"} {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		list, err := store.Load(context.Background())
		if err != nil || len(list) != 0 {
			t.Fatalf("Load(%q) = %v, %v", content, list, err)
		}
	}
}

func TestStoreAppendWritesPrettyJSON(t *testing.T) {
	store, path := newTestStore(t)
	r := soup()
	r.Title = "Mac &amp; Cheese"
	if err := store.Append(context.Background(), r); err != nil {
		t.Fatalf("Append: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := `[
  {
    "title": "Mac &amp; Cheese",
    "ingredients": [
      "water",
      "salt"
    ],
    "steps": [
      "boil"
    ],
    "prepTime": "20"
  }
]
`
	if string(raw) != want {
		t.Fatalf("unexpected file contents:\n%s", raw)
	}
}

func TestStoreAppendPreservesOrderAndExistingEntries(t *testing.T) {
	store, path := newTestStore(t)
	existing := `[{"title":"Cake","ingredients":["flour"],"steps":["bake"],"prepTime":45,"servings":8}]`
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := store.Append(context.Background(), soup()); err != nil {
		t.Fatalf("Append: %v", err)
	}
	list, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(list) != 2 || list[0].Title != "Cake" || list[1].Title != "Soup" {
		t.Fatalf("unexpected order: %+v", list)
	}
	if list[0].PrepTime != "45" || list[0].Servings != "8" {
		t.Fatalf("expected numeric fields to survive, got %+v", list[0])
	}
}

func TestStoreAppendRejectsDuplicateTitles(t *testing.T) {
	store, path := newTestStore(t)
	if err := store.Append(context.Background(), soup()); err != nil {
		t.Fatalf("Append: %v", err)
	}
	before, _ := os.ReadFile(path)

	for _, title := range []string{"Soup", "soup", "  SOUP  "} {
		r := soup()
		r.Title = title
		if err := store.Append(context.Background(), r); !errors.Is(err, ErrDuplicateTitle) {
			t.Fatalf("Append(%q) error = %v, want ErrDuplicateTitle", title, err)
		}
	}

	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Fatalf("expected file unchanged after rejected duplicates")
	}
}

func TestStoreCorruptFileIsPersistenceError(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte(`{"title":`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, ErrPersistence) {
		t.Fatalf("Load error = %v, want ErrPersistence", err)
	}
	if err := store.Append(context.Background(), soup()); !errors.Is(err, ErrPersistence) {
		t.Fatalf("Append error = %v, want ErrPersistence", err)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != `{"title":` {
		t.Fatalf("expected corrupt file left untouched, got %s", raw)
	}
}

type brokenObjects struct{}

func (brokenObjects) Get(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("[]")), nil
}

func (brokenObjects) Put(context.Context, string, string, io.Reader) (int64, error) {
	return 0, errors.New("read-only filesystem")
}

var _ object.ObjectStore = brokenObjects{}

func TestStoreWriteFailureIsPersistenceError(t *testing.T) {
	store := NewStore(brokenObjects{}, "recipes.json")
	if err := store.Append(context.Background(), soup()); !errors.Is(err, ErrPersistence) {
		t.Fatalf("Append error = %v, want ErrPersistence", err)
	}
}
