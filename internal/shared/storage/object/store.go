package object

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Get when no object exists under the key.
var ErrNotFound = errors.New("object not found")

// ObjectStore defines the contract for reading and replacing whole objects by key.
// Put replaces the object atomically: readers see either the old or the new content.
type ObjectStore interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, contentType string, r io.Reader) (int64, error)
}
