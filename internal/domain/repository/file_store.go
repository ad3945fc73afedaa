package repository

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by Get when no object exists under the
// key, e.g. a metadata row whose blob was removed out of band.
var ErrObjectNotFound = errors.New("object not found")

// FileStore is the opaque blob interface backing request attachments. The
// production implementation lives in internal/infrastructure/objectstore.
type FileStore interface {
	Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	// Get returns ErrObjectNotFound when the key has no stored object.
	Get(ctx context.Context, objectKey string) (io.ReadCloser, error)
}
