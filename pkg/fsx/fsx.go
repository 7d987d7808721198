package fsx

import (
	"context"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// FileSystem is the storage port for uploaded documents. Implementations
// must be safe for concurrent use.
type FileSystem interface {
	// Upload stores the file under the given key and returns its URL
	Upload(ctx context.Context, key string, data []byte, contentType string) (kernel.BucketURL, error)

	// Download retrieves the file stored under the given key
	Download(ctx context.Context, key string) ([]byte, error)

	// Delete removes the file stored under the given key
	Delete(ctx context.Context, key string) error

	// Exists checks whether a file is stored under the given key
	Exists(ctx context.Context, key string) (bool, error)
}
