// Package tempstore holds uploaded files on local disk for the lifetime of a single request.
package tempstore

import (
	"context"
	"io"
)

// Object describes an upload persisted to temp storage.
type Object struct {
	Path         string
	Size         int64
	OriginalName string
}

// Store is request-scoped temporary storage for uploads.
// Every Put must be paired with exactly one Delete by the caller.
type Store interface {
	// Put streams r to a new uniquely named file and returns where it landed.
	Put(ctx context.Context, r io.Reader, originalName string) (Object, error)
	// Read returns the full content of a stored upload.
	Read(ctx context.Context, path string) ([]byte, error)
	// Delete removes a stored upload.
	Delete(ctx context.Context, path string) error
}
