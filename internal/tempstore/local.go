package tempstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrOutsideDir = errors.New("path outside upload directory")

// Local stores uploads as individual files under a single directory.
// It is safe for concurrent use; every upload gets its own UUID-named file.
type Local struct {
	dir string
}

var _ Store = (*Local)(nil)

// NewLocal creates the upload directory if needed and returns a Local store rooted there.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Local{dir: abs}, nil
}

// Dir returns the absolute upload directory.
func (l *Local) Dir() string { return l.dir }

// Put writes r to a fresh file. The original name is kept only as metadata;
// it never influences the on-disk path.
func (l *Local) Put(ctx context.Context, r io.Reader, originalName string) (Object, error) {
	if r == nil {
		return Object{}, fmt.Errorf("reader is nil")
	}
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	path := filepath.Join(l.dir, uuid.NewString())
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return Object{}, fmt.Errorf("create temp file: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return Object{}, fmt.Errorf("write temp file: %w", err)
	}

	return Object{Path: path, Size: n, OriginalName: originalName}, nil
}

// Read loads a stored upload into memory.
func (l *Local) Read(ctx context.Context, path string) ([]byte, error) {
	if err := l.owns(path); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Delete removes a stored upload.
func (l *Local) Delete(_ context.Context, path string) error {
	if err := l.owns(path); err != nil {
		return err
	}
	return os.Remove(path)
}

func (l *Local) owns(path string) error {
	rel, err := filepath.Rel(l.dir, filepath.Clean(path))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return fmt.Errorf("%w: %s", ErrOutsideDir, path)
	}
	return nil
}
