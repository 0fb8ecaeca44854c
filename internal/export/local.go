package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes documents beneath a root directory and returns
// the absolute path as the locator. It backs the sample CLI and
// local development.
type LocalStore struct {
	Root string
}

// NewLocalStore creates the root directory if needed.
func NewLocalStore(root string) (*LocalStore, error) {
	if root == "" {
		return nil, fmt.Errorf("local store root required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create store root: %w", err)
	}
	return &LocalStore{Root: root}, nil
}

// Put writes the document under the root. Metadata and content type
// are accepted for interface parity but not persisted locally.
func (s *LocalStore) Put(ctx context.Context, filename string, data []byte, contentType string, meta Metadata) (string, error) {
	if s == nil || s.Root == "" {
		return "", fmt.Errorf("local store not initialized")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(s.Root, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
