package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalArchive implements Archiver on the local filesystem
type LocalArchive struct {
	basePath string
}

// NewLocalArchive creates a new local archive rooted at basePath
func NewLocalArchive(basePath string) (*LocalArchive, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	return &LocalArchive{basePath: basePath}, nil
}

// Store writes a snapshot under basePath/key
func (a *LocalArchive) Store(ctx context.Context, key string, data io.Reader) error {
	fullPath := filepath.Join(a.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath) // Clean up on error
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// Load retrieves a snapshot by key
func (a *LocalArchive) Load(ctx context.Context, key string) (io.ReadCloser, error) {
	fullPath := filepath.Join(a.basePath, filepath.FromSlash(key))

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("snapshot not found: %s", key)
		}
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}

	return file, nil
}

// Delete removes a snapshot by key
func (a *LocalArchive) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(a.basePath, filepath.FromSlash(key))

	err := os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}
