package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemStore keeps blobs on local disk, served under a static URL prefix.
// Used for local development and tests.
type FilesystemStore struct {
	baseDir string
	baseURL string
}

func NewFilesystem(baseDir, baseURL string) *FilesystemStore {
	return &FilesystemStore{baseDir: baseDir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *FilesystemStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	abs := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return fmt.Errorf("write blob %q: %w", key, err)
	}
	return nil
}

func (s *FilesystemStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	abs := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("remove blob %q: %w", key, err)
	}
	return nil
}

func (s *FilesystemStore) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// Exists reports whether a blob is present. Handy for verifying compensation.
func (s *FilesystemStore) Exists(key string) bool {
	_, err := os.Stat(filepath.Join(s.baseDir, filepath.FromSlash(key)))
	return err == nil
}
