package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemStorePutRemove(t *testing.T) {
	dir := t.TempDir()
	store := NewFilesystem(dir, "/static/uploads/")
	ctx := context.Background()

	key := "course_syllabuses/123-syllabus.pdf"
	require.NoError(t, store.Put(ctx, key, []byte("content"), "application/pdf"))
	assert.True(t, store.Exists(key))

	data, err := os.ReadFile(filepath.Join(dir, "course_syllabuses", "123-syllabus.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	require.NoError(t, store.Remove(ctx, key))
	assert.False(t, store.Exists(key))
}

func TestFilesystemStoreRemoveMissing(t *testing.T) {
	store := NewFilesystem(t.TempDir(), "/static/uploads")
	assert.Error(t, store.Remove(context.Background(), "nope/missing.pdf"))
}

func TestFilesystemStorePublicURL(t *testing.T) {
	store := NewFilesystem(t.TempDir(), "/static/uploads/")
	assert.Equal(t, "/static/uploads/a/b.pdf", store.PublicURL("a/b.pdf"))
}

func TestFilesystemStoreCancelledContext(t *testing.T) {
	store := NewFilesystem(t.TempDir(), "/static/uploads")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, store.Put(ctx, "k", []byte("x"), "text/plain"))
}
