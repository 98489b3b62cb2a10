package storage

import "context"

// ObjectStore is the blob backend behind syllabus uploads. Keys are
// slash-separated paths; PublicURL must be derivable from the key alone so
// compensation and deletion never need to consult the store.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}
