package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSStore stores blobs in an Aliyun OSS bucket.
type OSSStore struct {
	bucket     *oss.Bucket
	publicBase string
}

// NewOSS connects to the bucket. publicBase overrides the derived
// https://<bucket>.<endpoint> URL prefix when the bucket sits behind a CDN.
func NewOSS(endpoint, accessKey, secretKey, bucketName, publicBase string) (*OSSStore, error) {
	client, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss bucket %q: %w", bucketName, err)
	}
	if publicBase == "" {
		host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
		publicBase = fmt.Sprintf("https://%s.%s", bucketName, host)
	}
	return &OSSStore{bucket: bucket, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

func (s *OSSStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
	}
	if err := s.bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return fmt.Errorf("oss put %q: %w", key, err)
	}
	return nil
}

func (s *OSSStore) Remove(ctx context.Context, key string) error {
	if err := s.bucket.DeleteObject(key, oss.WithContext(ctx)); err != nil {
		return fmt.Errorf("oss delete %q: %w", key, err)
	}
	return nil
}

func (s *OSSStore) PublicURL(key string) string {
	return s.publicBase + "/" + key
}
