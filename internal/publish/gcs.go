package publish

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSBucket uploads objects to a Cloud Storage bucket.
type GCSBucket struct {
	client *storage.Client
	bucket string
}

// NewGCSBucket connects with application default credentials. A non-empty endpoint
// targets an emulator without authentication.
func NewGCSBucket(ctx context.Context, bucket, endpoint string) (*GCSBucket, error) {
	if bucket == "" {
		return nil, fmt.Errorf("publish: bucket name is required")
	}
	var opts []option.ClientOption
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint), option.WithoutAuthentication())
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("publish: storage client: %w", err)
	}
	return &GCSBucket{client: client, bucket: bucket}, nil
}

func (b *GCSBucket) Upload(ctx context.Context, obj Object, r io.Reader) error {
	w := b.client.Bucket(b.bucket).Object(obj.Name).NewWriter(ctx)
	w.ContentType = obj.ContentType
	w.CacheControl = obj.CacheControl
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// Close releases the underlying client.
func (b *GCSBucket) Close() error {
	return b.client.Close()
}
