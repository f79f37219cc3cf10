package placesrepo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yucatanweather/app/internal/domain/catalog"
	"github.com/yucatanweather/app/internal/domain/places"
)

// ObjectRepository reads the place list from an S3-compatible bucket.
type ObjectRepository struct {
	client *minio.Client
	bucket string
	key    string
	logger *slog.Logger
}

// NewObjectRepository constructs the bucket-backed source.
func NewObjectRepository(endpoint, accessKey, secretKey, bucket, region, key string, logger *slog.Logger) (*ObjectRepository, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("object storage bucket and key are required")
	}
	client, err := minio.New(sanitizeEndpoint(endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       strings.HasPrefix(strings.ToLower(endpoint), "https"),
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object storage client: %w", err)
	}
	return &ObjectRepository{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger.With("component", "placesrepo.object"),
	}, nil
}

// Load implements places.Repository.
func (r *ObjectRepository) Load(ctx context.Context) ([]catalog.Location, error) {
	obj, err := r.client.GetObject(ctx, r.bucket, r.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	info, err := obj.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s/%s: %w", r.bucket, r.key, err)
	}
	r.logger.Debug("loading places object", "bucket", r.bucket, "key", r.key, "etag", info.ETag)
	return decodeReader(obj)
}

// sanitizeEndpoint strips scheme and path; minio.New wants host[:port].
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	return raw
}

var _ places.Repository = (*ObjectRepository)(nil)
