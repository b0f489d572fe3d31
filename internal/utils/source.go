package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const s3Scheme = "s3://"

// ObjectOptions configures access to an S3 compatible store for OpenSource.
type ObjectOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Secure    bool
}

// OpenSource opens either a local file or, for paths like s3://bucket/some/key.csv,
// an object from an S3 compatible store (minio, aws etc).
func OpenSource(ctx context.Context, location string, opts *ObjectOptions) (io.ReadCloser, error) {
	if !strings.HasPrefix(location, s3Scheme) {
		return os.Open(location)
	}

	bucket, key, err := splitObjectPath(location)
	if err != nil {
		return nil, err
	}
	if opts == nil || opts.Endpoint == "" {
		return nil, fmt.Errorf("no object store endpoint configured for %s", location)
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", location, err)
	}
	// GetObject is lazy; Stat forces the request so missing objects fail here
	_, err = obj.Stat()
	if err != nil {
		obj.Close()
		return nil, fmt.Errorf("stat object %s: %w", location, err)
	}
	return obj, nil
}

// SourceExt returns the lower cased file extension (without the dot) of a location.
func SourceExt(location string) string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(location)), ".")
}

// splitObjectPath splits s3://bucket/key into bucket & key
func splitObjectPath(location string) (string, string, error) {
	trimmed := strings.TrimPrefix(location, s3Scheme)
	bucket, key, found := strings.Cut(trimmed, "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("expected %sbucket/key, got %s", s3Scheme, location)
	}
	return bucket, key, nil
}
