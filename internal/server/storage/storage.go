// Package storage keeps uploaded document files in an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectStorage is the external file store behind the document vault.
type ObjectStorage interface {
	// Put stores body under key and returns the object's public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// DocumentKey builds a unique object key of the form
// documents/<userID>/<yyyy>/<mm>/<uuid><ext>.
func DocumentKey(userID, fileName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("documents/%s/%04d/%02d/%s%s", userID, now.Year(), int(now.Month()), uuid.New(), ext)
}

// PublicURL joins base, bucket and key into a path-style object URL.
func PublicURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + key
}
