package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Buckets for submission photos.
const (
	BucketLandmarkPhotos = "landmark-photos"
	BucketIncidentPhotos = "incident-photos"
)

// ObjectStore persists uploaded media and returns a publicly resolvable URL.
// Upload failures are never fatal to the submission that carries the media.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key string, r io.Reader) (string, error)
}

// DiskStore is an ObjectStore backed by the local filesystem. Objects are
// served back under {publicBaseURL}/media/{bucket}/{key}.
type DiskStore struct {
	baseDir       string
	publicBaseURL string
}

// NewDiskStore creates a disk-backed object store rooted at baseDir.
func NewDiskStore(baseDir, publicBaseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &DiskStore{
		baseDir:       baseDir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Put writes the object and returns its public URL.
func (s *DiskStore) Put(ctx context.Context, bucket, key string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(s.baseDir, bucket, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create object: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}

	return fmt.Sprintf("%s/media/%s/%s", s.publicBaseURL, bucket, key), nil
}
