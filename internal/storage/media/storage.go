package media

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

var ErrBucketNotExists = errors.New("bucket does not exist")

// StorageProvider resolves storage keys of uploaded files
type StorageProvider interface {
	// GetFileURL возвращает URL для доступа к файлу
	GetFileURL(fileName string) string
}

// Config describes the S3-compatible bucket profile images live in
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

// MinioStorage serves profile image URLs out of a MinIO bucket
type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinioClient creates a client for cfg. No request is made.
func NewMinioClient(cfg Config) (*minio.Client, error) {
	return minio.New(cfg.Endpoint, &minio.Options{
		Region: cfg.Region,
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
}

// NewMinioStorage wraps client. publicURL overrides the client endpoint in
// generated links, e.g. when a CDN sits in front of the bucket.
func NewMinioStorage(client *minio.Client, bucket, publicURL string) *MinioStorage {
	if publicURL == "" {
		publicURL = client.EndpointURL().String()
	}
	return &MinioStorage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// CheckBucket verifies the bucket is reachable. The service only reads
// from storage, so a missing bucket is reported and never created.
func (s *MinioStorage) CheckBucket(ctx context.Context) error {
	logrus.WithField("bucket", s.bucket).Debug("check bucket existence")
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return ErrBucketNotExists
	}
	return nil
}

// GetFileURL returns the public URL of a stored object
func (s *MinioStorage) GetFileURL(fileName string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, strings.TrimLeft(fileName, "/"))
}
