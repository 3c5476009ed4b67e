package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/avira1987/remix-of-dxb-dubi/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore abstracts the S3-compatible object storage used for product images
type ObjectStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	PublicURL(key string) string
}

// MinioStore implements ObjectStore on top of a MinIO/S3 bucket
type MinioStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

var instance ObjectStore

// Connect creates an object storage client using centralized configuration
func Connect() (*MinioStore, error) {
	logger := config.GetLogger()
	cfg := config.GetConfig().Storage

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check storage bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create storage bucket %q: %w", cfg.Bucket, err)
		}
		logger.Info(fmt.Sprintf("Created storage bucket %q", cfg.Bucket))
	}

	logger.Info("Connected to object storage successfully")

	return &MinioStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Initialize sets up the global object storage instance
func Initialize() error {
	store, err := Connect()
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	instance = store
	return nil
}

// GetInstance returns the global object storage instance
func GetInstance() ObjectStore {
	if instance == nil {
		log.Fatal("Object storage instance is not initialized. Call Initialize() first.")
	}
	return instance
}

// Upload stores an object under the given key
func (s *MinioStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %q: %w", key, err)
	}
	return nil
}

// Remove deletes an object by key
func (s *MinioStore) Remove(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %q: %w", key, err)
	}
	return nil
}

// PublicURL returns the publicly reachable URL for an object key
func (s *MinioStore) PublicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + s.bucket + "/" + key
	}

	scheme := "http"
	if s.client.EndpointURL().Scheme == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, key)
}
