// Package storage keeps uploaded invoice documents in S3-compatible
// object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/WorkshopSystems01/workshop-tracker/internal/config"
)

type DocumentStore struct {
	client *s3.Client
	bucket string
}

// NewDocumentStore builds a store from configuration. Returns nil when
// no credentials are configured; callers treat a nil store as "uploads
// disabled".
func NewDocumentStore(cfg *config.Config) *DocumentStore {
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
		UsePathStyle: true,
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	return &DocumentStore{
		client: s3.New(opts),
		bucket: cfg.S3Bucket,
	}
}

// Put stores a document under a fresh key derived from the original
// file name's extension and returns that key.
func (s *DocumentStore) Put(ctx context.Context, originalName, contentType string, body io.Reader) (string, error) {
	if s == nil {
		return "", errors.New("document storage is not configured")
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	key := fmt.Sprintf("invoices/%s%s", uuid.NewString(), ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put document: %w", err)
	}

	return key, nil
}
