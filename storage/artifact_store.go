package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/moneygate/tool-service/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ArtifactStore persists generated file bytes and hands back a retrievable
// URL. Paths are namespaced by owner and tool id so artifacts never collide.
type ArtifactStore interface {
	Persist(ctx context.Context, ownerID, toolID string, data []byte, ext string) (storagePath, downloadURL string, err error)
	// Delete is idempotent: removing a path that is already gone succeeds.
	Delete(ctx context.Context, storagePath string) error
}

type MinIOStore struct {
	client    *minio.Client
	bucket    string
	urlExpiry time.Duration
}

func NewMinIOStore(cfg config.MinIOConfig) (*MinIOStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOStore{
		client:    client,
		bucket:    cfg.BucketName,
		urlExpiry: time.Duration(cfg.URLExpiryHours) * time.Hour,
	}, nil
}

func (s *MinIOStore) Persist(ctx context.Context, ownerID, toolID string, data []byte, ext string) (string, string, error) {
	objectName := fmt.Sprintf("users/%s/tools/%s.%s", ownerID, toolID, ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentTypeFor(ext),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	// An artifact nobody can fetch is useless, so a presign failure fails
	// the whole persist even though the object is already stored.
	url, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, s.urlExpiry, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate presigned URL for %s: %w", objectName, err)
	}

	return objectName, url.String(), nil
}

func (s *MinIOStore) Delete(ctx context.Context, storagePath string) error {
	// RemoveObject on a missing key is a success in S3 semantics, which
	// gives us idempotency for free.
	err := s.client.RemoveObject(ctx, s.bucket, storagePath, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", storagePath, err)
	}
	return nil
}

func contentTypeFor(ext string) string {
	switch ext {
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
