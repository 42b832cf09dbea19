package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"stockyard/internal/common"
	"stockyard/internal/repositories"
)

// ObjectStore is the slice of object storage the attachment flow needs.
type ObjectStore interface {
	Put(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, objectName string) error
	EnsureBucket(ctx context.Context) error
}

type minioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (ObjectStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioStore{client: client, bucket: bucket}, nil
}

func (m *minioStore) Put(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (m *minioStore) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (m *minioStore) Remove(ctx context.Context, objectName string) error {
	return m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
}

func (m *minioStore) EnsureBucket(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// AttachmentService stores item documents (spec sheets, photos, safety
// data) in object storage, keyed under the owning tenant and item.
type AttachmentService interface {
	Upload(ctx context.Context, tenantID, itemID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (string, error)
	DownloadURL(ctx context.Context, tenantID, itemID uuid.UUID, filename string) (string, error)
	Delete(ctx context.Context, tenantID, itemID uuid.UUID, filename string) error
}

const attachmentURLExpiry = 15 * time.Minute

type attachmentService struct {
	store ObjectStore
	items repositories.ItemRepository
}

func NewAttachmentService(store ObjectStore, items repositories.ItemRepository) AttachmentService {
	return &attachmentService{store: store, items: items}
}

func attachmentKey(tenantID, itemID uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", tenantID, itemID, path.Base(filename))
}

func (s *attachmentService) Upload(ctx context.Context, tenantID, itemID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (string, error) {
	if err := common.RequireString(filename, "filename"); err != nil {
		return "", err
	}
	if _, err := s.items.GetByID(ctx, tenantID, itemID); err != nil {
		return "", common.TranslateDBError(err, "item")
	}

	key := attachmentKey(tenantID, itemID, filename)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.store.Put(ctx, key, contentType, reader, size); err != nil {
		return "", err
	}
	return key, nil
}

func (s *attachmentService) DownloadURL(ctx context.Context, tenantID, itemID uuid.UUID, filename string) (string, error) {
	if _, err := s.items.GetByID(ctx, tenantID, itemID); err != nil {
		return "", common.TranslateDBError(err, "item")
	}
	return s.store.PresignedURL(ctx, attachmentKey(tenantID, itemID, filename), attachmentURLExpiry)
}

func (s *attachmentService) Delete(ctx context.Context, tenantID, itemID uuid.UUID, filename string) error {
	if _, err := s.items.GetByID(ctx, tenantID, itemID); err != nil {
		return common.TranslateDBError(err, "item")
	}
	return s.store.Remove(ctx, attachmentKey(tenantID, itemID, filename))
}
