package minio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return NewInvalidInputError("config is required")
	}
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return NewInvalidInputError("access key and secret key are required")
	}
	return nil
}

func validateBucketName(name string) error {
	if name == "" {
		return NewInvalidInputError("bucket name is required")
	}
	if len(name) < 3 || len(name) > 63 {
		return NewInvalidInputError("bucket name must be between 3 and 63 characters")
	}
	if strings.Contains(name, "..") {
		return NewInvalidInputError("bucket name must not contain consecutive dots")
	}
	return nil
}

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) ConnectWithRetry(ctx context.Context, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if err := m.Connect(ctx); err == nil {
			return nil
		} else {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
	}
	return fmt.Errorf("failed to connect after %d retries: %w", maxRetries, lastErr)
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}
	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// EnsureBucket creates the bucket if it does not already exist.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	if err := validateBucketName(bucketName); err != nil {
		return err
	}
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return handleMinIOError(err, "check_bucket_exists")
	}
	if exists {
		return nil
	}
	err = m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region})
	if err != nil {
		return handleMinIOError(err, "create_bucket")
	}
	return nil
}

func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	if err := validateBucketName(bucketName); err != nil {
		return false, err
	}
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, handleMinIOError(err, "check_bucket_exists")
	}
	return exists, nil
}

// UploadFile uploads an object and returns its stored metadata.
func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if req == nil || req.Reader == nil {
		return nil, NewInvalidInputError("upload request and reader are required")
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return nil, err
	}
	if req.ObjectName == "" {
		return nil, NewInvalidInputError("object name is required")
	}
	if req.Size > MaxFileSizeBytes {
		return nil, NewInvalidInputError("file exceeds maximum allowed size")
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: req.Metadata,
	})
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}

	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ContentType:  contentType,
		ETag:         info.ETag,
		LastModified: time.Now().UTC(),
		Metadata:     req.Metadata,
	}, nil
}
