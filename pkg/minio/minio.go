package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

// --- implMinIO: connection ---

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

// --- implMinIO: read ---

func (m *implMinIO) GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
	if err := validateBucketName(bucketName); err != nil {
		return nil, err
	}
	if err := validateObjectName(objectName); err != nil {
		return nil, err
	}
	// StatObject first: minio-go defers the existence check on GetObject
	// until the first Read, which would blur read errors into parse errors.
	if _, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{}); err != nil {
		return nil, handleMinIOError(err, "get_object")
	}
	object, err := m.minioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "get_object")
	}
	return object, nil
}

func (m *implMinIO) ReadObject(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	reader, err := m.GetObject(ctx, bucketName, objectName)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, handleMinIOError(err, "read_object")
	}
	return data, nil
}

// --- implMinIO: write ---

func (m *implMinIO) PutObject(ctx context.Context, req *PutRequest) (*ObjectInfo, error) {
	if err := validatePutRequest(req); err != nil {
		return nil, err
	}
	opts := minio.PutObjectOptions{ContentType: req.ContentType}
	if req.Metadata != nil {
		opts.UserMetadata = req.Metadata
	}
	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, handleMinIOError(err, "put_object")
	}
	return &ObjectInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
		Metadata:     req.Metadata,
	}, nil
}

// PutBytes writes an in-memory payload as one complete object.
func PutBytes(ctx context.Context, m MinIO, bucketName, objectName string, data []byte, contentType string) (*ObjectInfo, error) {
	return m.PutObject(ctx, &PutRequest{
		BucketName:  bucketName,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(data),
		Size:        int64(len(data)),
		ContentType: contentType,
	})
}

// --- implMinIO: stat / exists ---

func (m *implMinIO) StatObject(ctx context.Context, bucketName, objectName string) (*ObjectInfo, error) {
	if err := validateBucketName(bucketName); err != nil {
		return nil, err
	}
	if err := validateObjectName(objectName); err != nil {
		return nil, err
	}
	objInfo, err := m.minioClient.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "stat_object")
	}
	return &ObjectInfo{
		BucketName:   bucketName,
		ObjectName:   objectName,
		Size:         objInfo.Size,
		ContentType:  objInfo.ContentType,
		ETag:         objInfo.ETag,
		LastModified: objInfo.LastModified,
		Metadata:     objInfo.UserMetadata,
	}, nil
}

func (m *implMinIO) ObjectExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	_, err := m.StatObject(ctx, bucketName, objectName)
	if err != nil {
		if IsCode(err, ErrCodeObjectNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// --- helpers ---

func handleMinIOError(err error, operation string) *StorageError {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &StorageError{Code: ErrCodeTimeout, Message: "operation timed out", Operation: operation, Cause: err}
	}
	if minioErr, ok := err.(minio.ErrorResponse); ok {
		switch minioErr.Code {
		case "NoSuchBucket":
			return &StorageError{Code: ErrCodeBucketNotFound, Message: "bucket not found", Operation: operation, Cause: err}
		case "NoSuchKey":
			return &StorageError{Code: ErrCodeObjectNotFound, Message: "object not found", Operation: operation, Cause: err}
		case "AccessDenied":
			return &StorageError{Code: ErrCodePermission, Message: "access denied", Operation: operation, Cause: err}
		case "RequestTimeout":
			return &StorageError{Code: ErrCodeTimeout, Message: "request timed out", Operation: operation, Cause: err}
		default:
			return &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("MinIO operation failed: %s", minioErr.Code), Operation: operation, Cause: err}
		}
	}
	storageErr := NewConnectionError(err)
	storageErr.Operation = operation
	return storageErr
}
