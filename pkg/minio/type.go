package minio

import (
	"io"
	"sync"
	"time"

	"relay-srv/config"

	"github.com/minio/minio-go/v7"
)

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient *minio.Client
	config      *config.MinIOConfig
	mu          sync.RWMutex
	connected   bool
}

// ObjectInfo represents metadata about an object stored in MinIO.
type ObjectInfo struct {
	BucketName   string            `json:"bucket_name"`
	ObjectName   string            `json:"object_name"`
	Size         int64             `json:"size"`
	ContentType  string            `json:"content_type"`
	ETag         string            `json:"etag"`
	LastModified time.Time         `json:"last_modified"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// PutRequest contains the parameters for writing an object.
type PutRequest struct {
	BucketName  string            `json:"bucket_name"`
	ObjectName  string            `json:"object_name"`
	Reader      io.Reader         `json:"-"`
	Size        int64             `json:"size"`
	ContentType string            `json:"content_type"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
