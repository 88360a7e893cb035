package minio

import (
	"context"
	"io"
	"net/http"

	"relay-srv/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO is the composite interface embedding all sub-interfaces.
type MinIO interface {
	Connection
	ObjectReader
	ObjectWriter
	ObjectManager
}

// Connection defines MinIO connection operations.
type Connection interface {
	Connect(ctx context.Context) error
	ConnectWithRetry(ctx context.Context, maxRetries int) error
	HealthCheck(ctx context.Context) error
	Close() error
}

// ObjectReader defines methods for reading objects.
type ObjectReader interface {
	// GetObject returns a reader over the full object. The caller owns the
	// reader and must close it.
	GetObject(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)
	// ReadObject fetches the full object into memory.
	ReadObject(ctx context.Context, bucketName, objectName string) ([]byte, error)
}

// ObjectWriter defines methods for writing objects. Writes fully replace
// any existing object at the same key.
type ObjectWriter interface {
	PutObject(ctx context.Context, req *PutRequest) (*ObjectInfo, error)
}

// ObjectManager defines object metadata and existence operations.
type ObjectManager interface {
	StatObject(ctx context.Context, bucketName, objectName string) (*ObjectInfo, error)
	ObjectExists(ctx context.Context, bucketName, objectName string) (bool, error)
}

// NewMinIO creates a new MinIO client. Returns the MinIO interface.
func NewMinIO(cfg *config.MinIOConfig) (MinIO, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
	}, nil
}
