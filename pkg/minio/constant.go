package minio

import "time"

// HTTP transport tuning for the MinIO client.
const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second
)

// Content types for objects the relay reads and writes.
const (
	ContentTypeCSV     = "text/csv"
	ContentTypeParquet = "application/vnd.apache.parquet"
	ContentTypeBinary  = "application/octet-stream"
)

const maxObjectNameLength = 1024
