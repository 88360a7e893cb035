package minio

import (
	"strings"

	"relay-srv/config"
)

func validateConfig(cfg *config.MinIOConfig) error {
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

func validateBucketName(bucketName string) error {
	if bucketName == "" {
		return NewInvalidInputError("bucket name is required")
	}
	if len(bucketName) < 3 || len(bucketName) > 63 {
		return NewInvalidInputError("bucket name must be between 3 and 63 characters")
	}
	return nil
}

func validateObjectName(objectName string) error {
	if objectName == "" {
		return NewInvalidInputError("object name is required")
	}
	if len(objectName) > maxObjectNameLength {
		return NewInvalidInputError("object name too long")
	}
	if strings.HasPrefix(objectName, "/") {
		return NewInvalidInputError("object name must not start with /")
	}
	return nil
}

func validatePutRequest(req *PutRequest) error {
	if req == nil {
		return NewInvalidInputError("put request is required")
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	if err := validateObjectName(req.ObjectName); err != nil {
		return err
	}
	if req.Reader == nil {
		return NewInvalidInputError("reader is required")
	}
	return nil
}
