package minio

import "fmt"

// StorageError codes.
const (
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
	ErrCodePermission     = "PERMISSION_DENIED"
	ErrCodeTimeout        = "TIMEOUT"
	ErrCodeConnection     = "CONNECTION_ERROR"
	ErrCodeInvalidInput   = "INVALID_INPUT"
)

// StorageError is the error type returned by the MinIO wrapper. The Code
// lets callers branch on the failure class without minio-go internals.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage %s (%s): %s: %v", e.Code, e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("storage %s (%s): %s", e.Code, e.Operation, e.Message)
}

// Unwrap exposes the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// IsCode reports whether err is a StorageError with the given code.
func IsCode(err error, code string) bool {
	storageErr, ok := err.(*StorageError)
	return ok && storageErr.Code == code
}

// NewObjectNotFoundError creates an object-not-found StorageError.
func NewObjectNotFoundError(objectName string) *StorageError {
	return &StorageError{
		Code:    ErrCodeObjectNotFound,
		Message: fmt.Sprintf("object not found: %s", objectName),
	}
}

// NewConnectionError wraps err as a connection-class StorageError.
func NewConnectionError(err error) *StorageError {
	return &StorageError{
		Code:    ErrCodeConnection,
		Message: "connection error",
		Cause:   err,
	}
}

// NewInvalidInputError creates an invalid-input StorageError.
func NewInvalidInputError(message string) *StorageError {
	return &StorageError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
