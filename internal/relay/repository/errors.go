package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("repository: failed to insert")
	ErrFailedToGet    = errors.New("repository: failed to get")
	ErrFailedToCount  = errors.New("repository: failed to count")
	ErrNotFound       = errors.New("repository: record not found")
)
