package model

import "time"

// RelayOutcome is one journaled conversion attempt (relay_outcomes table).
type RelayOutcome struct {
	ID             string
	BatchID        string
	SourceBucket   string
	SourceKey      string
	DestinationKey string
	Status         string // succeeded, failed, skipped
	ErrorKind      *string
	ErrorMessage   *string
	RowCount       int
	DurationMs     int64
	CreatedAt      time.Time
}
