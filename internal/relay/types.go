package relay

import "time"

// ============================================
// UseCase Input/Output Types
// ============================================

// ProcessBatchInput carries one raw arrival notification batch.
type ProcessBatchInput struct {
	BatchID string
	Payload []byte
}

// ListOutcomesInput filters the outcome journal.
type ListOutcomesInput struct {
	BatchID string
	Status  string
	Page    int64
	Limit   int64
}

// RedriveInput names one source object to convert again.
type RedriveInput struct {
	Bucket string
	Key    string
}

// StatisticsOutput summarizes the outcome journal.
type StatisticsOutput struct {
	TotalBatches   int64
	TotalSucceeded int64
	TotalFailed    int64
	TotalSkipped   int64
}

// ============================================
// Domain Models
// ============================================

// ArrivalRecord is one decoded object-arrival entry.
type ArrivalRecord struct {
	Bucket string
	Key    string
}

// TransferTask pairs a source object with its derived destination.
type TransferTask struct {
	Source         ArrivalRecord
	DestinationKey string
}

// TaskOutcome is the result of converting one record.
type TaskOutcome struct {
	SourceBucket   string
	SourceKey      string
	DestinationKey string
	Status         OutcomeStatus
	ErrorKind      ErrorKind
	ErrorMessage   string
	RowCount       int
	Duration       time.Duration
}

// OutcomeStatus classifies a TaskOutcome.
type OutcomeStatus string

const (
	StatusSucceeded OutcomeStatus = "succeeded"
	StatusFailed    OutcomeStatus = "failed"
	StatusSkipped   OutcomeStatus = "skipped"
)

// BatchResult aggregates the outcomes of one notification batch.
// It is always well-formed: a batch of zero records yields zero counts.
type BatchResult struct {
	BatchID   string
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	Outcomes  []TaskOutcome
	Duration  time.Duration
}
