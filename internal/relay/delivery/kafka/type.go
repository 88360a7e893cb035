package kafka

import "time"

// ConversionResultMessage is published per processed batch.
type ConversionResultMessage struct {
	BatchID     string           `json:"batch_id"`
	Total       int              `json:"total"`
	Succeeded   int              `json:"succeeded"`
	Failed      int              `json:"failed"`
	Skipped     int              `json:"skipped"`
	DurationMs  int64            `json:"duration_ms"`
	Outcomes    []OutcomeMessage `json:"outcomes,omitempty"`
	CompletedAt time.Time        `json:"completed_at"`
}

// OutcomeMessage is one per-record outcome inside a result message.
type OutcomeMessage struct {
	SourceBucket   string `json:"source_bucket"`
	SourceKey      string `json:"source_key"`
	DestinationKey string `json:"destination_key,omitempty"`
	Status         string `json:"status"`
	ErrorKind      string `json:"error_kind,omitempty"`
	ErrorMessage   string `json:"error_message,omitempty"`
	RowCount       int    `json:"row_count"`
}
