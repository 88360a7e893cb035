package repository

// CreateOutcomeOptions - Options for Create operation
type CreateOutcomeOptions struct {
	BatchID        string
	SourceBucket   string
	SourceKey      string
	DestinationKey string
	Status         string
	ErrorKind      *string
	ErrorMessage   *string
	RowCount       int
	DurationMs     int64
}

// GetOutcomesOptions - Options for Get query (with pagination)
type GetOutcomesOptions struct {
	// Filters
	BatchID string // Filter by batch_id
	Status  string // Filter by status (succeeded, failed, skipped)

	// Pagination
	Page  int
	Limit int64
}

// Statistics - Aggregated journal counters
type Statistics struct {
	TotalBatches   int64
	TotalSucceeded int64
	TotalFailed    int64
	TotalSkipped   int64
}
