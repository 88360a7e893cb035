package relay

import (
	"context"

	"relay-srv/pkg/paginator"

	"relay-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessBatch runs one notification batch through the pipeline and
	// returns the aggregated result. Per-record failures never fail the
	// batch; the error return is reserved for infrastructure faults.
	ProcessBatch(ctx context.Context, input ProcessBatchInput) (BatchResult, error)
	// Redrive converts a single named object outside the notification flow.
	Redrive(ctx context.Context, input RedriveInput) (TaskOutcome, error)
	ListOutcomes(ctx context.Context, input ListOutcomesInput) ([]model.RelayOutcome, paginator.Paginator, error)
	DetailOutcome(ctx context.Context, id string) (model.RelayOutcome, error)
	GetStatistics(ctx context.Context) (StatisticsOutput, error)
}

// Producer publishes batch results for downstream services.
type Producer interface {
	PublishBatchResult(ctx context.Context, result BatchResult) error
}
