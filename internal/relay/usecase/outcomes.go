package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"relay-srv/internal/model"
	"relay-srv/internal/relay"
	repo "relay-srv/internal/relay/repository"
	"relay-srv/pkg/paginator"
)

// ListOutcomes - List journaled outcomes with pagination
func (uc *implUseCase) ListOutcomes(ctx context.Context, input relay.ListOutcomesInput) ([]model.RelayOutcome, paginator.Paginator, error) {
	outcomes, pag, err := uc.repo.GetOutcomes(ctx, repo.GetOutcomesOptions{
		BatchID: input.BatchID,
		Status:  input.Status,
		Page:    int(input.Page),
		Limit:   input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "relay.usecase.ListOutcomes: Failed to list outcomes: %v", err)
		return nil, paginator.Paginator{}, err
	}
	return outcomes, pag, nil
}

// DetailOutcome - Get one journaled outcome by ID
func (uc *implUseCase) DetailOutcome(ctx context.Context, id string) (model.RelayOutcome, error) {
	outcome, err := uc.repo.DetailOutcome(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.RelayOutcome{}, relay.ErrOutcomeNotFound
		}
		uc.l.Errorf(ctx, "relay.usecase.DetailOutcome: Failed to get outcome %s: %v", id, err)
		return model.RelayOutcome{}, err
	}
	return outcome, nil
}

// GetStatistics - Aggregate journal counters
func (uc *implUseCase) GetStatistics(ctx context.Context) (relay.StatisticsOutput, error) {
	stats, err := uc.repo.GetStatistics(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "relay.usecase.GetStatistics: Failed to aggregate: %v", err)
		return relay.StatisticsOutput{}, err
	}
	return relay.StatisticsOutput{
		TotalBatches:   stats.TotalBatches,
		TotalSucceeded: stats.TotalSucceeded,
		TotalFailed:    stats.TotalFailed,
		TotalSkipped:   stats.TotalSkipped,
	}, nil
}

// Redrive - Convert one named object outside the notification flow.
// Reuses the same conversion path, so the destination key and overwrite
// behavior match what a redelivered notification would produce. A redrive
// of a nonexistent object is a caller mistake and fails up front instead
// of journaling a failed outcome.
func (uc *implUseCase) Redrive(ctx context.Context, input relay.RedriveInput) (relay.TaskOutcome, error) {
	exists, err := uc.storage.ObjectExists(ctx, input.Bucket, input.Key)
	if err != nil {
		uc.l.Errorf(ctx, "relay.usecase.Redrive: Failed to check %s/%s: %v", input.Bucket, input.Key, err)
		return relay.TaskOutcome{}, err
	}
	if !exists {
		return relay.TaskOutcome{}, relay.ErrSourceNotFound
	}

	task := relay.TransferTask{
		Source:         relay.ArrivalRecord{Bucket: input.Bucket, Key: input.Key},
		DestinationKey: relay.DeriveDestinationKey(input.Key, uc.cfg.SourceExtension, uc.cfg.TargetExtension),
	}

	outcome := uc.convertTask(ctx, task)

	result := aggregate("redrive:"+uuid.NewString(), []relay.TaskOutcome{outcome}, outcome.Duration)
	uc.journalOutcomes(ctx, result)

	return outcome, nil
}
