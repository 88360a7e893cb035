package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"relay-srv/internal/relay"
	repo "relay-srv/internal/relay/repository"
)

// ProcessBatch - Convert a batch of arrival notifications
func (uc *implUseCase) ProcessBatch(ctx context.Context, input relay.ProcessBatchInput) (relay.BatchResult, error) {
	startTime := time.Now()

	// Step 1: Decode the notification envelope
	entries, err := uc.decodeBatch(input.Payload)
	if err != nil {
		uc.l.Errorf(ctx, "relay.usecase.ProcessBatch: Failed to decode batch %s: %v", input.BatchID, err)
		// An unreadable envelope still yields a well-formed result.
		entries = []batchEntry{{outcome: &relay.TaskOutcome{
			Status:       relay.StatusFailed,
			ErrorKind:    relay.DECODE_ERROR,
			ErrorMessage: err.Error(),
		}}}
	}

	// Step 2: Convert records in parallel, outcomes keep input order
	outcomes := uc.processEntries(ctx, entries)

	// Step 3: Aggregate
	result := aggregate(input.BatchID, outcomes, time.Since(startTime))

	// Step 4: Journal outcomes and publish the result (best effort - the
	// batch result stands even when these side channels fail)
	uc.journalOutcomes(ctx, result)
	uc.publishResult(ctx, result)

	uc.l.Infof(ctx, "relay.usecase.ProcessBatch: Batch %s done: total=%d succeeded=%d failed=%d skipped=%d",
		result.BatchID, result.Total, result.Succeeded, result.Failed, result.Skipped)

	return result, nil
}

// processEntries runs unsettled entries through conversion with bounded
// parallelism. Each outcome lands at its entry's position.
func (uc *implUseCase) processEntries(ctx context.Context, entries []batchEntry) []relay.TaskOutcome {
	outcomes := make([]relay.TaskOutcome, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency())

	for i := range entries {
		if entries[i].outcome != nil {
			outcomes[i] = *entries[i].outcome
			continue
		}

		idx := i
		record := *entries[i].record
		g.Go(func() error {
			task := relay.TransferTask{
				Source:         record,
				DestinationKey: relay.DeriveDestinationKey(record.Key, uc.cfg.SourceExtension, uc.cfg.TargetExtension),
			}
			outcomes[idx] = uc.convertTask(gctx, task)
			return nil
		})
	}

	_ = g.Wait()
	return outcomes
}

func (uc *implUseCase) concurrency() int {
	if uc.cfg.Concurrency > 0 {
		return uc.cfg.Concurrency
	}
	return 4
}

// aggregate folds per-record outcomes into a batch result.
func aggregate(batchID string, outcomes []relay.TaskOutcome, duration time.Duration) relay.BatchResult {
	result := relay.BatchResult{
		BatchID:  batchID,
		Total:    len(outcomes),
		Outcomes: outcomes,
		Duration: duration,
	}
	for _, o := range outcomes {
		switch o.Status {
		case relay.StatusSucceeded:
			result.Succeeded++
		case relay.StatusFailed:
			result.Failed++
		case relay.StatusSkipped:
			result.Skipped++
		}
	}
	return result
}

// journalOutcomes persists the batch outcomes to the journal.
func (uc *implUseCase) journalOutcomes(ctx context.Context, result relay.BatchResult) {
	if uc.repo == nil || len(result.Outcomes) == 0 {
		return
	}

	opts := make([]repo.CreateOutcomeOptions, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		opt := repo.CreateOutcomeOptions{
			BatchID:        result.BatchID,
			SourceBucket:   o.SourceBucket,
			SourceKey:      o.SourceKey,
			DestinationKey: o.DestinationKey,
			Status:         string(o.Status),
			RowCount:       o.RowCount,
			DurationMs:     o.Duration.Milliseconds(),
		}
		if o.ErrorKind != "" {
			kind := string(o.ErrorKind)
			opt.ErrorKind = &kind
		}
		if o.ErrorMessage != "" {
			msg := o.ErrorMessage
			opt.ErrorMessage = &msg
		}
		opts = append(opts, opt)
	}

	if err := uc.repo.CreateOutcomes(ctx, opts); err != nil {
		uc.l.Warnf(ctx, "relay.usecase.journalOutcomes: Failed to journal batch %s: %v", result.BatchID, err)
	}
}

// publishResult publishes the batch result for downstream services.
func (uc *implUseCase) publishResult(ctx context.Context, result relay.BatchResult) {
	if uc.producer == nil {
		return
	}
	if err := uc.producer.PublishBatchResult(ctx, result); err != nil {
		uc.l.Warnf(ctx, "relay.usecase.publishResult: Failed to publish result for batch %s: %v", result.BatchID, err)
	}
}
