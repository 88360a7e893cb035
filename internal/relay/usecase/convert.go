package usecase

import (
	"context"
	"errors"
	"time"

	"relay-srv/internal/relay"
	"relay-srv/pkg/minio"
	"relay-srv/pkg/tabular"
)

// convertTask - Convert single record: fetch → parse → encode → write
func (uc *implUseCase) convertTask(ctx context.Context, task relay.TransferTask) relay.TaskOutcome {
	startTime := time.Now()

	opCtx, cancel := context.WithTimeout(ctx, time.Duration(uc.cfg.OperationTimeout)*time.Second)
	defer cancel()

	// Step 1: Fetch the source object
	data, err := uc.storage.ReadObject(opCtx, task.Source.Bucket, task.Source.Key)
	if err != nil {
		uc.l.Errorf(ctx, "relay.usecase.convertTask: Failed to read %s/%s: %v", task.Source.Bucket, task.Source.Key, err)
		return uc.failedOutcome(task, classifyStorageError(err, relay.READ_ERROR), err, startTime)
	}

	// Step 2: Parse the tabular payload
	payload, err := tabular.ParseCSV(data)
	if err != nil {
		uc.l.Errorf(ctx, "relay.usecase.convertTask: Failed to parse %s/%s: %v", task.Source.Bucket, task.Source.Key, err)
		return uc.failedOutcome(task, relay.PARSE_ERROR, err, startTime)
	}

	// Step 3: Encode to the target format
	encoded, err := tabular.EncodeParquet(payload)
	if err != nil {
		uc.l.Errorf(ctx, "relay.usecase.convertTask: Failed to encode %s/%s: %v", task.Source.Bucket, task.Source.Key, err)
		return uc.failedOutcome(task, relay.PARSE_ERROR, err, startTime)
	}

	// Step 4: Write the complete object. An existing destination object is
	// replaced, which is what makes redelivered batches safe.
	_, err = minio.PutBytes(opCtx, uc.storage, uc.cfg.DestinationBucket, task.DestinationKey, encoded, minio.ContentTypeParquet)
	if err != nil {
		uc.l.Errorf(ctx, "relay.usecase.convertTask: Failed to write %s/%s: %v", uc.cfg.DestinationBucket, task.DestinationKey, err)
		return uc.failedOutcome(task, classifyStorageError(err, relay.WRITE_ERROR), err, startTime)
	}

	return relay.TaskOutcome{
		SourceBucket:   task.Source.Bucket,
		SourceKey:      task.Source.Key,
		DestinationKey: task.DestinationKey,
		Status:         relay.StatusSucceeded,
		RowCount:       payload.RowCount(),
		Duration:       time.Since(startTime),
	}
}

func (uc *implUseCase) failedOutcome(task relay.TransferTask, kind relay.ErrorKind, err error, startTime time.Time) relay.TaskOutcome {
	return relay.TaskOutcome{
		SourceBucket:   task.Source.Bucket,
		SourceKey:      task.Source.Key,
		DestinationKey: task.DestinationKey,
		Status:         relay.StatusFailed,
		ErrorKind:      kind,
		ErrorMessage:   err.Error(),
		Duration:       time.Since(startTime),
	}
}

// classifyStorageError separates deadline expiry from ordinary storage
// failures, falling back to the phase's own kind.
func classifyStorageError(err error, fallback relay.ErrorKind) relay.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || minio.IsCode(err, minio.ErrCodeTimeout) {
		return relay.TIMEOUT_ERROR
	}
	return fallback
}
