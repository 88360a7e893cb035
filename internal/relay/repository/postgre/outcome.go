package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"relay-srv/internal/model"
	repo "relay-srv/internal/relay/repository"
	"relay-srv/pkg/paginator"
)

// CreateOutcome - Insert single outcome record (returns created entity)
func (r *implRepository) CreateOutcome(ctx context.Context, opt repo.CreateOutcomeOptions) (model.RelayOutcome, error) {
	outcome := model.RelayOutcome{
		ID:             uuid.NewString(),
		BatchID:        opt.BatchID,
		SourceBucket:   opt.SourceBucket,
		SourceKey:      opt.SourceKey,
		DestinationKey: opt.DestinationKey,
		Status:         opt.Status,
		ErrorKind:      opt.ErrorKind,
		ErrorMessage:   opt.ErrorMessage,
		RowCount:       opt.RowCount,
		DurationMs:     opt.DurationMs,
		CreatedAt:      time.Now(),
	}

	const query = `
		INSERT INTO relay_outcomes
			(id, batch_id, source_bucket, source_key, destination_key,
			 status, error_kind, error_message, row_count, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		outcome.ID, outcome.BatchID, outcome.SourceBucket, outcome.SourceKey,
		outcome.DestinationKey, outcome.Status, outcome.ErrorKind,
		outcome.ErrorMessage, outcome.RowCount, outcome.DurationMs, outcome.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "relay.repository.postgre.CreateOutcome: Failed to insert outcome: %v", err)
		return model.RelayOutcome{}, repo.ErrFailedToInsert
	}

	return outcome, nil
}

// CreateOutcomes - Insert a batch of outcome records in one transaction
func (r *implRepository) CreateOutcomes(ctx context.Context, opts []repo.CreateOutcomeOptions) error {
	if len(opts) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "relay.repository.postgre.CreateOutcomes: Failed to begin tx: %v", err)
		return repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO relay_outcomes
			(id, batch_id, source_bucket, source_key, destination_key,
			 status, error_kind, error_message, row_count, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	now := time.Now()
	for _, opt := range opts {
		_, err := tx.ExecContext(ctx, query,
			uuid.NewString(), opt.BatchID, opt.SourceBucket, opt.SourceKey,
			opt.DestinationKey, opt.Status, opt.ErrorKind,
			opt.ErrorMessage, opt.RowCount, opt.DurationMs, now)
		if err != nil {
			r.l.Errorf(ctx, "relay.repository.postgre.CreateOutcomes: Failed to insert outcome: %v", err)
			return repo.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "relay.repository.postgre.CreateOutcomes: Failed to commit tx: %v", err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// GetOutcomes - Get outcome records with pagination
func (r *implRepository) GetOutcomes(ctx context.Context, opt repo.GetOutcomesOptions) ([]model.RelayOutcome, paginator.Paginator, error) {
	where, args := r.buildOutcomeFilter(opt)

	total, err := r.countOutcomes(ctx, where, args)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	pq := paginator.PaginateQuery{Page: opt.Page, Limit: opt.Limit}
	pq.Adjust()

	query := `
		SELECT id, batch_id, source_bucket, source_key, destination_key,
		       status, error_kind, error_message, row_count, duration_ms, created_at
		FROM relay_outcomes` + where + `
		ORDER BY created_at DESC
		LIMIT $` + placeholder(len(args)+1) + ` OFFSET $` + placeholder(len(args)+2)
	args = append(args, pq.Limit, pq.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "relay.repository.postgre.GetOutcomes: Failed to query outcomes: %v", err)
		return nil, paginator.Paginator{}, repo.ErrFailedToGet
	}
	defer rows.Close()

	outcomes, err := r.scanOutcomes(ctx, rows)
	if err != nil {
		return nil, paginator.Paginator{}, err
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(outcomes)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}
	return outcomes, pag, nil
}

// DetailOutcome - Get single outcome by ID
func (r *implRepository) DetailOutcome(ctx context.Context, id string) (model.RelayOutcome, error) {
	const query = `
		SELECT id, batch_id, source_bucket, source_key, destination_key,
		       status, error_kind, error_message, row_count, duration_ms, created_at
		FROM relay_outcomes
		WHERE id = $1`

	var o model.RelayOutcome
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID, &o.BatchID, &o.SourceBucket, &o.SourceKey, &o.DestinationKey,
		&o.Status, &o.ErrorKind, &o.ErrorMessage, &o.RowCount, &o.DurationMs, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return model.RelayOutcome{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "relay.repository.postgre.DetailOutcome: Failed to get outcome: %v", err)
		return model.RelayOutcome{}, repo.ErrFailedToGet
	}
	return o, nil
}

// GetStatistics - Aggregate journal counters
func (r *implRepository) GetStatistics(ctx context.Context) (repo.Statistics, error) {
	const query = `
		SELECT COUNT(DISTINCT batch_id),
		       COUNT(*) FILTER (WHERE status = 'succeeded'),
		       COUNT(*) FILTER (WHERE status = 'failed'),
		       COUNT(*) FILTER (WHERE status = 'skipped')
		FROM relay_outcomes`

	var stats repo.Statistics
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalBatches, &stats.TotalSucceeded, &stats.TotalFailed, &stats.TotalSkipped)
	if err != nil {
		r.l.Errorf(ctx, "relay.repository.postgre.GetStatistics: Failed to aggregate: %v", err)
		return repo.Statistics{}, repo.ErrFailedToCount
	}
	return stats, nil
}
