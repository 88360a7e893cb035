package postgre

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"relay-srv/internal/model"
	repo "relay-srv/internal/relay/repository"
)

// buildOutcomeFilter builds the WHERE clause and args for outcome queries.
func (r *implRepository) buildOutcomeFilter(opt repo.GetOutcomesOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.BatchID != "" {
		args = append(args, opt.BatchID)
		conditions = append(conditions, "batch_id = $"+placeholder(len(args)))
	}
	if opt.Status != "" {
		args = append(args, opt.Status)
		conditions = append(conditions, "status = $"+placeholder(len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *implRepository) countOutcomes(ctx context.Context, where string, args []any) (int64, error) {
	var total int64
	query := "SELECT COUNT(*) FROM relay_outcomes" + where
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "relay.repository.postgre.countOutcomes: Failed to count outcomes: %v", err)
		return 0, repo.ErrFailedToCount
	}
	return total, nil
}

func (r *implRepository) scanOutcomes(ctx context.Context, rows *sql.Rows) ([]model.RelayOutcome, error) {
	var outcomes []model.RelayOutcome
	for rows.Next() {
		var o model.RelayOutcome
		err := rows.Scan(
			&o.ID, &o.BatchID, &o.SourceBucket, &o.SourceKey, &o.DestinationKey,
			&o.Status, &o.ErrorKind, &o.ErrorMessage, &o.RowCount, &o.DurationMs, &o.CreatedAt)
		if err != nil {
			r.l.Errorf(ctx, "relay.repository.postgre.scanOutcomes: Failed to scan outcome: %v", err)
			return nil, repo.ErrFailedToGet
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "relay.repository.postgre.scanOutcomes: Rows iteration failed: %v", err)
		return nil, repo.ErrFailedToGet
	}
	return outcomes, nil
}

func placeholder(n int) string {
	return strconv.Itoa(n)
}
