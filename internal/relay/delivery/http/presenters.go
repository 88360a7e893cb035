package http

import (
	"errors"
	"time"

	"relay-srv/internal/model"
	"relay-srv/internal/relay"
	"relay-srv/pkg/paginator"
	"relay-srv/pkg/util"
)

// =====================================================
// Request DTOs
// =====================================================

// listOutcomesReq - Query params for ListOutcomes
type listOutcomesReq struct {
	BatchID string `form:"batch_id"`
	Status  string `form:"status"`
	Page    int64  `form:"page"`
	Limit   int64  `form:"limit"`
}

func (r listOutcomesReq) validate() error {
	switch r.Status {
	case "", "succeeded", "failed", "skipped":
		return nil
	}
	return errors.New("status must be one of succeeded, failed, skipped")
}

func (r listOutcomesReq) toInput() relay.ListOutcomesInput {
	return relay.ListOutcomesInput{
		BatchID: r.BatchID,
		Status:  r.Status,
		Page:    r.Page,
		Limit:   r.Limit,
	}
}

// redriveReq - Request body for Redrive
type redriveReq struct {
	Bucket string `json:"bucket" binding:"required"`
	Key    string `json:"key" binding:"required"`
}

func (r redriveReq) toInput() relay.RedriveInput {
	return relay.RedriveInput{
		Bucket: r.Bucket,
		Key:    r.Key,
	}
}

// =====================================================
// Response DTOs
// =====================================================

// outcomeResp - One journaled outcome
type outcomeResp struct {
	ID             string    `json:"id"`
	BatchID        string    `json:"batch_id"`
	SourceBucket   string    `json:"source_bucket"`
	SourceKey      string    `json:"source_key"`
	DestinationKey string    `json:"destination_key,omitempty"`
	Status         string    `json:"status"`
	ErrorKind      string    `json:"error_kind,omitempty"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	RowCount       int       `json:"row_count"`
	DurationMs     int64     `json:"duration_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// listOutcomesResp - Response for ListOutcomes
type listOutcomesResp struct {
	Outcomes  []outcomeResp               `json:"outcomes"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

// statisticsResp - Response for GetStatistics
type statisticsResp struct {
	TotalBatches   int64 `json:"total_batches"`
	TotalSucceeded int64 `json:"total_succeeded"`
	TotalFailed    int64 `json:"total_failed"`
	TotalSkipped   int64 `json:"total_skipped"`
}

// redriveResp - Response for Redrive
type redriveResp struct {
	SourceBucket   string `json:"source_bucket"`
	SourceKey      string `json:"source_key"`
	DestinationKey string `json:"destination_key"`
	Status         string `json:"status"`
	ErrorKind      string `json:"error_kind,omitempty"`
	ErrorMessage   string `json:"error_message,omitempty"`
	RowCount       int    `json:"row_count"`
	DurationMs     int64  `json:"duration_ms"`
}

func newOutcomeResp(o model.RelayOutcome) outcomeResp {
	resp := outcomeResp{
		ID:             o.ID,
		BatchID:        o.BatchID,
		SourceBucket:   o.SourceBucket,
		SourceKey:      o.SourceKey,
		DestinationKey: o.DestinationKey,
		Status:         o.Status,
		RowCount:       o.RowCount,
		DurationMs:     o.DurationMs,
		CreatedAt:      o.CreatedAt,
	}
	if o.ErrorKind != nil {
		resp.ErrorKind = *o.ErrorKind
	}
	if o.ErrorMessage != nil {
		resp.ErrorMessage = *o.ErrorMessage
	}
	return resp
}

func (h *handler) newListOutcomesResp(outcomes []model.RelayOutcome, pag paginator.Paginator) listOutcomesResp {
	return listOutcomesResp{
		Outcomes:  util.MapSlice(outcomes, newOutcomeResp),
		Paginator: pag.ToResponse(),
	}
}

func (h *handler) newStatisticsResp(stats relay.StatisticsOutput) statisticsResp {
	return statisticsResp{
		TotalBatches:   stats.TotalBatches,
		TotalSucceeded: stats.TotalSucceeded,
		TotalFailed:    stats.TotalFailed,
		TotalSkipped:   stats.TotalSkipped,
	}
}

func (h *handler) newRedriveResp(outcome relay.TaskOutcome) redriveResp {
	return redriveResp{
		SourceBucket:   outcome.SourceBucket,
		SourceKey:      outcome.SourceKey,
		DestinationKey: outcome.DestinationKey,
		Status:         string(outcome.Status),
		ErrorKind:      string(outcome.ErrorKind),
		ErrorMessage:   outcome.ErrorMessage,
		RowCount:       outcome.RowCount,
		DurationMs:     outcome.Duration.Milliseconds(),
	}
}
