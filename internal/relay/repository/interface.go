package repository

import (
	"context"

	"relay-srv/internal/model"
	"relay-srv/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	OutcomeRepository
}

// OutcomeRepository - Operations for relay_outcomes table
type OutcomeRepository interface {
	CreateOutcome(ctx context.Context, opt CreateOutcomeOptions) (model.RelayOutcome, error)
	CreateOutcomes(ctx context.Context, opts []CreateOutcomeOptions) error
	GetOutcomes(ctx context.Context, opt GetOutcomesOptions) ([]model.RelayOutcome, paginator.Paginator, error)
	DetailOutcome(ctx context.Context, id string) (model.RelayOutcome, error)
	GetStatistics(ctx context.Context) (Statistics, error)
}
