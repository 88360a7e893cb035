package postgre

import (
	"database/sql"

	repo "relay-srv/internal/relay/repository"
	"relay-srv/pkg/log"
)

// implRepository implements repository.Repository with raw SQL.
type implRepository struct {
	l  log.Logger
	db *sql.DB
}

// New creates a new PostgreSQL repository for the relay domain
func New(l log.Logger, db *sql.DB) repo.Repository {
	return &implRepository{
		l:  l,
		db: db,
	}
}
