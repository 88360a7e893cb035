package usecase

import (
	"relay-srv/config"
	"relay-srv/internal/relay"
	"relay-srv/internal/relay/repository"
	"relay-srv/pkg/log"
	"relay-srv/pkg/minio"
)

// implUseCase implements the relay.UseCase interface
type implUseCase struct {
	l        log.Logger
	cfg      config.RelayConfig
	storage  minio.MinIO
	repo     repository.Repository
	producer relay.Producer
}

// New creates a new relay usecase
func New(
	l log.Logger,
	cfg config.RelayConfig,
	storage minio.MinIO,
	repo repository.Repository,
	producer relay.Producer,
) relay.UseCase {
	return &implUseCase{
		l:        l,
		cfg:      cfg,
		storage:  storage,
		repo:     repo,
		producer: producer,
	}
}
