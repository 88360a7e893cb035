package consumer

import (
	"context"
	"fmt"

	relayConsumer "relay-srv/internal/relay/delivery/kafka/consumer"
	relayProducer "relay-srv/internal/relay/delivery/kafka/producer"
	relayPostgre "relay-srv/internal/relay/repository/postgre"
	relayUsecase "relay-srv/internal/relay/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	relayConsumer *relayConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	repo := relayPostgre.New(srv.l, srv.postgresDB)
	producer := relayProducer.New(srv.l, srv.kafkaProducer)
	relayUC := relayUsecase.New(
		srv.l,
		srv.relayConfig,
		srv.minioClient,
		repo,
		producer,
	)
	relayCons, err := relayConsumer.New(relayConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     relayUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create relay consumer: %w", err)
	}

	srv.l.Infof(ctx, "Relay domain initialized")

	return &domainConsumers{
		relayConsumer: relayCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.relayConsumer.ConsumeArrivals(ctx); err != nil {
		return fmt.Errorf("failed to start relay consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.relayConsumer != nil {
		if err := consumers.relayConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing relay consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
