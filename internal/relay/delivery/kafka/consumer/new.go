package consumer

import (
	"fmt"

	"relay-srv/config"
	"relay-srv/internal/relay"
	pkgKafka "relay-srv/pkg/kafka"
	"relay-srv/pkg/log"
)

// Config holds the configuration for the relay consumer
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	UseCase     relay.UseCase
}

// Consumer manages the Kafka consumer group for the arrival topic
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	uc          relay.UseCase

	arrivalsGroup pkgKafka.IConsumer
}

// New creates a new relay consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		uc:          cfg.UseCase,
	}, nil
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c.arrivalsGroup != nil {
		if err := c.arrivalsGroup.Close(); err != nil {
			return fmt.Errorf("failed to close arrivals group: %w", err)
		}
	}
	return nil
}
