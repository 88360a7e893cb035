package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

func newConsumerImpl(cfg ConsumerConfig) (*consumerImpl, error) {
	config := sarama.NewConfig()
	config.Version = KafkaVersion
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer group: %w", err)
	}
	return &consumerImpl{group: group}, nil
}

// ConsumeWithContext consumes in a loop until the context is cancelled.
// sarama's Consume returns on every rebalance, so it must be re-entered.
func (c *consumerImpl) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	for {
		if err := c.group.Consume(ctx, topics, handler); err != nil {
			return fmt.Errorf("kafka consume error: %w", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group.
func (c *consumerImpl) Close() error {
	if c.group != nil {
		return c.group.Close()
	}
	return nil
}

// Errors returns the consumer group error channel.
func (c *consumerImpl) Errors() <-chan error {
	return c.group.Errors()
}
