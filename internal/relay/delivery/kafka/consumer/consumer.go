package consumer

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	pkgKafka "relay-srv/pkg/kafka"
)

// ConsumeArrivals starts consuming arrival notification batches
func (c *Consumer) ConsumeArrivals(ctx context.Context) error {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: c.kafkaConfig.GroupID,
	})
	if err != nil {
		return fmt.Errorf("failed to create arrivals consumer group: %w", err)
	}
	c.arrivalsGroup = group

	handler := &arrivalsHandler{consumer: c}

	// Consume loop with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{c.kafkaConfig.Topic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.kafkaConfig.Topic)

	return nil
}

// arrivalsHandler implements sarama.ConsumerGroupHandler for the arrival topic.
type arrivalsHandler struct {
	consumer *Consumer
}

func (h *arrivalsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *arrivalsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *arrivalsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleArrivalMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "relay.delivery.kafka.consumer.ConsumeArrivals: Failed to process arrival message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
