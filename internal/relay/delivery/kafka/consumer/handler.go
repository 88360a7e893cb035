package consumer

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"

	"relay-srv/internal/relay"
)

// handleArrivalMessage maps one Kafka message to a batch and delegates to
// the usecase. The batch ID comes from the message key when the publisher
// set one; the partition coordinates otherwise, so retried deliveries of
// the same message keep the same ID.
func (c *Consumer) handleArrivalMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "relay.delivery.kafka.consumer.handleArrivalMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	if len(msg.Value) == 0 {
		c.l.Warnf(ctx, "relay.delivery.kafka.consumer.handleArrivalMessage: Empty message (skipping)")
		return nil
	}

	batchID := string(msg.Key)
	if batchID == "" {
		batchID = fmt.Sprintf("%s-%d-%d", msg.Topic, msg.Partition, msg.Offset)
	}

	result, err := c.uc.ProcessBatch(ctx, relay.ProcessBatchInput{
		BatchID: batchID,
		Payload: msg.Value,
	})
	if err != nil {
		c.l.Errorf(ctx, "relay.delivery.kafka.consumer.handleArrivalMessage: usecase ProcessBatch failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "relay.delivery.kafka.consumer.handleArrivalMessage: Successfully processed batch %s: succeeded=%d, failed=%d, skipped=%d",
		batchID, result.Succeeded, result.Failed, result.Skipped)
	return nil
}
