package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"relay-srv/internal/relay"
	kafkaDelivery "relay-srv/internal/relay/delivery/kafka"
)

// PublishBatchResult publishes the aggregated result of one batch.
func (p *implProducer) PublishBatchResult(ctx context.Context, result relay.BatchResult) error {
	msg := kafkaDelivery.ConversionResultMessage{
		BatchID:     result.BatchID,
		Total:       result.Total,
		Succeeded:   result.Succeeded,
		Failed:      result.Failed,
		Skipped:     result.Skipped,
		DurationMs:  result.Duration.Milliseconds(),
		Outcomes:    toOutcomeMessages(result.Outcomes),
		CompletedAt: time.Now(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal conversion result: %w", err)
	}

	key := []byte(result.BatchID)
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish conversion result: %w", err)
	}

	p.l.Infof(ctx, "Published conversion result for batch %s: succeeded=%d failed=%d",
		result.BatchID, result.Succeeded, result.Failed)
	return nil
}

func toOutcomeMessages(outcomes []relay.TaskOutcome) []kafkaDelivery.OutcomeMessage {
	msgs := make([]kafkaDelivery.OutcomeMessage, 0, len(outcomes))
	for _, o := range outcomes {
		msgs = append(msgs, kafkaDelivery.OutcomeMessage{
			SourceBucket:   o.SourceBucket,
			SourceKey:      o.SourceKey,
			DestinationKey: o.DestinationKey,
			Status:         string(o.Status),
			ErrorKind:      string(o.ErrorKind),
			ErrorMessage:   o.ErrorMessage,
			RowCount:       o.RowCount,
		})
	}
	return msgs
}
