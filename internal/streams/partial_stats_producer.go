package streams

import (
	"context"

	"log-query/internal/events"
)

// PartialStatsProducer publishes the output of one mapper task to the partitioned queue.
//
// Partition strategy: the partition key is the group key's string form
// "(client,actor,query)". Every event of a key lands in the same partition, and
// each partition has exactly one reducer, so a key's accumulator has a single
// writer and needs no locking while distinct keys are reduced in parallel.
type PartialStatsProducer interface {
	Produce(ctx context.Context, partials []events.PartialStatsEvent) error
}

type partialStatsProducer struct {
	queue *PartitionedQueue[events.PartialStatsEvent]
}

func NewPartialStatsProducer(queue *PartitionedQueue[events.PartialStatsEvent]) PartialStatsProducer {
	return &partialStatsProducer{queue: queue}
}

func (producer *partialStatsProducer) Produce(ctx context.Context, partials []events.PartialStatsEvent) error {
	for _, event := range partials {
		if err := producer.queue.Publish(ctx, event.PartitionKey(), event); err != nil {
			return err
		}
		metricPartialStatsPublishedTotal.WithLabelValues(streamPartialStats).Inc()
	}
	return nil
}
