package streams

import (
	"context"
	"fmt"
	"runtime/debug"

	"log-query/internal/events"
	"log-query/internal/models"
	"log-query/internal/shared/loggers"
	"log-query/internal/shared/metrics"
	"log-query/internal/shared/svcerrors"

	"golang.org/x/sync/errgroup"
)

// StatisticsFolder folds one partial value into an accumulator.
type StatisticsFolder interface {
	MergeInto(acc models.AggregationResult, key models.GroupKey, stats models.Statistics)
}

// PartialStatsConsumer reduces every partition of the queue.
type PartialStatsConsumer interface {
	// Run blocks until every partition is closed and drained, then returns the
	// union of the per-partition accumulators. It fails fast on the first
	// reducer error or when ctx is done.
	Run(ctx context.Context) (models.AggregationResult, error)
}

type partialStatsConsumer struct {
	queue  *PartitionedQueue[events.PartialStatsEvent]
	folder StatisticsFolder
}

func NewPartialStatsConsumer(queue *PartitionedQueue[events.PartialStatsEvent], folder StatisticsFolder) PartialStatsConsumer {
	return &partialStatsConsumer{queue: queue, folder: folder}
}

// Run spawns 1 reducer goroutine per partition.
func (consumer *partialStatsConsumer) Run(ctx context.Context) (models.AggregationResult, error) {
	partitionResults := make([]models.AggregationResult, consumer.queue.PartitionCount())

	group, groupCtx := errgroup.WithContext(ctx)
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.Partition(partitionIndex)
		group.Go(func() error {
			acc, err := consumer.runPartitionWorker(groupCtx, partitionIndex, ch)
			partitionResults[partitionIndex] = acc
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Partitions hold disjoint key sets, so the union needs no merging.
	size := 0
	for _, acc := range partitionResults {
		size += len(acc)
	}
	result := make(models.AggregationResult, size)
	for _, acc := range partitionResults {
		for key, stats := range acc {
			result[key] = stats
		}
	}
	return result, nil
}

func (consumer *partialStatsConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.PartialStatsEvent) (models.AggregationResult, error) {
	acc := make(models.AggregationResult)
	logger := loggers.Ctx(ctx).With().Int(loggers.FieldPartitionId, partitionIndex).Logger()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case event, ok := <-ch:
			if !ok {
				logger.Debug().Int("groups", len(acc)).Msg("partition drained")
				return acc, nil
			}
			if err := consumer.fold(acc, event); err != nil {
				logger.Error().
					Err(err).
					Int("chunk_index", event.ChunkIndex).
					Msg("reducer failed")
				return nil, err
			}
		}
	}
}

// fold merges one event and converts a panic in the folder into an internal error.
func (consumer *partialStatsConsumer) fold(acc models.AggregationResult, event events.PartialStatsEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var panicErr error
			if e, ok := r.(error); ok {
				panicErr = e
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(fmt.Errorf("reducer panic: %w\n%s", panicErr, debug.Stack()))
			metricPartialStatsConsumedTotal.WithLabelValues(streamPartialStats, svcErr.Code).Inc()
			err = svcErr
		}
	}()

	consumer.folder.MergeInto(acc, event.Key, event.Stats)
	metricPartialStatsConsumedTotal.WithLabelValues(streamPartialStats, metrics.ValueNoError).Inc()
	return nil
}
