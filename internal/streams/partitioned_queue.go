package streams

import (
	"context"
	"encoding/binary"
	"hash/fnv"
	"sync"
)

// PartitionedQueue is a fixed set of buffered channels. A message is always
// routed to the partition selected by the FNV-32a hash of its partition key, so
// one consumer per partition sees every message of a given key.
type PartitionedQueue[T any] struct {
	partitions []chan T
	closeOnce  sync.Once
}

const (
	defaultNumPartitions = 8
	defaultBuffer        = 1024
)

// NewPartitionedQueue creates a queue with numPartitions partitions of the given
// buffer size. Non-positive arguments fall back to the defaults.
func NewPartitionedQueue[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions <= 0 {
		numPartitions = defaultNumPartitions
	}
	if buffer < 0 {
		buffer = defaultBuffer
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Partition returns the receive side of partition i.
func (queue *PartitionedQueue[T]) Partition(i int) <-chan T { return queue.partitions[i] }

// Publish blocks until msg is enqueued or ctx is done.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	idx := partitionIndex(partitionKey, len(queue.partitions))
	select {
	case queue.partitions[idx] <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes every partition. Safe to call more than once; Publish must not be
// called afterwards.
func (queue *PartitionedQueue[T]) Close() {
	queue.closeOnce.Do(func() {
		for _, ch := range queue.partitions {
			close(ch)
		}
	})
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
