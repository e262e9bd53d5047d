package events

import (
	"log-query/internal/models"
)

// PartialStatsEvent carries statistics for one key from one mapper task. When
// map-side combine is enabled the value already folds every record of the task
// that shares Key; otherwise it is a single record's statistics.
//
// Several events for the same key are expected; reducers merge them by monoid
// addition, so their arrival order is irrelevant.
type PartialStatsEvent struct {
	Key   models.GroupKey
	Stats models.Statistics
	// ChunkIndex identifies the mapper task that produced the event, for logging.
	ChunkIndex int
}

// PartitionKey routes all events of one key to the same reducer.
func (e PartialStatsEvent) PartitionKey() string {
	return e.Key.String()
}
