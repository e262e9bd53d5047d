package streams

import (
	"log-query/internal/shared/metrics"
)

const streamPartialStats = "partial_stats"

var (
	metricPartialStatsPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "partial_stats_published_total",
		},
		[]string{"stream_id"},
	)

	metricPartialStatsConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "partial_stats_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
