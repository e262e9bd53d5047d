package aggregators

import (
	"log-query/internal/shared/metrics"
)

var (
	// metricRecordsFilteredTotal counts records dropped because their actor is the sentinel.
	metricRecordsFilteredTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_filtered_total",
		},
	)

	// metricRecordsSkippedTotal counts records dropped under the skip policy, by error code.
	metricRecordsSkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_skipped_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricRunsTotal counts finished runs. error_code is empty for successful runs.
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricGroupsEmittedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "groups_emitted_total",
		},
	)
)
