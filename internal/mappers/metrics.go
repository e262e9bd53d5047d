package mappers

import (
	"log-query/internal/shared/metrics"
)

var (
	// metricRecordsMappedTotal counts mapped lines by outcome; error_code is empty on success.
	metricRecordsMappedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubMapper,
			Name:      "records_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
