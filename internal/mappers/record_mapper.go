package mappers

import (
	"log-query/internal/models"
	"log-query/internal/shared/metrics"
	"log-query/internal/shared/svcerrors"
)

// RecordMapper is the per-line map step of the pipeline. Implementations must be
// pure and safe for concurrent use: the engine calls Map from many goroutines.
//
//go:generate mockgen -source=record_mapper.go -destination=./mocks/record_mapper_mock.go -package=mocks
type RecordMapper interface {
	Map(line string) (models.OptionalKey, models.Statistics, error)
}

type recordMapper struct{}

func NewRecordMapper() RecordMapper {
	return &recordMapper{}
}

// Map parses line and derives its key and single-record statistics. The error,
// when non-nil, is a *svcerrors.ServiceError with code CodeMalformedLine or
// CodeInvalidByteCount.
func (m *recordMapper) Map(line string) (models.OptionalKey, models.Statistics, error) {
	record, err := ParseRecord(line)
	if err != nil {
		observe(err)
		return models.UndefinedKey(), models.Statistics{}, err
	}

	stats, err := BuildStatistics(record)
	if err != nil {
		observe(err)
		return models.UndefinedKey(), models.Statistics{}, err
	}

	metricRecordsMappedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return ExtractKey(record), stats, nil
}

func observe(err error) {
	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricRecordsMappedTotal.WithLabelValues(code).Inc()
}
