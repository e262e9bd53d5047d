package mappers

import (
	"fmt"

	"log-query/internal/models"
	"log-query/internal/shared/svcerrors"
)

const (
	CodeMalformedLine    = "MAP_1000"
	CodeInvalidByteCount = "MAP_1001"
)

// errMalformedLine is returned when a line does not split into exactly four fields.
func errMalformedLine(fieldCount int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(
		CodeMalformedLine,
		fmt.Sprintf("malformed line: expected %d comma-separated fields, got %d", models.LogRecordFieldCount, fieldCount),
		nil,
	)
}

// errInvalidByteCount is returned when the byte count is neither the sentinel nor a non-negative integer.
func errInvalidByteCount(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(
		CodeInvalidByteCount,
		fmt.Sprintf("invalid byte count %q: must be %q or a non-negative integer", value, models.Sentinel),
		cause,
	)
}
