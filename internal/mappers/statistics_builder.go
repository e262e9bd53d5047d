package mappers

import (
	"log-query/internal/models"

	"github.com/shopspring/decimal"
)

// BuildStatistics returns (1, 0) for a sentinel byte count and (1, n) for a
// non-negative integer n. Any other byte count is an error, never a silent 0.
func BuildStatistics(record models.LogRecord) (models.Statistics, error) {
	if record.ByteCount == models.Sentinel {
		return models.NewStatistics(1, 0), nil
	}
	if !isDigits(record.ByteCount) {
		return models.Statistics{}, errInvalidByteCount(record.ByteCount, nil)
	}
	bytes, err := decimal.NewFromString(record.ByteCount)
	if err != nil {
		return models.Statistics{}, errInvalidByteCount(record.ByteCount, err)
	}
	return models.Statistics{Count: 1, TotalBytes: bytes}, nil
}

// isDigits rejects signs, exponents, decimal points and whitespace, all of which
// decimal.NewFromString would otherwise accept.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
