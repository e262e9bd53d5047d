package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Statistics is the per-key usage value: how many records were folded in and the
// sum of their byte counts. TotalBytes is arbitrary precision so sums cannot overflow.
//
// Statistics form a commutative monoid under field-wise addition with identity
// ZeroStatistics().
type Statistics struct {
	Count      int64           `json:"count"`
	TotalBytes decimal.Decimal `json:"totalBytes"`
}

func ZeroStatistics() Statistics {
	return Statistics{Count: 0, TotalBytes: decimal.Zero}
}

// NewStatistics builds a value for count records totalling totalBytes.
func NewStatistics(count int64, totalBytes int64) Statistics {
	return Statistics{Count: count, TotalBytes: decimal.NewFromInt(totalBytes)}
}

// Add returns the field-wise sum of s and o.
func (s Statistics) Add(o Statistics) Statistics {
	return Statistics{
		Count:      s.Count + o.Count,
		TotalBytes: s.TotalBytes.Add(o.TotalBytes),
	}
}

// Equal compares by numeric value.
func (s Statistics) Equal(o Statistics) bool {
	return s.Count == o.Count && s.TotalBytes.Equal(o.TotalBytes)
}

// String renders the value as "<count,totalBytes>".
func (s Statistics) String() string {
	return fmt.Sprintf("<%d,%s>", s.Count, s.TotalBytes.String())
}
