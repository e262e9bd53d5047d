package aggregators

import (
	"log-query/internal/models"
)

// Merge is the associative, commutative combination of two Statistics with
// identity models.ZeroStatistics(). It has no error conditions.
func Merge(a, b models.Statistics) models.Statistics {
	return a.Add(b)
}

type StatisticsMerger interface {
	// MergeInto mutates acc by folding stats into the value held for key.
	MergeInto(acc models.AggregationResult, key models.GroupKey, stats models.Statistics)
}

type statisticsMerger struct{}

func NewStatisticsMerger() StatisticsMerger {
	return &statisticsMerger{}
}

func (m *statisticsMerger) MergeInto(acc models.AggregationResult, key models.GroupKey, stats models.Statistics) {
	current, ok := acc[key]
	if !ok {
		current = models.ZeroStatistics()
	}
	acc[key] = Merge(current, stats)
}
