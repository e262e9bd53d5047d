package aggregators

import (
	"testing"

	"log-query/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMerge_Algebra(t *testing.T) {
	t.Parallel()

	a := models.NewStatistics(1, 500)
	b := models.NewStatistics(2, 1200)
	c := models.NewStatistics(1, 0)

	assert.True(t, Merge(a, b).Equal(Merge(b, a)), "commutative")
	assert.True(t, Merge(Merge(a, b), c).Equal(Merge(a, Merge(b, c))), "associative")
	assert.True(t, Merge(a, models.ZeroStatistics()).Equal(a), "identity")
	assert.True(t, Merge(a, b).Equal(models.NewStatistics(3, 1700)))
}

func TestStatisticsMerger_MergeInto(t *testing.T) {
	t.Parallel()

	merger := NewStatisticsMerger()
	key := models.GroupKey{ClientAddress: "10.20.30.41", ActorID: "u300", QueryID: "query1"}
	other := models.GroupKey{ClientAddress: "10.20.30.42", ActorID: "u400", QueryID: "query2"}

	acc := make(models.AggregationResult)
	merger.MergeInto(acc, key, models.NewStatistics(1, 600))
	merger.MergeInto(acc, key, models.NewStatistics(1, 600))
	merger.MergeInto(acc, other, models.NewStatistics(1, 700))

	want := models.AggregationResult{
		key:   models.NewStatistics(2, 1200),
		other: models.NewStatistics(1, 700),
	}
	assert.True(t, want.Equal(acc), "want=%v got=%v", want, acc)
}

func TestKeepDefined(t *testing.T) {
	t.Parallel()

	assert.True(t, KeepDefined(models.SomeKey(models.GroupKey{ClientAddress: "c", ActorID: "a", QueryID: "q"})))
	assert.False(t, KeepDefined(models.UndefinedKey()))
}
