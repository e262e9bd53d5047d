package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_AddIsFieldWise(t *testing.T) {
	t.Parallel()

	got := NewStatistics(1, 500).Add(NewStatistics(1, 0))
	assert.Equal(t, int64(2), got.Count)
	require.True(t, decimal.NewFromInt(500).Equal(got.TotalBytes), "got=%s", got.TotalBytes)
}

func TestStatistics_MonoidLaws(t *testing.T) {
	t.Parallel()

	a := NewStatistics(1, 500)
	b := NewStatistics(3, 1800)
	c := NewStatistics(2, 0)

	assert.True(t, a.Add(b).Equal(b.Add(a)), "commutativity")
	assert.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "associativity")
	assert.True(t, a.Add(ZeroStatistics()).Equal(a), "right identity")
	assert.True(t, ZeroStatistics().Add(a).Equal(a), "left identity")
}

func TestStatistics_ZeroValueActsAsIdentity(t *testing.T) {
	t.Parallel()

	var zero Statistics
	assert.True(t, zero.Add(NewStatistics(1, 7)).Equal(NewStatistics(1, 7)))
}

func TestStatistics_TotalBytesDoesNotOverflow(t *testing.T) {
	t.Parallel()

	huge := Statistics{Count: 1, TotalBytes: decimal.RequireFromString("9223372036854775807")}
	sum := huge.Add(huge)

	assert.Equal(t, "18446744073709551614", sum.TotalBytes.String())
}

func TestStatistics_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<2,1200>", NewStatistics(2, 1200).String())
	assert.Equal(t, "<0,0>", ZeroStatistics().String())
}
