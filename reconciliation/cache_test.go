package reconciliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryCacheKeyRoundTrip(t *testing.T) {
	key := summaryCacheKey("2026-03-01", "2026-03-15")
	assert.Equal(t, "backoffice:finance:summary:2026-03-01:2026-03-15", key)

	start, end, ok := splitSummaryCacheKey(key)
	assert.True(t, ok)
	assert.Equal(t, "2026-03-01", start)
	assert.Equal(t, "2026-03-15", end)
}

func TestSplitSummaryCacheKeyRejectsForeignKeys(t *testing.T) {
	_, _, ok := splitSummaryCacheKey("backoffice:finance:summary_index")
	assert.False(t, ok)

	_, _, ok = splitSummaryCacheKey("other:prefix:2026-03-01:2026-03-15")
	assert.False(t, ok)

	_, _, ok = splitSummaryCacheKey(summaryKeyPrefix + "2026-03-01")
	assert.False(t, ok)
}

func TestRangeContainsDateInclusiveBounds(t *testing.T) {
	assert.True(t, rangeContainsDate("2026-03-01", "2026-03-15", "2026-03-01"))
	assert.True(t, rangeContainsDate("2026-03-01", "2026-03-15", "2026-03-15"))
	assert.True(t, rangeContainsDate("2026-03-01", "2026-03-15", "2026-03-07"))
	assert.True(t, rangeContainsDate("2026-03-05", "2026-03-05", "2026-03-05"))

	assert.False(t, rangeContainsDate("2026-03-01", "2026-03-15", "2026-02-28"))
	assert.False(t, rangeContainsDate("2026-03-01", "2026-03-15", "2026-03-16"))
	assert.False(t, rangeContainsDate("2026-03-01", "2026-03-15", "2027-03-07"))
}

func TestSummaryCacheWithoutRedisIsMiss(t *testing.T) {
	cache := &SummaryCache{}

	summary, ok := cache.Fetch("2026-03-01", "2026-03-15")
	assert.Nil(t, summary)
	assert.False(t, ok)

	assert.EqualValues(t, 0, cache.Generation())

	// No-ops, never panics.
	cache.Store("2026-03-01", "2026-03-15", &Summary{}, cache.Generation())
	cache.InvalidateDate("2026-03-07")
}
