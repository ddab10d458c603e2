package reconciliation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openretail/backoffice/types"
)

func TestResolvePeriodToday(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)

	start, end, err := ResolvePeriod(types.PeriodToday, "", "", now)

	assert.NoError(t, err)
	assert.Equal(t, "2026-03-15", start)
	assert.Equal(t, "2026-03-15", end)
}

func TestResolvePeriodDefaultsToToday(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.UTC)

	start, end, err := ResolvePeriod("", "", "", now)

	assert.NoError(t, err)
	assert.Equal(t, "2026-03-15", start)
	assert.Equal(t, "2026-03-15", end)
}

func TestResolvePeriodWeekIsRolling(t *testing.T) {
	now := time.Date(2026, time.March, 15, 23, 59, 0, 0, time.UTC)

	start, end, err := ResolvePeriod(types.PeriodWeek, "", "", now)

	assert.NoError(t, err)
	assert.Equal(t, "2026-03-08", start)
	assert.Equal(t, "2026-03-15", end)
}

func TestResolvePeriodWeekCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)

	start, end, err := ResolvePeriod(types.PeriodWeek, "", "", now)

	assert.NoError(t, err)
	assert.Equal(t, "2026-02-24", start)
	assert.Equal(t, "2026-03-03", end)
}

func TestResolvePeriodMonth(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	start, end, err := ResolvePeriod(types.PeriodMonth, "", "", now)

	assert.NoError(t, err)
	assert.Equal(t, "2026-03-01", start)
	assert.Equal(t, "2026-03-15", end)
}

func TestResolvePeriodMonthOnFirstDay(t *testing.T) {
	now := time.Date(2026, time.March, 1, 0, 30, 0, 0, time.UTC)

	start, end, err := ResolvePeriod(types.PeriodMonth, "", "", now)

	assert.NoError(t, err)
	assert.Equal(t, "2026-03-01", start)
	assert.Equal(t, "2026-03-01", end)
}

func TestResolvePeriodCustomPassesThrough(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	start, end, err := ResolvePeriod(types.PeriodCustom, "2026-01-01", "2026-01-31", now)

	assert.NoError(t, err)
	assert.Equal(t, "2026-01-01", start)
	assert.Equal(t, "2026-01-31", end)
}

func TestResolvePeriodCustomRequiresBothBounds(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	var validationErr *types.ValidationError

	_, _, err := ResolvePeriod(types.PeriodCustom, "2026-01-01", "", now)
	assert.Error(t, err)
	assert.True(t, errors.As(err, &validationErr))

	_, _, err = ResolvePeriod(types.PeriodCustom, "", "2026-01-31", now)
	assert.Error(t, err)
	assert.True(t, errors.As(err, &validationErr))
}

func TestResolvePeriodRejectsUnknownMode(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	var validationErr *types.ValidationError

	_, _, err := ResolvePeriod("quarter", "", "", now)
	assert.Error(t, err)
	assert.True(t, errors.As(err, &validationErr))
}
