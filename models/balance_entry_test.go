package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openretail/backoffice/types"
)

func TestListBalanceEntriesRejectsBadRange(t *testing.T) {
	var validationErr *types.ValidationError

	entries, err := ListBalanceEntries("not-a-date", "2026-03-15")
	assert.Nil(t, entries)
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "admin.finance.malformed_date", validationErr.Code)

	entries, err = ListBalanceEntries("2026-04-01", "2026-03-01")
	assert.Nil(t, entries)
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "admin.finance.invalid_date_range", validationErr.Code)
}
