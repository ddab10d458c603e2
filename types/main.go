package types

import "time"

// DateFormat is the canonical calendar-date format used across the finance
// subsystem. Dates carry no time-of-day component and no timezone conversion
// is applied, the caller's local calendar date is authoritative.
const DateFormat = "2006-01-02"

// ValidateDateRange rejects malformed bounds and inverted ranges. Period
// resolution passes custom bounds through untouched, the ledger readers own
// range validity and call this before building any query.
func ValidateDateRange(startDate string, endDate string) error {
	start, err := time.Parse(DateFormat, startDate)
	if err != nil {
		return &ValidationError{Code: "admin.finance.malformed_date"}
	}

	end, err := time.Parse(DateFormat, endDate)
	if err != nil {
		return &ValidationError{Code: "admin.finance.malformed_date"}
	}

	if start.After(end) {
		return &ValidationError{Code: "admin.finance.invalid_date_range"}
	}

	return nil
}

type PeriodMode = string

var (
	PeriodToday  PeriodMode = "today"
	PeriodWeek   PeriodMode = "week"
	PeriodMonth  PeriodMode = "month"
	PeriodCustom PeriodMode = "custom"
)

type OrderBy = string

var (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)
