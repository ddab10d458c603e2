package reconciliation

import (
	"time"

	"github.com/openretail/backoffice/types"
)

// ResolvePeriod turns a dashboard period mode into an inclusive
// [startDate, endDate] pair of canonical calendar dates.
//
// "week" is a rolling window of the last seven days, not aligned to the
// calendar week. "custom" requires both bounds and passes them through
// unvalidated, range validity is the ledger readers' concern.
func ResolvePeriod(mode types.PeriodMode, customStart string, customEnd string, now time.Time) (string, string, error) {
	switch mode {
	case types.PeriodToday, "":
		day := now.Format(types.DateFormat)

		return day, day, nil
	case types.PeriodWeek:
		start := now.AddDate(0, 0, -7).Format(types.DateFormat)
		end := now.Format(types.DateFormat)

		return start, end, nil
	case types.PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start := first.Format(types.DateFormat)
		end := now.Format(types.DateFormat)

		return start, end, nil
	case types.PeriodCustom:
		if len(customStart) == 0 || len(customEnd) == 0 {
			return "", "", &types.ValidationError{Code: "admin.finance.missing_date_range"}
		}

		return customStart, customEnd, nil
	default:
		return "", "", &types.ValidationError{Code: "admin.finance.invalid_period"}
	}
}
