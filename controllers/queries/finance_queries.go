package queries

import (
	"github.com/shopspring/decimal"

	"github.com/openretail/backoffice/types"
)

type SummaryFilters struct {
	Period   types.PeriodMode `query:"period" validate:"ValidatePeriod"`
	TimeFrom string           `query:"time_from"`
	TimeTo   string           `query:"time_to"`
}

func (f SummaryFilters) ValidatePeriod(val types.PeriodMode) bool {
	switch val {
	case "", types.PeriodToday, types.PeriodWeek, types.PeriodMonth, types.PeriodCustom:
		return true
	}

	return false
}

func (f SummaryFilters) Messages() map[string]string {
	return map[string]string{
		"ValidatePeriod": "admin.finance.invalid_period",
	}
}

type WithdrawParams struct {
	Amount decimal.Decimal `json:"amount" form:"amount" validate:"ValidateAmount"`
	Note   string          `json:"note" form:"note"`
}

func (p WithdrawParams) ValidateAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

func (p WithdrawParams) Messages() map[string]string {
	return map[string]string{
		"ValidateAmount": "admin.withdraw.non_positive_amount",
	}
}
