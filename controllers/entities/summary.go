package entities

import (
	"github.com/shopspring/decimal"

	"github.com/openretail/backoffice/reconciliation"
)

type OperatorTotalsEntity struct {
	OperatorID string          `json:"operator_id"`
	Operator   string          `json:"operator"`
	Opening    decimal.Decimal `json:"opening"`
	CashTotal  decimal.Decimal `json:"cash_total"`
	CardTotal  decimal.Decimal `json:"card_total"`
	Closing    decimal.Decimal `json:"closing"`
	Variance   decimal.Decimal `json:"variance"`
}

type PeriodTotalsEntity struct {
	Opening       decimal.Decimal `json:"opening"`
	CashTotal     decimal.Decimal `json:"cash_total"`
	CardTotal     decimal.Decimal `json:"card_total"`
	Closing       decimal.Decimal `json:"closing"`
	WithdrawTotal decimal.Decimal `json:"withdraw_total"`
	NetCash       decimal.Decimal `json:"net_cash"`
}

type SalesSummaryEntity struct {
	CashTotal    decimal.Decimal `json:"cash_total"`
	CardTotal    decimal.Decimal `json:"card_total"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	InvoiceCount int64           `json:"invoice_count"`
}

type SummaryEntity struct {
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	OperatorTotals []OperatorTotalsEntity `json:"operator_totals"`
	PeriodTotals   PeriodTotalsEntity     `json:"period_totals"`
	Sales          SalesSummaryEntity     `json:"sales"`
	Withdraws      []WithdrawEntity       `json:"withdraws"`
}

// BuildSummary decorates a reconciled summary with display names. Name
// resolution is presentation only, it never feeds the aggregation math, and
// an unresolved id falls back to the raw identifier.
func BuildSummary(summary *reconciliation.Summary, operatorName func(string) string, adminName func(uint64) string) SummaryEntity {
	entity := SummaryEntity{
		StartDate:      summary.StartDate,
		EndDate:        summary.EndDate,
		OperatorTotals: make([]OperatorTotalsEntity, 0, len(summary.OperatorTotals)),
		PeriodTotals: PeriodTotalsEntity{
			Opening:       summary.PeriodTotals.Opening,
			CashTotal:     summary.PeriodTotals.CashTotal,
			CardTotal:     summary.PeriodTotals.CardTotal,
			Closing:       summary.PeriodTotals.Closing,
			WithdrawTotal: summary.PeriodTotals.WithdrawTotal,
			NetCash:       summary.PeriodTotals.NetCash,
		},
		Sales: SalesSummaryEntity{
			CashTotal:    summary.Sales.CashTotal,
			CardTotal:    summary.Sales.CardTotal,
			TotalSales:   summary.Sales.TotalSales,
			InvoiceCount: summary.Sales.InvoiceCount,
		},
		Withdraws: make([]WithdrawEntity, 0, len(summary.Withdraws)),
	}

	for _, totals := range summary.OperatorTotals {
		entity.OperatorTotals = append(entity.OperatorTotals, OperatorTotalsEntity{
			OperatorID: totals.OperatorID,
			Operator:   operatorName(totals.OperatorID),
			Opening:    totals.Opening,
			CashTotal:  totals.CashTotal,
			CardTotal:  totals.CardTotal,
			Closing:    totals.Closing,
			Variance:   totals.Variance,
		})
	}

	for _, withdraw := range summary.Withdraws {
		entity.Withdraws = append(entity.Withdraws, WithdrawEntity{
			ID:        withdraw.ID,
			UUID:      withdraw.UUID,
			Admin:     adminName(withdraw.AdminID),
			Amount:    withdraw.Amount,
			Note:      withdraw.Note,
			CreatedAt: withdraw.CreatedAt,
		})
	}

	return entity
}
