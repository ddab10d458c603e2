package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openretail/backoffice/config"
	"github.com/openretail/backoffice/reconciliation"
	"github.com/openretail/backoffice/types"
)

// Invoice mirrors the invoice store, read only from this subsystem. Cash and
// card portions are separate columns so split-tender sales aggregate without
// inspecting line items.
type Invoice struct {
	ID         uint64          `json:"id" gorm:"primaryKey"`
	Number     string          `json:"number"`
	OperatorID string          `json:"operator_id"`
	CashAmount decimal.Decimal `json:"cash_amount"`
	CardAmount decimal.Decimal `json:"card_amount"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
}

type salesAggregateRow struct {
	CashTotal    decimal.NullDecimal
	CardTotal    decimal.NullDecimal
	InvoiceCount int64
}

// SummarizeSales aggregates the window's invoices into cash/card totals.
// TotalSales is computed here from the two sums, fixed point end to end.
func SummarizeSales(startDate string, endDate string) (reconciliation.SalesSummary, error) {
	if err := types.ValidateDateRange(startDate, endDate); err != nil {
		return reconciliation.SalesSummary{}, err
	}

	var row salesAggregateRow

	result := config.DataBase.
		Model(&Invoice{}).
		Select("SUM(cash_amount) as cash_total", "SUM(card_amount) as card_total", "COUNT(id) as invoice_count").
		Where("CAST(\"created_at\" AS DATE) BETWEEN ? AND ?", startDate, endDate).
		Find(&row)

	if result.Error != nil {
		return reconciliation.SalesSummary{}, &types.RetrievalError{Code: "admin.sales.fetch_failed", Err: result.Error}
	}

	summary := reconciliation.SalesSummary{
		CashTotal:    decimal.Zero,
		CardTotal:    decimal.Zero,
		InvoiceCount: row.InvoiceCount,
	}

	// SUM over zero rows is NULL, an empty window is a valid zero summary.
	if row.CashTotal.Valid {
		summary.CashTotal = row.CashTotal.Decimal
	}
	if row.CardTotal.Valid {
		summary.CardTotal = row.CardTotal.Decimal
	}

	summary.TotalSales = summary.CashTotal.Add(summary.CardTotal)

	return summary, nil
}

// InvoiceSales adapts the invoice store to the reconciliation engine.
type InvoiceSales struct{}

func (InvoiceSales) Summarize(startDate string, endDate string) (reconciliation.SalesSummary, error) {
	return SummarizeSales(startDate, endDate)
}
