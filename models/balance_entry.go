package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openretail/backoffice/config"
	"github.com/openretail/backoffice/reconciliation"
	"github.com/openretail/backoffice/types"
)

// BalanceEntry is one operator's register snapshot for one day, written by
// the point-of-sale close-out. Immutable here: no update or delete exists in
// this subsystem. Closing comes from the register independently and may
// legitimately diverge from opening + cash + card.
type BalanceEntry struct {
	ID         uint64          `json:"id" gorm:"primaryKey"`
	OperatorID string          `json:"operator_id"`
	Date       string          `json:"date" gorm:"type:date"`
	Opening    decimal.Decimal `json:"opening"`
	CashTotal  decimal.Decimal `json:"cash_total"`
	CardTotal  decimal.Decimal `json:"card_total"`
	Closing    decimal.Decimal `json:"closing"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ListBalanceEntries returns all operators' snapshots inside the inclusive
// window. Read only, no retry: retry policy belongs to the caller.
func ListBalanceEntries(startDate string, endDate string) ([]*BalanceEntry, error) {
	if err := types.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	var entries []*BalanceEntry

	result := config.DataBase.
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date ASC").
		Find(&entries)

	if result.Error != nil {
		return nil, &types.RetrievalError{Code: "admin.balance.fetch_failed", Err: result.Error}
	}

	return entries, nil
}

// BalanceLedger adapts the balance_entries table to the reconciliation engine.
type BalanceLedger struct{}

func (BalanceLedger) ListBalances(startDate string, endDate string) ([]reconciliation.BalanceRecord, error) {
	entries, err := ListBalanceEntries(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records := make([]reconciliation.BalanceRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, reconciliation.BalanceRecord{
			OperatorID: entry.OperatorID,
			Date:       entry.Date,
			Opening:    entry.Opening,
			CashTotal:  entry.CashTotal,
			CardTotal:  entry.CardTotal,
			Closing:    entry.Closing,
		})
	}

	return records, nil
}
