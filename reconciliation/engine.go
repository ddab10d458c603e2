package reconciliation

import (
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceRecord is one operator's register snapshot for one day, as produced
// by the point-of-sale close-out. Closing is reported by the register
// independently and is not required to equal opening + cash + card.
type BalanceRecord struct {
	OperatorID string          `json:"operator_id"`
	Date       string          `json:"date"`
	Opening    decimal.Decimal `json:"opening"`
	CashTotal  decimal.Decimal `json:"cash_total"`
	CardTotal  decimal.Decimal `json:"card_total"`
	Closing    decimal.Decimal `json:"closing"`
}

// WithdrawRecord is a snapshot of one cash removal from the register.
type WithdrawRecord struct {
	ID        uint64          `json:"id"`
	UUID      uuid.UUID       `json:"uuid"`
	AdminID   uint64          `json:"admin_id"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}

// SalesSummary is the invoice-sourced aggregate for a period. TotalSales is
// always CashTotal + CardTotal, computed in fixed-point arithmetic.
type SalesSummary struct {
	CashTotal    decimal.Decimal `json:"cash_total"`
	CardTotal    decimal.Decimal `json:"card_total"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	InvoiceCount int64           `json:"invoice_count"`
}

// OperatorTotals sums one operator's balance rows across the period.
// Variance is closing − opening − cash − card, surfaced so close-out
// discrepancies are visible, never auto-corrected.
type OperatorTotals struct {
	OperatorID string          `json:"operator_id"`
	Opening    decimal.Decimal `json:"opening"`
	CashTotal  decimal.Decimal `json:"cash_total"`
	CardTotal  decimal.Decimal `json:"card_total"`
	Closing    decimal.Decimal `json:"closing"`
	Variance   decimal.Decimal `json:"variance"`
}

type PeriodTotals struct {
	Opening       decimal.Decimal `json:"opening"`
	CashTotal     decimal.Decimal `json:"cash_total"`
	CardTotal     decimal.Decimal `json:"card_total"`
	Closing       decimal.Decimal `json:"closing"`
	WithdrawTotal decimal.Decimal `json:"withdraw_total"`
	NetCash       decimal.Decimal `json:"net_cash"`
}

// Summary is the reconciled result for one inclusive date range.
type Summary struct {
	StartDate      string           `json:"start_date"`
	EndDate        string           `json:"end_date"`
	OperatorTotals []OperatorTotals `json:"operator_totals"`
	PeriodTotals   PeriodTotals     `json:"period_totals"`
	Sales          SalesSummary     `json:"sales"`
	Withdraws      []WithdrawRecord `json:"withdraws"`
}

type BalanceSource interface {
	ListBalances(startDate string, endDate string) ([]BalanceRecord, error)
}

type WithdrawSource interface {
	ListWithdraws(startDate string, endDate string) ([]WithdrawRecord, error)
}

type SalesSource interface {
	Summarize(startDate string, endDate string) (SalesSummary, error)
}

// Engine combines the three period reads into per-operator totals and the
// net-cash figure. It only reads, the withdraw ledger owns all mutation.
type Engine struct {
	Balances  BalanceSource
	Withdraws WithdrawSource
	Sales     SalesSource
}

func NewEngine(balances BalanceSource, withdraws WithdrawSource, sales SalesSource) *Engine {
	return &Engine{
		Balances:  balances,
		Withdraws: withdraws,
		Sales:     sales,
	}
}

// Reconcile fetches the three sources concurrently, none depends on another,
// and fails the whole call on the first source error. A period with no
// balance rows still reports withdraw and sales figures, a withdrawal with
// no matching close-out must be surfaced, not hidden.
func (e *Engine) Reconcile(startDate string, endDate string) (*Summary, error) {
	var wg sync.WaitGroup

	var balances []BalanceRecord
	var withdraws []WithdrawRecord
	var sales SalesSummary
	var balancesErr, withdrawsErr, salesErr error

	wg.Add(3)

	go func() {
		defer wg.Done()
		balances, balancesErr = e.Balances.ListBalances(startDate, endDate)
	}()

	go func() {
		defer wg.Done()
		withdraws, withdrawsErr = e.Withdraws.ListWithdraws(startDate, endDate)
	}()

	go func() {
		defer wg.Done()
		sales, salesErr = e.Sales.Summarize(startDate, endDate)
	}()

	wg.Wait()

	if balancesErr != nil {
		return nil, balancesErr
	}
	if withdrawsErr != nil {
		return nil, withdrawsErr
	}
	if salesErr != nil {
		return nil, salesErr
	}

	summary := &Summary{
		StartDate:      startDate,
		EndDate:        endDate,
		OperatorTotals: groupByOperator(balances),
		Sales:          sales,
		Withdraws:      withdraws,
	}

	period := PeriodTotals{
		Opening:       decimal.Zero,
		CashTotal:     decimal.Zero,
		CardTotal:     decimal.Zero,
		Closing:       decimal.Zero,
		WithdrawTotal: decimal.Zero,
	}

	for _, totals := range summary.OperatorTotals {
		period.Opening = period.Opening.Add(totals.Opening)
		period.CashTotal = period.CashTotal.Add(totals.CashTotal)
		period.CardTotal = period.CardTotal.Add(totals.CardTotal)
		period.Closing = period.Closing.Add(totals.Closing)
	}

	for _, withdraw := range withdraws {
		period.WithdrawTotal = period.WithdrawTotal.Add(withdraw.Amount)
	}

	period.NetCash = sales.CashTotal.Sub(period.WithdrawTotal)

	summary.PeriodTotals = period

	return summary, nil
}

// groupByOperator sums balance rows per operator. The treemap keeps rows in
// operator-id order so the breakdown table is stable between reads.
func groupByOperator(balances []BalanceRecord) []OperatorTotals {
	tree := treemap.NewWithStringComparator()

	for _, balance := range balances {
		var totals *OperatorTotals

		if value, found := tree.Get(balance.OperatorID); found {
			totals = value.(*OperatorTotals)
		} else {
			totals = &OperatorTotals{
				OperatorID: balance.OperatorID,
				Opening:    decimal.Zero,
				CashTotal:  decimal.Zero,
				CardTotal:  decimal.Zero,
				Closing:    decimal.Zero,
			}
			tree.Put(balance.OperatorID, totals)
		}

		totals.Opening = totals.Opening.Add(balance.Opening)
		totals.CashTotal = totals.CashTotal.Add(balance.CashTotal)
		totals.CardTotal = totals.CardTotal.Add(balance.CardTotal)
		totals.Closing = totals.Closing.Add(balance.Closing)
	}

	operator_totals := make([]OperatorTotals, 0, tree.Size())

	it := tree.Iterator()
	for it.Next() {
		totals := it.Value().(*OperatorTotals)
		totals.Variance = totals.Closing.Sub(totals.Opening).Sub(totals.CashTotal).Sub(totals.CardTotal)

		operator_totals = append(operator_totals, *totals)
	}

	return operator_totals
}
