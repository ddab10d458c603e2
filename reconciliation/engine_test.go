package reconciliation

import (
	"errors"
	"io/ioutil"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"

	"github.com/openretail/backoffice/types"
)

type stubBalances struct {
	records []BalanceRecord
	err     error
}

func (s stubBalances) ListBalances(startDate string, endDate string) ([]BalanceRecord, error) {
	return s.records, s.err
}

type stubWithdraws struct {
	records []WithdrawRecord
	err     error
}

func (s stubWithdraws) ListWithdraws(startDate string, endDate string) ([]WithdrawRecord, error) {
	return s.records, s.err
}

type stubSales struct {
	summary SalesSummary
	err     error
}

func (s stubSales) Summarize(startDate string, endDate string) (SalesSummary, error) {
	return s.summary, s.err
}

type ReconcileEntry struct {
	Name              string   `yaml:"name"`
	Balances          []string `yaml:"balances"`
	Withdraws         []string `yaml:"withdraws"`
	Sales             string   `yaml:"sales"`
	ExpectedOperators []string `yaml:"expected_operators"`
	ExpectedPeriod    string   `yaml:"expected_period"`
}

func splitFields(s string) []string {
	rawFields := strings.Split(s, ",")

	fields := make([]string, 0, len(rawFields))
	for _, field := range rawFields {
		fields = append(fields, strings.TrimSpace(field))
	}

	return fields
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	want := mustDecimal(t, expected)
	assert.True(t, want.Equal(actual), "%s: want %s, got %s", field, want, actual)
}

func (entry *ReconcileEntry) Test(t *testing.T) {
	t.Run(entry.Name, func(t *testing.T) {
		balances := make([]BalanceRecord, 0, len(entry.Balances))
		for _, raw := range entry.Balances {
			fields := splitFields(raw)
			require.Len(t, fields, 6)

			balances = append(balances, BalanceRecord{
				OperatorID: fields[0],
				Date:       fields[1],
				Opening:    mustDecimal(t, fields[2]),
				CashTotal:  mustDecimal(t, fields[3]),
				CardTotal:  mustDecimal(t, fields[4]),
				Closing:    mustDecimal(t, fields[5]),
			})
		}

		withdraws := make([]WithdrawRecord, 0, len(entry.Withdraws))
		for i, raw := range entry.Withdraws {
			withdraws = append(withdraws, WithdrawRecord{
				ID:        uint64(i + 1),
				AdminID:   1,
				Amount:    mustDecimal(t, strings.TrimSpace(raw)),
				CreatedAt: time.Date(2026, time.March, 1, 12, 0, i, 0, time.UTC),
			})
		}

		salesFields := splitFields(entry.Sales)
		require.Len(t, salesFields, 3)
		invoiceCount, err := strconv.ParseInt(salesFields[2], 10, 64)
		require.NoError(t, err)

		sales := SalesSummary{
			CashTotal:    mustDecimal(t, salesFields[0]),
			CardTotal:    mustDecimal(t, salesFields[1]),
			InvoiceCount: invoiceCount,
		}
		sales.TotalSales = sales.CashTotal.Add(sales.CardTotal)

		engine := NewEngine(
			stubBalances{records: balances},
			stubWithdraws{records: withdraws},
			stubSales{summary: sales},
		)

		summary, err := engine.Reconcile("2026-03-01", "2026-03-07")
		require.NoError(t, err)

		require.Len(t, summary.OperatorTotals, len(entry.ExpectedOperators))
		for i, raw := range entry.ExpectedOperators {
			fields := splitFields(raw)
			require.Len(t, fields, 6)

			totals := summary.OperatorTotals[i]
			assert.Equal(t, fields[0], totals.OperatorID)
			assertDecimal(t, fields[1], totals.Opening, "opening")
			assertDecimal(t, fields[2], totals.CashTotal, "cash_total")
			assertDecimal(t, fields[3], totals.CardTotal, "card_total")
			assertDecimal(t, fields[4], totals.Closing, "closing")
			assertDecimal(t, fields[5], totals.Variance, "variance")
		}

		periodFields := splitFields(entry.ExpectedPeriod)
		require.Len(t, periodFields, 6)

		period := summary.PeriodTotals
		assertDecimal(t, periodFields[0], period.Opening, "period opening")
		assertDecimal(t, periodFields[1], period.CashTotal, "period cash_total")
		assertDecimal(t, periodFields[2], period.CardTotal, "period card_total")
		assertDecimal(t, periodFields[3], period.Closing, "period closing")
		assertDecimal(t, periodFields[4], period.WithdrawTotal, "withdraw_total")
		assertDecimal(t, periodFields[5], period.NetCash, "net_cash")

		assert.Len(t, summary.Withdraws, len(entry.Withdraws))
	})
}

func TestReconcileScenarios(t *testing.T) {
	fixtureFile, err := ioutil.ReadFile("./fixtures/reconcile.yaml")
	require.NoError(t, err)

	var entries []ReconcileEntry
	err = yaml.Unmarshal(fixtureFile, &entries)
	require.NoError(t, err)

	require.NotEmpty(t, entries)

	for i := range entries {
		entries[i].Test(t)
	}
}

func TestReconcileOperatorSumsMatchPeriodTotals(t *testing.T) {
	balances := []BalanceRecord{
		{OperatorID: "op-3", Date: "2026-03-01", Opening: mustDecimal(t, "10.10"), CashTotal: mustDecimal(t, "1.01"), CardTotal: mustDecimal(t, "0.33"), Closing: mustDecimal(t, "11.44")},
		{OperatorID: "op-1", Date: "2026-03-01", Opening: mustDecimal(t, "20.20"), CashTotal: mustDecimal(t, "2.02"), CardTotal: mustDecimal(t, "0.66"), Closing: mustDecimal(t, "22.88")},
		{OperatorID: "op-2", Date: "2026-03-02", Opening: mustDecimal(t, "30.30"), CashTotal: mustDecimal(t, "3.03"), CardTotal: mustDecimal(t, "0.99"), Closing: mustDecimal(t, "34.32")},
		{OperatorID: "op-1", Date: "2026-03-02", Opening: mustDecimal(t, "22.88"), CashTotal: mustDecimal(t, "4.04"), CardTotal: mustDecimal(t, "1.32"), Closing: mustDecimal(t, "28.24")},
	}

	engine := NewEngine(stubBalances{records: balances}, stubWithdraws{}, stubSales{})

	summary, err := engine.Reconcile("2026-03-01", "2026-03-02")
	require.NoError(t, err)

	// Stable operator-id order regardless of input order.
	require.Len(t, summary.OperatorTotals, 3)
	assert.Equal(t, "op-1", summary.OperatorTotals[0].OperatorID)
	assert.Equal(t, "op-2", summary.OperatorTotals[1].OperatorID)
	assert.Equal(t, "op-3", summary.OperatorTotals[2].OperatorID)

	opening := decimal.Zero
	cashTotal := decimal.Zero
	cardTotal := decimal.Zero
	closing := decimal.Zero

	for _, totals := range summary.OperatorTotals {
		opening = opening.Add(totals.Opening)
		cashTotal = cashTotal.Add(totals.CashTotal)
		cardTotal = cardTotal.Add(totals.CardTotal)
		closing = closing.Add(totals.Closing)
	}

	assert.True(t, opening.Equal(summary.PeriodTotals.Opening))
	assert.True(t, cashTotal.Equal(summary.PeriodTotals.CashTotal))
	assert.True(t, cardTotal.Equal(summary.PeriodTotals.CardTotal))
	assert.True(t, closing.Equal(summary.PeriodTotals.Closing))
}

func TestReconcileWithdrawTotalEqualsSum(t *testing.T) {
	withdraws := []WithdrawRecord{
		{ID: 1, AdminID: 1, Amount: mustDecimal(t, "150.00"), CreatedAt: time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)},
		{ID: 2, AdminID: 1, Amount: mustDecimal(t, "0.01"), CreatedAt: time.Date(2026, time.March, 1, 11, 0, 0, 0, time.UTC)},
		{ID: 3, AdminID: 2, Amount: mustDecimal(t, "19.99"), CreatedAt: time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)},
	}

	sales := SalesSummary{
		CashTotal:  mustDecimal(t, "500.00"),
		CardTotal:  mustDecimal(t, "120.00"),
		TotalSales: mustDecimal(t, "620.00"),
	}

	engine := NewEngine(stubBalances{}, stubWithdraws{records: withdraws}, stubSales{summary: sales})

	summary, err := engine.Reconcile("2026-03-01", "2026-03-02")
	require.NoError(t, err)

	assertDecimal(t, "170.00", summary.PeriodTotals.WithdrawTotal, "withdraw_total")
	assertDecimal(t, "330.00", summary.PeriodTotals.NetCash, "net_cash")
}

func TestReconcileFailsWholeCallOnSourceError(t *testing.T) {
	retrievalErr := &types.RetrievalError{Code: "admin.balance.fetch_failed"}

	engine := NewEngine(stubBalances{err: retrievalErr}, stubWithdraws{}, stubSales{})

	summary, err := engine.Reconcile("2026-03-01", "2026-03-02")
	assert.Nil(t, summary)

	var got *types.RetrievalError
	assert.True(t, errors.As(err, &got))
	assert.Equal(t, "admin.balance.fetch_failed", got.Code)
}

func TestReconcileDoesNotDegradeOnSalesError(t *testing.T) {
	retrievalErr := &types.RetrievalError{Code: "admin.sales.fetch_failed"}

	balances := []BalanceRecord{
		{OperatorID: "op-1", Date: "2026-03-01", Opening: mustDecimal(t, "10.00"), CashTotal: mustDecimal(t, "5.00"), CardTotal: mustDecimal(t, "1.00"), Closing: mustDecimal(t, "16.00")},
	}

	engine := NewEngine(stubBalances{records: balances}, stubWithdraws{}, stubSales{err: retrievalErr})

	summary, err := engine.Reconcile("2026-03-01", "2026-03-01")

	// No partial result: balance totals are not returned without sales data.
	assert.Nil(t, summary)
	assert.Error(t, err)
}
