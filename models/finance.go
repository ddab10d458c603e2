package models

import (
	"github.com/openretail/backoffice/reconciliation"
)

// NewFinanceEngine wires the reconciliation engine to the database-backed
// ledgers.
func NewFinanceEngine() *reconciliation.Engine {
	return reconciliation.NewEngine(BalanceLedger{}, WithdrawLedger{}, InvoiceSales{})
}
