package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WithdrawEntity struct {
	ID        uint64          `json:"id"`
	UUID      uuid.UUID       `json:"uuid"`
	Admin     string          `json:"admin"`
	Amount    decimal.Decimal `json:"amount"`
	Note      *string         `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}
