package models

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/openretail/backoffice/config"
	"github.com/openretail/backoffice/controllers/entities"
	"github.com/openretail/backoffice/reconciliation"
	"github.com/openretail/backoffice/types"
)

// Withdraw is a single cash removal from the register, recorded by an admin.
// StaffID and CreatedAt are assigned at creation and immutable, an update
// may only touch amount and note. Deletion is permanent.
type Withdraw struct {
	ID        uint64          `json:"id" gorm:"primaryKey"`
	UUID      uuid.UUID       `json:"uuid" gorm:"default:gen_random_uuid()"`
	StaffID   uint64          `json:"staff_id"`
	Amount    decimal.Decimal `json:"amount"`
	Note      sql.NullString  `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// normalizeNote trims the note and stores NULL when nothing remains.
func normalizeNote(note string) sql.NullString {
	trimmed := strings.TrimSpace(note)

	return sql.NullString{String: trimmed, Valid: len(trimmed) > 0}
}

// ListWithdraws returns the window's withdrawals ordered most recent first.
// The descending order is part of the dashboard contract.
func ListWithdraws(startDate string, endDate string) ([]*Withdraw, error) {
	if err := types.ValidateDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	var withdraws []*Withdraw

	result := config.DataBase.
		Where("CAST(\"created_at\" AS DATE) BETWEEN ? AND ?", startDate, endDate).
		Order("created_at DESC").
		Find(&withdraws)

	if result.Error != nil {
		return nil, &types.RetrievalError{Code: "admin.withdraw.fetch_failed", Err: result.Error}
	}

	return withdraws, nil
}

func FindWithdraw(id uint64) (*Withdraw, error) {
	var withdraw *Withdraw

	result := config.DataBase.First(&withdraw, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, &types.NotFoundError{Code: "admin.withdraw.not_found"}
	}
	if result.Error != nil {
		return nil, &types.RetrievalError{Code: "admin.withdraw.fetch_failed", Err: result.Error}
	}

	return withdraw, nil
}

func CreateWithdraw(staff *Staff, amount decimal.Decimal, note string) (*Withdraw, error) {
	if !amount.IsPositive() {
		return nil, &types.ValidationError{Code: "admin.withdraw.non_positive_amount"}
	}

	withdraw := &Withdraw{
		StaffID: staff.ID,
		Amount:  amount,
		Note:    normalizeNote(note),
	}

	if result := config.DataBase.Create(withdraw); result.Error != nil {
		return nil, &types.RetrievalError{Code: "admin.withdraw.create_failed", Err: result.Error}
	}

	return withdraw, nil
}

// Update changes amount and note only. The recording admin and creation
// time never move across an update.
func (w *Withdraw) Update(amount decimal.Decimal, note string) error {
	if !amount.IsPositive() {
		return &types.ValidationError{Code: "admin.withdraw.non_positive_amount"}
	}

	normalized := normalizeNote(note)

	result := config.DataBase.Model(w).Updates(map[string]interface{}{
		"amount": amount,
		"note":   normalized,
	})

	if result.Error != nil {
		return &types.RetrievalError{Code: "admin.withdraw.update_failed", Err: result.Error}
	}

	w.Amount = amount
	w.Note = normalized

	return nil
}

func (w *Withdraw) Delete() error {
	if result := config.DataBase.Delete(w); result.Error != nil {
		return &types.RetrievalError{Code: "admin.withdraw.delete_failed", Err: result.Error}
	}

	return nil
}

func (w *Withdraw) Staff() *Staff {
	staff := &Staff{}

	config.DataBase.First(&staff, "id = ?", w.StaffID)

	return staff
}

// DateKey is the calendar date the withdrawal affects, used to evict every
// cached summary range containing it.
func (w *Withdraw) DateKey() string {
	return w.CreatedAt.Format(types.DateFormat)
}

func (w *Withdraw) ToRecord() reconciliation.WithdrawRecord {
	record := reconciliation.WithdrawRecord{
		ID:        w.ID,
		UUID:      w.UUID,
		AdminID:   w.StaffID,
		Amount:    w.Amount,
		CreatedAt: w.CreatedAt,
	}

	if w.Note.Valid {
		note := w.Note.String
		record.Note = &note
	}

	return record
}

func (w *Withdraw) ToJSON() entities.WithdrawEntity {
	entity := entities.WithdrawEntity{
		ID:        w.ID,
		UUID:      w.UUID,
		Admin:     StaffNameByID(w.StaffID),
		Amount:    w.Amount,
		CreatedAt: w.CreatedAt,
	}

	if w.Note.Valid {
		note := w.Note.String
		entity.Note = &note
	}

	return entity
}

// WithdrawLedger adapts the withdraws table to the reconciliation engine.
type WithdrawLedger struct{}

func (WithdrawLedger) ListWithdraws(startDate string, endDate string) ([]reconciliation.WithdrawRecord, error) {
	withdraws, err := ListWithdraws(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records := make([]reconciliation.WithdrawRecord, 0, len(withdraws))
	for _, withdraw := range withdraws {
		records = append(records, withdraw.ToRecord())
	}

	return records, nil
}
