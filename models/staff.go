package models

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/openretail/backoffice/config"
)

// Staff is the back-office directory row for admins and register operators.
// Identities are issued by the external auth service, rows here are upserted
// from verified session claims.
type Staff struct {
	ID          uint64         `json:"id" gorm:"primaryKey"`
	UID         string         `json:"uid"`
	Email       string         `json:"email"`
	DisplayName sql.NullString `json:"display_name"`
	Role        string         `json:"role"`
	State       string         `json:"state"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (s *Staff) Name() string {
	if s.DisplayName.Valid {
		return s.DisplayName.String
	}

	return s.UID
}

// StaffNameByID resolves an admin id to a display name, falling back to the
// raw identifier when no directory row exists. Never fails.
func StaffNameByID(id uint64) string {
	var staff *Staff

	if result := config.DataBase.First(&staff, "id = ?", id); result.Error != nil {
		return strconv.FormatUint(id, 10)
	}

	return staff.Name()
}

// OperatorNameByUID resolves a register operator uid the same way, the uid
// itself is returned unchanged when unresolved.
func OperatorNameByUID(uid string) string {
	var staff *Staff

	if result := config.DataBase.First(&staff, "uid = ?", uid); result.Error != nil {
		return uid
	}

	return staff.Name()
}
