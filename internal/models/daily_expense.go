package models

import "time"

// DailyExpense is a single dated expenditure. Amounts are stored as int64
// cents to keep sums exact. AccountID is nil for unassigned expenses.
// Records are immutable once created except for deletion.
type DailyExpense struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        time.Time `gorm:"not null" json:"date"`
	Category    string    `gorm:"not null" json:"category"`
	Description string    `gorm:"not null" json:"description"`
	AmountCents int64     `gorm:"type:bigint;not null" json:"amount_cents"`
	AccountID   *string   `gorm:"type:uuid;index" json:"account_id,omitempty"`

	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}
