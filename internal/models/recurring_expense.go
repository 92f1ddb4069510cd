package models

// Frequency is how often a recurring expense is charged.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringExpense is a standing obligation charged at a fixed frequency.
// It carries no due date or posting history; reports normalize it to a
// monthly-equivalent amount.
type RecurringExpense struct {
	Base
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"not null" json:"category"`
	AmountCents int64     `gorm:"type:bigint;not null" json:"amount_cents"`
	Frequency   Frequency `gorm:"not null" json:"frequency"`
	AccountID   *string   `gorm:"type:uuid;index" json:"account_id,omitempty"`

	Account *Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}
