package models

import "time"

// User represents a registered user. Usernames are normalized to lowercase
// at the boundary; the original casing survives only in DisplayName.
type User struct {
	Base
	Username            string     `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash        string     `gorm:"not null" json:"-"`
	DisplayName         string     `json:"display_name"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`

	Accounts          []Account          `gorm:"foreignKey:UserID" json:"accounts,omitempty"`
	DailyExpenses     []DailyExpense     `gorm:"foreignKey:UserID" json:"daily_expenses,omitempty"`
	RecurringExpenses []RecurringExpense `gorm:"foreignKey:UserID" json:"recurring_expenses,omitempty"`
}
