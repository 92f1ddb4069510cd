package models

// AccountType classifies a payment account.
type AccountType string

const (
	AccountTypePersonal   AccountType = "personal"
	AccountTypeBusiness   AccountType = "business"
	AccountTypeFamily     AccountType = "family"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeOther      AccountType = "other"
)

// ParseAccountType maps a raw string to an AccountType, defaulting to "other"
// for unknown values (lenient on legacy backup imports).
func ParseAccountType(s string) AccountType {
	switch AccountType(s) {
	case AccountTypePersonal, AccountTypeBusiness, AccountTypeFamily,
		AccountTypeSavings, AccountTypeInvestment, AccountTypeOther:
		return AccountType(s)
	}
	return AccountTypeOther
}

// Account is a named payment source used to tag expenses. It is not a ledger
// and carries no balance. Names are unique per user, case-insensitively.
// Expenses reference accounts by ID, never by name, so renames cannot orphan
// existing references.
type Account struct {
	Base
	UserID      string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `json:"description"`
	Type        AccountType `gorm:"not null;default:'personal'" json:"type"`

	DailyExpenses     []DailyExpense     `gorm:"foreignKey:AccountID" json:"daily_expenses,omitempty"`
	RecurringExpenses []RecurringExpense `gorm:"foreignKey:AccountID" json:"recurring_expenses,omitempty"`
}
