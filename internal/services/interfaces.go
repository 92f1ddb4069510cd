package services

import (
	"time"

	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// UserServicer defines the contract for user and credential business logic.
type UserServicer interface {
	Register(username, password, displayName string) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
	ChangePassword(userID, currentPassword, newPassword string) error
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// SessionServicer defines the contract for idle-session tracking.
type SessionServicer interface {
	Create(userID, tokenHash string) (*models.Session, error)
	// Touch stamps the session's last activity. If the idle timeout has
	// elapsed the session is deleted and ErrSessionExpired is returned.
	Touch(tokenHash string) (*models.Session, error)
	RemainingMinutes(session *models.Session) int
	Revoke(tokenHash string) error
	// RevokeOthers deletes every session of the user except the one
	// identified by keepTokenHash (used after a password change).
	RevokeOthers(userID, keepTokenHash string) error
}

// AccountServicer defines the contract for payment-account business logic.
type AccountServicer interface {
	CreateAccount(userID, name, description string, accountType models.AccountType) (*models.Account, error)
	GetUserAccounts(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(userID, accountID string) (*models.Account, error)
	DeleteAccount(userID, accountID string) error
}

// DailyExpenseFilter holds optional filter parameters for listing daily expenses.
// Month and Year must be provided together.
type DailyExpenseFilter struct {
	Month     *int
	Year      *int
	Category  *string
	AccountID *string
}

// ExpenseServicer defines the contract for expense business logic.
type ExpenseServicer interface {
	AddDailyExpense(userID string, date time.Time, category, description string, amountCents int64, accountID *string) (*models.DailyExpense, error)
	GetDailyExpenses(userID string, page pagination.PageRequest, filter DailyExpenseFilter) (*pagination.PageResponse[models.DailyExpense], error)
	DeleteDailyExpense(userID, expenseID string) error
	AddRecurringExpense(userID, name, category string, amountCents int64, frequency models.Frequency, accountID *string) (*models.RecurringExpense, error)
	GetRecurringExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.RecurringExpense], error)
	DeleteRecurringExpense(userID, expenseID string) error
}

// CategoryTotal is a per-category sum of the month's daily expenses.
type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// AccountTotal buckets the month's spending by payment account. Daily amounts
// come from the filtered month; recurring amounts are monthly equivalents of
// every standing obligation, never date-filtered.
type AccountTotal struct {
	Account   string  `json:"account"`
	Daily     float64 `json:"daily"`
	Recurring float64 `json:"recurring"`
	Total     float64 `json:"total"`
}

// MonthlyReport aggregates one calendar month of a user's spending.
type MonthlyReport struct {
	Month                 int             `json:"month"`
	Year                  int             `json:"year"`
	DailyTotal            float64         `json:"daily_total"`
	RecurringMonthlyTotal float64         `json:"recurring_monthly_total"`
	CombinedTotal         float64         `json:"combined_total"`
	ByCategory            []CategoryTotal `json:"by_category"`
	ByAccount             []AccountTotal  `json:"by_account"`
}

// ReportServicer defines the contract for monthly aggregation.
type ReportServicer interface {
	MonthlyReport(userID string, month time.Month, year int) (*MonthlyReport, error)
}

// ImportSummary reports what an accepted backup replaced.
type ImportSummary struct {
	Accounts          int `json:"accounts"`
	DailyExpenses     int `json:"daily_expenses"`
	RecurringExpenses int `json:"recurring_expenses"`
}

// BackupServicer defines the contract for export/import of a user's data.
type BackupServicer interface {
	Export(userID string) (*BackupFile, error)
	Import(userID string, data []byte) (*ImportSummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
