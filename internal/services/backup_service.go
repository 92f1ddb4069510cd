package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/uuid"
)

// The backup interchange format keeps the legacy field names so exports made
// by older installations keep importing cleanly.
const (
	freqWeeklyWire  = "Settimanale"
	freqMonthlyWire = "Mensile"
	freqYearlyWire  = "Annuale"
)

const backupDateLayout = "2006-01-02"

// BackupDaily is one daily expense record on the wire.
type BackupDaily struct {
	Date        string  `json:"data"`
	Category    string  `json:"categoria"`
	Description string  `json:"descrizione"`
	Amount      float64 `json:"importo"`
	Account     *string `json:"conto"`
}

// BackupRecurring is one recurring expense record on the wire.
type BackupRecurring struct {
	Name      string  `json:"nome"`
	Category  string  `json:"categoria"`
	Amount    float64 `json:"importo"`
	Frequency string  `json:"frequenza"`
	Account   *string `json:"conto"`
}

// BackupAccount is one payment account record on the wire.
type BackupAccount struct {
	Name        string `json:"nome"`
	Description string `json:"descrizione"`
	Type        string `json:"tipo"`
	CreatedAt   string `json:"creato_il"`
}

// BackupFile is the full export of a user's domain data. The export metadata
// is for traceability only; import ignores it.
type BackupFile struct {
	DailyExpenses     []BackupDaily     `json:"spese_giornaliere"`
	RecurringExpenses []BackupRecurring `json:"spese_ricorrenti"`
	Accounts          []BackupAccount   `json:"conti"`
	ExportDate        string            `json:"export_date,omitempty"`
	Username          string            `json:"username,omitempty"`
}

// backupService serializes and restores a user's domain data.
type backupService struct {
	db *gorm.DB
}

// NewBackupService creates a new BackupServicer.
func NewBackupService(db *gorm.DB) BackupServicer {
	return &backupService{db: db}
}

// Export serializes the user's accounts and expenses. Account references are
// written as account names, matching the legacy format.
func (s *backupService) Export(userID string) (*BackupFile, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.Account
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	var daily []models.DailyExpense
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&daily).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var recurring []models.RecurringExpense
	if err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&recurring).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	file := &BackupFile{
		DailyExpenses:     make([]BackupDaily, 0, len(daily)),
		RecurringExpenses: make([]BackupRecurring, 0, len(recurring)),
		Accounts:          make([]BackupAccount, 0, len(accounts)),
		ExportDate:        time.Now().Format(time.RFC3339),
		Username:          user.Username,
	}

	for _, e := range daily {
		file.DailyExpenses = append(file.DailyExpenses, BackupDaily{
			Date:        e.Date.UTC().Format(backupDateLayout),
			Category:    e.Category,
			Description: e.Description,
			Amount:      float64(e.AmountCents) / 100,
			Account:     accountName(e.AccountID, names),
		})
	}

	for _, e := range recurring {
		file.RecurringExpenses = append(file.RecurringExpenses, BackupRecurring{
			Name:      e.Name,
			Category:  e.Category,
			Amount:    float64(e.AmountCents) / 100,
			Frequency: frequencyToWire(e.Frequency),
			Account:   accountName(e.AccountID, names),
		})
	}

	for _, a := range accounts {
		file.Accounts = append(file.Accounts, BackupAccount{
			Name:        a.Name,
			Description: a.Description,
			Type:        string(a.Type),
			CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		})
	}

	return file, nil
}

// Import parses and validates the whole blob first, then replaces the user's
// three collections in a single transaction. A failure anywhere leaves the
// stored data untouched.
func (s *backupService) Import(userID string, data []byte) (*ImportSummary, error) {
	var file BackupFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrMalformedBackup, err)
	}

	accounts, nameIndex, err := parseBackupAccounts(userID, file.Accounts)
	if err != nil {
		return nil, err
	}

	daily := make([]models.DailyExpense, 0, len(file.DailyExpenses))
	for i, rec := range file.DailyExpenses {
		date, parseErr := time.Parse(backupDateLayout, rec.Date)
		if parseErr != nil {
			return nil, malformed("daily expense %d: invalid date %q", i, rec.Date)
		}
		cents, ok := amountToCents(rec.Amount)
		if !ok {
			return nil, malformed("daily expense %d: invalid amount %v", i, rec.Amount)
		}
		daily = append(daily, models.DailyExpense{
			UserID:      userID,
			Date:        date,
			Category:    rec.Category,
			Description: rec.Description,
			AmountCents: cents,
			AccountID:   resolveAccount(rec.Account, nameIndex),
		})
	}

	recurring := make([]models.RecurringExpense, 0, len(file.RecurringExpenses))
	for i, rec := range file.RecurringExpenses {
		freq, ok := frequencyFromWire(rec.Frequency)
		if !ok {
			return nil, malformed("recurring expense %d: unknown frequency %q", i, rec.Frequency)
		}
		cents, ok := amountToCents(rec.Amount)
		if !ok {
			return nil, malformed("recurring expense %d: invalid amount %v", i, rec.Amount)
		}
		recurring = append(recurring, models.RecurringExpense{
			UserID:      userID,
			Name:        rec.Name,
			Category:    rec.Category,
			AmountCents: cents,
			Frequency:   freq,
			AccountID:   resolveAccount(rec.Account, nameIndex),
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.DailyExpense{}, &models.RecurringExpense{}, &models.Account{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if len(accounts) > 0 {
			if err := tx.Create(accounts).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if len(daily) > 0 {
			if err := tx.Create(daily).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if len(recurring) > 0 {
			if err := tx.Create(recurring).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportSummary{
		Accounts:          len(accounts),
		DailyExpenses:     len(daily),
		RecurringExpenses: len(recurring),
	}, nil
}

// parseBackupAccounts validates the account records and pre-assigns IDs so
// expense records can resolve their by-name references before anything is
// written. Duplicate names within one file are rejected.
func parseBackupAccounts(userID string, records []BackupAccount) ([]models.Account, map[string]string, error) {
	accounts := make([]models.Account, 0, len(records))
	nameIndex := make(map[string]string, len(records))

	for i, rec := range records {
		if rec.Name == "" {
			return nil, nil, malformed("account %d: name is required", i)
		}
		key := strings.ToLower(rec.Name)
		if _, exists := nameIndex[key]; exists {
			return nil, nil, malformed("account %d: duplicate name %q", i, rec.Name)
		}

		createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt)
		if err != nil {
			createdAt = time.Now()
		}

		account := models.Account{
			UserID:      userID,
			Name:        rec.Name,
			Description: rec.Description,
			Type:        models.ParseAccountType(rec.Type),
		}
		account.ID = uuid.New()
		account.CreatedAt = createdAt

		nameIndex[key] = account.ID
		accounts = append(accounts, account)
	}

	return accounts, nameIndex, nil
}

// resolveAccount maps a by-name reference to the restored account's ID.
// Unresolved names import as unassigned rather than failing the restore;
// legacy exports could carry orphaned references.
func resolveAccount(name *string, nameIndex map[string]string) *string {
	if name == nil || *name == "" {
		return nil
	}
	if id, ok := nameIndex[strings.ToLower(*name)]; ok {
		return &id
	}
	return nil
}

// amountToCents converts a wire amount in currency units to int64 cents.
func amountToCents(amount float64) (int64, bool) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, false
	}
	return int64(math.Round(amount * 100)), true
}

func accountName(accountID *string, names map[string]string) *string {
	if accountID == nil {
		return nil
	}
	if name, ok := names[*accountID]; ok {
		return &name
	}
	return nil
}

func frequencyToWire(f models.Frequency) string {
	switch f {
	case models.FrequencyWeekly:
		return freqWeeklyWire
	case models.FrequencyYearly:
		return freqYearlyWire
	default:
		return freqMonthlyWire
	}
}

func frequencyFromWire(s string) (models.Frequency, bool) {
	switch s {
	case freqWeeklyWire:
		return models.FrequencyWeekly, true
	case freqMonthlyWire:
		return models.FrequencyMonthly, true
	case freqYearlyWire:
		return models.FrequencyYearly, true
	}
	return "", false
}

func malformed(format string, args ...interface{}) *apperrors.AppError {
	return apperrors.WithMessage(apperrors.ErrMalformedBackup, fmt.Sprintf(format, args...))
}
