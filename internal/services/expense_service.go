package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// expenseService handles daily and recurring expense business logic.
type expenseService struct {
	db             *gorm.DB
	accountService AccountServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, accountService AccountServicer) ExpenseServicer {
	return &expenseService{
		db:             db,
		accountService: accountService,
	}
}

// AddDailyExpense records a single dated expenditure. The account reference,
// when present, must belong to the same user.
func (s *expenseService) AddDailyExpense(userID string, date time.Time, category, description string, amountCents int64, accountID *string) (*models.DailyExpense, error) {
	if amountCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	if err := s.verifyAccount(userID, accountID); err != nil {
		return nil, err
	}

	expense := &models.DailyExpense{
		UserID:      userID,
		Date:        date,
		Category:    category,
		Description: description,
		AmountCents: amountCents,
		AccountID:   accountID,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetDailyExpenses retrieves a paginated, filtered list of daily expenses in
// insertion order.
func (s *expenseService) GetDailyExpenses(userID string, page pagination.PageRequest, filter DailyExpenseFilter) (*pagination.PageResponse[models.DailyExpense], error) {
	page.Defaults()

	base := s.db.Model(&models.DailyExpense{}).Where("user_id = ?", userID)
	base = applyDailyFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.DailyExpense
	if err := base.Preload("Account").Order("created_at").
		Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteDailyExpense removes exactly one expense by its stable identifier.
// Unknown identifiers are an error, not a silent no-op.
func (s *expenseService) DeleteDailyExpense(userID, expenseID string) error {
	res := s.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.DailyExpense{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// AddRecurringExpense records a standing obligation.
func (s *expenseService) AddRecurringExpense(userID, name, category string, amountCents int64, frequency models.Frequency, accountID *string) (*models.RecurringExpense, error) {
	if amountCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}

	switch frequency {
	case models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "frequency must be weekly, monthly, or yearly")
	}

	if err := s.verifyAccount(userID, accountID); err != nil {
		return nil, err
	}

	expense := &models.RecurringExpense{
		UserID:      userID,
		Name:        name,
		Category:    category,
		AmountCents: amountCents,
		Frequency:   frequency,
		AccountID:   accountID,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return expense, nil
}

// GetRecurringExpenses retrieves a paginated list of recurring expenses in
// insertion order.
func (s *expenseService) GetRecurringExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.RecurringExpense], error) {
	page.Defaults()

	base := s.db.Model(&models.RecurringExpense{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.RecurringExpense
	if err := base.Preload("Account").Order("created_at").
		Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteRecurringExpense removes exactly one recurring expense by ID.
func (s *expenseService) DeleteRecurringExpense(userID, expenseID string) error {
	res := s.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.RecurringExpense{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// verifyAccount checks that a referenced account exists and belongs to the user.
func (s *expenseService) verifyAccount(userID string, accountID *string) error {
	if accountID == nil {
		return nil
	}
	_, err := s.accountService.GetAccountByID(userID, *accountID)
	return err
}

// applyDailyFilters adds the optional list filters to a query.
func applyDailyFilters(q *gorm.DB, filter DailyExpenseFilter) *gorm.DB {
	if filter.Month != nil && filter.Year != nil {
		start := time.Date(*filter.Year, time.Month(*filter.Month), 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("date >= ? AND date < ?", start, start.AddDate(0, 1, 0))
	}
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	if filter.AccountID != nil {
		q = q.Where("account_id = ?", *filter.AccountID)
	}
	return q
}
