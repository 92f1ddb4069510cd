package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
)

const dateLayout = "2006-01-02"

// ExpenseHandler handles daily and recurring expense requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// AddDailyExpenseRequest represents the request payload for recording a daily expense.
type AddDailyExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Category    string  `json:"category" binding:"required,max=100"`
	Description string  `json:"description" binding:"required,max=500"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	AccountID   *string `json:"account_id" binding:"omitempty,uuid"`
}

// AddRecurringExpenseRequest represents the request payload for recording a recurring expense.
type AddRecurringExpenseRequest struct {
	Name      string  `json:"name" binding:"required,max=100"`
	Category  string  `json:"category" binding:"required,max=100"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Frequency string  `json:"frequency" binding:"required,frequency"`
	AccountID *string `json:"account_id" binding:"omitempty,uuid"`
}

// listDailyQuery holds pagination plus the optional list filters.
type listDailyQuery struct {
	pagination.PageRequest
	Month     *int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year      *int    `form:"year" binding:"omitempty,min=1970,max=9999"`
	Category  *string `form:"category"`
	AccountID *string `form:"account_id" binding:"omitempty,uuid"`
}

// AddDailyExpense records a daily expense
// @Summary     Add a daily expense
// @Description Record a single dated expenditure for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddDailyExpenseRequest true "Expense details"
// @Success     201 {object} models.DailyExpense "Expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/daily [post]
func (h *ExpenseHandler) AddDailyExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddDailyExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be in YYYY-MM-DD format"))
		return
	}

	expense, err := h.expenseService.AddDailyExpense(userID, date, req.Category, req.Description, amountToCents(req.Amount), req.AccountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_DAILY_EXPENSE", "daily_expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"category": req.Category, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetDailyExpenses lists daily expenses with optional filters
// @Summary     List daily expenses
// @Description Get a paginated list of daily expenses, optionally filtered by month/year, category, and account
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Param       month query int false "Calendar month (1-12), requires year"
// @Param       year query int false "Calendar year"
// @Param       category query string false "Category label"
// @Param       account_id query string false "Account ID"
// @Success     200 {object} pagination.PageResponse[models.DailyExpense] "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/daily [get]
func (h *ExpenseHandler) GetDailyExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query listDailyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if (query.Month == nil) != (query.Year == nil) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "month and year must be provided together"))
		return
	}

	filter := services.DailyExpenseFilter{
		Month:     query.Month,
		Year:      query.Year,
		Category:  query.Category,
		AccountID: query.AccountID,
	}

	result, err := h.expenseService.GetDailyExpenses(userID, query.PageRequest, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteDailyExpense deletes one daily expense by ID
// @Summary     Delete a daily expense
// @Description Delete exactly one daily expense by its identifier
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]string "Expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/daily/{id} [delete]
func (h *ExpenseHandler) DeleteDailyExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID := c.Param("id")
	if err := h.expenseService.DeleteDailyExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_DAILY_EXPENSE", "daily_expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}

// AddRecurringExpense records a recurring expense
// @Summary     Add a recurring expense
// @Description Record a standing obligation charged weekly, monthly, or yearly
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddRecurringExpenseRequest true "Recurring expense details"
// @Success     201 {object} models.RecurringExpense "Expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/recurring [post]
func (h *ExpenseHandler) AddRecurringExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddRecurringExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, err := h.expenseService.AddRecurringExpense(userID, req.Name, req.Category,
		amountToCents(req.Amount), models.Frequency(req.Frequency), req.AccountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_RECURRING_EXPENSE", "recurring_expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "frequency": req.Frequency, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetRecurringExpenses lists recurring expenses
// @Summary     List recurring expenses
// @Description Get a paginated list of the authenticated user's recurring expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.RecurringExpense] "Expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/recurring [get]
func (h *ExpenseHandler) GetRecurringExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.expenseService.GetRecurringExpenses(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteRecurringExpense deletes one recurring expense by ID
// @Summary     Delete a recurring expense
// @Description Delete exactly one recurring expense by its identifier
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]string "Expense deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/recurring/{id} [delete]
func (h *ExpenseHandler) DeleteRecurringExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID := c.Param("id")
	if err := h.expenseService.DeleteRecurringExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_RECURRING_EXPENSE", "recurring_expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
