package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendwise/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password every test user is created with.
const TestPassword = "Password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	username := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithUsername(t, db, username)
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  username,
		IsActive:     true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates a personal account with a unique name.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID string) *models.Account {
	t.Helper()
	return CreateTestAccountWithName(t, db, userID, fmt.Sprintf("Test Account %d", nextID()))
}

// CreateTestAccountWithName creates an account with the given name.
func CreateTestAccountWithName(t *testing.T, db *gorm.DB, userID, name string) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID: userID,
		Name:   name,
		Type:   models.AccountTypePersonal,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestDailyExpense creates a daily expense with the given amount (in cents).
func CreateTestDailyExpense(t *testing.T, db *gorm.DB, userID string, date time.Time, amountCents int64, accountID *string) *models.DailyExpense {
	t.Helper()

	expense := &models.DailyExpense{
		UserID:      userID,
		Date:        date,
		Category:    "Groceries",
		Description: fmt.Sprintf("Test expense %d", nextID()),
		AmountCents: amountCents,
		AccountID:   accountID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test daily expense: %v", err)
	}
	return expense
}

// CreateTestRecurringExpense creates a recurring expense with the given amount (in cents).
func CreateTestRecurringExpense(t *testing.T, db *gorm.DB, userID string, frequency models.Frequency, amountCents int64, accountID *string) *models.RecurringExpense {
	t.Helper()

	expense := &models.RecurringExpense{
		UserID:      userID,
		Name:        fmt.Sprintf("Test recurring %d", nextID()),
		Category:    "Subscriptions",
		AmountCents: amountCents,
		Frequency:   frequency,
		AccountID:   accountID,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test recurring expense: %v", err)
	}
	return expense
}

// CreateTestSession creates a session with the given token hash.
func CreateTestSession(t *testing.T, db *gorm.DB, userID, tokenHash string) *models.Session {
	t.Helper()

	session := &models.Session{
		UserID:         userID,
		TokenHash:      tokenHash,
		LastActivityAt: time.Now(),
	}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create test session: %v", err)
	}
	return session
}
