package services

import (
	"testing"
	"time"

	"spendwise/internal/testutil"
)

func TestRegister(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.Register("alice", "Str0ngPass", "")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected non-empty user ID")
		}
		if user.Username != "alice" {
			t.Errorf("expected username alice, got %s", user.Username)
		}
		if user.DisplayName != "alice" {
			t.Errorf("expected display name to default to username, got %s", user.DisplayName)
		}
		if !user.IsActive {
			t.Error("expected user to be active")
		}
	})

	t.Run("username_normalized_to_lowercase", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.Register("Alice_99", "Str0ngPass", "")
		testutil.AssertNoError(t, err)

		if user.Username != "alice_99" {
			t.Errorf("expected lowercased username, got %s", user.Username)
		}
		// The original casing is kept as the default display name.
		if user.DisplayName != "Alice_99" {
			t.Errorf("expected display name Alice_99, got %s", user.DisplayName)
		}
	})

	t.Run("duplicate_username_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Register("bob", "Str0ngPass", "")
		testutil.AssertNoError(t, err)

		_, err = svc.Register("BOB", "Str0ngPass", "")
		testutil.AssertAppError(t, err, "DUPLICATE_USERNAME")
	})

	t.Run("empty_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Register("", "Str0ngPass", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("weak_passwords", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		weak := []string{
			"Ab1",          // too short
			"alllowercase", // one character class
			"password123",  // two classes
			"PASSWORD123",  // two classes
			"Aé1!éé",       // 9 bytes but only 6 characters
		}
		for _, password := range weak {
			if _, err := svc.Register("carol", password, ""); err == nil {
				t.Errorf("expected weak-password error for %q", password)
			} else {
				testutil.AssertAppError(t, err, "WEAK_PASSWORD")
			}
		}
	})

	t.Run("explicit_display_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.Register("dave", "Str0ngPass", "Dave R.")
		testutil.AssertNoError(t, err)

		if user.DisplayName != "Dave R." {
			t.Errorf("expected display name Dave R., got %s", user.DisplayName)
		}
	})
}

func TestAttemptLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		user, err := svc.AttemptLogin(created.Username, testutil.TestPassword)
		testutil.AssertNoError(t, err)

		if user.ID != created.ID {
			t.Errorf("expected user ID %s, got %s", created.ID, user.ID)
		}
		if user.LastLoginAt == nil {
			t.Error("expected last login timestamp to be set")
		}
	})

	t.Run("unknown_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.AttemptLogin("ghost", testutil.TestPassword)
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		_, err := svc.AttemptLogin(created.Username, "WrongPass1")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")

		var user struct{ FailedLoginAttempts int }
		db.Table("users").Where("id = ?", created.ID).Scan(&user)
		if user.FailedLoginAttempts != 1 {
			t.Errorf("expected 1 failed attempt, got %d", user.FailedLoginAttempts)
		}
	})

	t.Run("lockout_after_max_failures", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		for i := 0; i < 5; i++ {
			_, err := svc.AttemptLogin(created.Username, "WrongPass1")
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		}

		// Even the correct password is rejected while locked.
		_, err := svc.AttemptLogin(created.Username, testutil.TestPassword)
		testutil.AssertAppError(t, err, "ACCOUNT_LOCKED")
	})

	t.Run("failures_below_threshold_do_not_lock", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		for i := 0; i < 4; i++ {
			_, err := svc.AttemptLogin(created.Username, "WrongPass1")
			testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		}

		_, err := svc.AttemptLogin(created.Username, testutil.TestPassword)
		testutil.AssertNoError(t, err)
	})

	t.Run("elapsed_lock_clears", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		expired := time.Now().Add(-time.Minute)
		db.Model(created).Updates(map[string]interface{}{
			"failed_login_attempts": 5,
			"locked_until":          expired,
		})

		user, err := svc.AttemptLogin(created.Username, testutil.TestPassword)
		testutil.AssertNoError(t, err)

		if user.FailedLoginAttempts != 0 {
			t.Errorf("expected failed attempts reset, got %d", user.FailedLoginAttempts)
		}
		if user.LockedUntil != nil {
			t.Error("expected lock to be cleared")
		}
	})

	t.Run("success_resets_failure_count", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		_, _ = svc.AttemptLogin(created.Username, "WrongPass1")
		_, _ = svc.AttemptLogin(created.Username, "WrongPass1")

		user, err := svc.AttemptLogin(created.Username, testutil.TestPassword)
		testutil.AssertNoError(t, err)
		if user.FailedLoginAttempts != 0 {
			t.Errorf("expected failed attempts reset, got %d", user.FailedLoginAttempts)
		}
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		err := svc.ChangePassword(created.ID, testutil.TestPassword, "NewStr0ngPass")
		testutil.AssertNoError(t, err)

		// Old password no longer works; new one does.
		_, err = svc.AttemptLogin(created.Username, testutil.TestPassword)
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
		_, err = svc.AttemptLogin(created.Username, "NewStr0ngPass")
		testutil.AssertNoError(t, err)
	})

	t.Run("incorrect_current_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		err := svc.ChangePassword(created.ID, "WrongPass1", "NewStr0ngPass")
		testutil.AssertAppError(t, err, "INCORRECT_CURRENT_PASSWORD")
	})

	t.Run("weak_new_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUser(t, db)
		err := svc.ChangePassword(created.ID, testutil.TestPassword, "weakpass")
		testutil.AssertAppError(t, err, "WEAK_PASSWORD")
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		err := svc.ChangePassword("no-such-id", testutil.TestPassword, "NewStr0ngPass")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestGetUserByUsername(t *testing.T) {
	t.Run("found_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created := testutil.CreateTestUserWithUsername(t, db, "frank")
		user, err := svc.GetUserByUsername("FRANK")
		testutil.AssertNoError(t, err)

		if user.ID != created.ID {
			t.Errorf("expected user ID %s, got %s", created.ID, user.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByUsername("nonexistent")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("inactive_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user := testutil.CreateTestUserWithUsername(t, db, "gone")
		db.Model(user).Update("is_active", false)

		_, err := svc.GetUserByUsername("gone")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
