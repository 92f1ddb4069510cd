package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestExpenseFlow_DailyLifecycle(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "alice", "Str0ngPass")
	accountID := app.createAccount(t, token, "Cash")

	body := fmt.Sprintf(`{"date":"2024-03-15","category":"Groceries","description":"Weekly shop","amount":25.50,"account_id":%q}`, accountID)
	rec := app.request("POST", "/api/v1/expenses/daily", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add failed: %d %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	if expense["amount_cents"].(float64) != 2550 {
		t.Errorf("expected 2550 cents, got %v", expense["amount_cents"])
	}
	expenseID := expense["id"].(string)

	rec = app.request("GET", "/api/v1/expenses/daily", "", token)
	if parseJSON(t, rec)["total_items"].(float64) != 1 {
		t.Fatal("expected 1 daily expense")
	}

	rec = app.request("DELETE", "/api/v1/expenses/daily/"+expenseID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("DELETE", "/api/v1/expenses/daily/"+expenseID, "", token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestExpenseFlow_DailyFilters(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "bob", "Str0ngPass")

	add := func(date, category string, amount float64) {
		body := fmt.Sprintf(`{"date":%q,"category":%q,"description":"x","amount":%v}`, date, category, amount)
		if rec := app.request("POST", "/api/v1/expenses/daily", body, token); rec.Code != http.StatusCreated {
			t.Fatalf("add failed: %d %s", rec.Code, rec.Body.String())
		}
	}
	add("2024-03-01", "Groceries", 10)
	add("2024-03-31", "Transport", 5)
	add("2024-04-01", "Groceries", 20)
	add("2023-03-10", "Groceries", 7)

	rec := app.request("GET", "/api/v1/expenses/daily?month=3&year=2024", "", token)
	if got := parseJSON(t, rec)["total_items"].(float64); got != 2 {
		t.Errorf("expected 2 expenses in March 2024, got %v", got)
	}

	rec = app.request("GET", "/api/v1/expenses/daily?month=3&year=2024&category=Groceries", "", token)
	if got := parseJSON(t, rec)["total_items"].(float64); got != 1 {
		t.Errorf("expected 1 grocery expense in March 2024, got %v", got)
	}

	// Month without year is rejected.
	rec = app.request("GET", "/api/v1/expenses/daily?month=3", "", token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for month without year, got %d", rec.Code)
	}
}

func TestExpenseFlow_DailyValidation(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "carol", "Str0ngPass")

	cases := []struct {
		name string
		body string
	}{
		{"bad_date", `{"date":"15/03/2024","category":"x","description":"x","amount":1}`},
		{"zero_amount", `{"date":"2024-03-15","category":"x","description":"x","amount":0}`},
		{"negative_amount", `{"date":"2024-03-15","category":"x","description":"x","amount":-5}`},
		{"missing_category", `{"date":"2024-03-15","description":"x","amount":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.request("POST", "/api/v1/expenses/daily", tc.body, token)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}

	// Unknown account is a 404, not a validation error.
	body := `{"date":"2024-03-15","category":"x","description":"x","amount":1,"account_id":"3b241101-e2bb-4255-8caf-4136c566a962"}`
	rec := app.request("POST", "/api/v1/expenses/daily", body, token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown account, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestExpenseFlow_RecurringLifecycle(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "dave", "Str0ngPass")

	rec := app.request("POST", "/api/v1/expenses/recurring",
		`{"name":"Netflix","category":"Subscriptions","amount":15.99,"frequency":"monthly"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add failed: %d %s", rec.Code, rec.Body.String())
	}
	expense := parseJSON(t, rec)["expense"].(map[string]interface{})
	if expense["frequency"] != "monthly" {
		t.Errorf("expected frequency monthly, got %v", expense["frequency"])
	}
	expenseID := expense["id"].(string)

	// Frequency outside the allowed set is rejected.
	rec = app.request("POST", "/api/v1/expenses/recurring",
		`{"name":"Coffee","category":"Food","amount":3,"frequency":"daily"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid frequency, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/expenses/recurring", "", token)
	if parseJSON(t, rec)["total_items"].(float64) != 1 {
		t.Fatal("expected 1 recurring expense")
	}

	rec = app.request("DELETE", "/api/v1/expenses/recurring/"+expenseID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}
}

func TestExpenseFlow_UserIsolation(t *testing.T) {
	app := setupApp(t)
	aliceToken, _ := app.registerUser(t, "alice", "Str0ngPass")
	bobToken, _ := app.registerUser(t, "bob", "Str0ngPass")

	rec := app.request("POST", "/api/v1/expenses/daily",
		`{"date":"2024-03-15","category":"Groceries","description":"x","amount":10}`, aliceToken)
	expenseID := parseJSON(t, rec)["expense"].(map[string]interface{})["id"].(string)

	rec = app.request("GET", "/api/v1/expenses/daily", "", bobToken)
	if parseJSON(t, rec)["total_items"].(float64) != 0 {
		t.Error("expected bob to see no expenses")
	}
	rec = app.request("DELETE", "/api/v1/expenses/daily/"+expenseID, "", bobToken)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for cross-user delete, got %d", rec.Code)
	}
}
