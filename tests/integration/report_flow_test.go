package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestReportFlow_MonthlyAggregation(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "alice", "Str0ngPass")
	cashID := app.createAccount(t, token, "Cash")

	add := func(path, body string) {
		if rec := app.request("POST", path, body, token); rec.Code != http.StatusCreated {
			t.Fatalf("add failed: %d %s", rec.Code, rec.Body.String())
		}
	}
	add("/api/v1/expenses/daily",
		fmt.Sprintf(`{"date":"2024-03-05","category":"Groceries","description":"x","amount":20,"account_id":%q}`, cashID))
	add("/api/v1/expenses/daily",
		`{"date":"2024-03-20","category":"Transport","description":"x","amount":5}`)
	// Outside the requested month: excluded from daily totals.
	add("/api/v1/expenses/daily",
		`{"date":"2024-04-01","category":"Groceries","description":"x","amount":99}`)
	// Weekly 10.00 -> 43.30 monthly equivalent, unassigned.
	add("/api/v1/expenses/recurring",
		`{"name":"Gym","category":"Health","amount":10,"frequency":"weekly"}`)

	rec := app.request("GET", "/api/v1/reports/monthly?month=3&year=2024", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("report failed: %d %s", rec.Code, rec.Body.String())
	}
	report := parseJSON(t, rec)["report"].(map[string]interface{})

	if report["month"].(float64) != 3 || report["year"].(float64) != 2024 {
		t.Errorf("wrong period: %v/%v", report["month"], report["year"])
	}
	if got := report["daily_total"].(float64); got != 25 {
		t.Errorf("expected daily_total 25, got %v", got)
	}
	if got := report["recurring_monthly_total"].(float64); got != 43.30 {
		t.Errorf("expected recurring_monthly_total 43.30, got %v", got)
	}
	if got := report["combined_total"].(float64); got != 68.30 {
		t.Errorf("expected combined_total 68.30, got %v", got)
	}

	byCategory := report["by_category"].([]interface{})
	if len(byCategory) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(byCategory))
	}
	top := byCategory[0].(map[string]interface{})
	if top["category"] != "Groceries" || top["amount"].(float64) != 20 {
		t.Errorf("expected Groceries 20 first, got %v %v", top["category"], top["amount"])
	}

	byAccount := report["by_account"].([]interface{})
	if len(byAccount) != 2 {
		t.Fatalf("expected 2 account buckets, got %d", len(byAccount))
	}
	buckets := make(map[string]map[string]interface{})
	for _, raw := range byAccount {
		b := raw.(map[string]interface{})
		buckets[b["account"].(string)] = b
	}
	if cash := buckets["Cash"]; cash == nil || cash["daily"].(float64) != 20 {
		t.Errorf("unexpected Cash bucket: %v", buckets["Cash"])
	}
	unassigned := buckets["Unassigned"]
	if unassigned == nil {
		t.Fatal("missing Unassigned bucket")
	}
	// Transport daily 5 plus the weekly equivalent.
	if unassigned["daily"].(float64) != 5 || unassigned["recurring"].(float64) != 43.30 {
		t.Errorf("unexpected Unassigned bucket: %v", unassigned)
	}
}

func TestReportFlow_EmptyMonth(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "bob", "Str0ngPass")

	rec := app.request("GET", "/api/v1/reports/monthly?month=1&year=2020", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("report failed: %d %s", rec.Code, rec.Body.String())
	}
	report := parseJSON(t, rec)["report"].(map[string]interface{})
	if report["combined_total"].(float64) != 0 {
		t.Errorf("expected combined_total 0, got %v", report["combined_total"])
	}
}

func TestReportFlow_InvalidParams(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "carol", "Str0ngPass")

	for _, query := range []string{"", "month=3", "month=13&year=2024", "month=0&year=2024"} {
		rec := app.request("GET", "/api/v1/reports/monthly?"+query, "", token)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("query %q: expected 400, got %d", query, rec.Code)
		}
	}
}
