package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sbu-console/internal/api"
	"sbu-console/internal/models"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", s, err)
	}
	return d
}

func TestLogin(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decode credentials: %v", err)
		}
		if creds["username"] != "jane" || creds["password"] != "pw" {
			t.Errorf("unexpected credentials: %v", creds)
		}
		fmt.Fprint(w, `{"access_token":"abc","role":"staff","username":"jane"}`)
	}))
	defer backend.Close()

	client := api.New(backend.URL)
	res, err := client.Login(context.Background(), "jane", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.AccessToken != "abc" || res.Role != "staff" || res.Username != "jane" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"Invalid credentials"}`)
	}))
	defer backend.Close()

	client := api.New(backend.URL)
	_, err := client.Login(context.Background(), "jane", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", apiErr.Status)
	}
	if apiErr.Detail != "Invalid credentials" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
	if apiErr.Error() != "Invalid credentials" {
		t.Errorf("message = %q", apiErr.Error())
	}
}

func TestMySBUDefaultsMissingFigures(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("authorization = %q", got)
		}
		// fixed_costs, variable_costs and totals deliberately omitted
		fmt.Fprint(w, `{"sbu":{"id":"u1","name":"Lagos","daily_budget":50000},"sales_today":20000,"performance_status":"warning"}`)
	}))
	defer backend.Close()

	client := api.New(backend.URL)
	snap, err := client.MySBU(context.Background(), "tok")
	if err != nil {
		t.Fatalf("my-sbu: %v", err)
	}

	if snap.SBU.Name != "Lagos" {
		t.Errorf("sbu name = %q", snap.SBU.Name)
	}
	for name, d := range map[string]string{
		"personnel":      snap.FixedCosts.Personnel.String(),
		"rent":           snap.FixedCosts.Rent.String(),
		"electricity":    snap.FixedCosts.Electricity.String(),
		"consumables":    snap.VariableCosts.Consumables.String(),
		"total expenses": snap.TotalExpenses.String(),
		"net profit":     snap.NetProfit.String(),
	} {
		if d != "0" {
			t.Errorf("%s = %s, want 0", name, d)
		}
	}
	if snap.StatusClass() != "warn" {
		t.Errorf("status class = %q, want warn", snap.StatusClass())
	}
}

func TestSaveExpensePayload(t *testing.T) {
	var got map[string]any
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/staff/expenses" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		fmt.Fprint(w, `{"message":"Expense recorded"}`)
	}))
	defer backend.Close()

	client := api.New(backend.URL)
	entry := models.ExpenseEntry{
		Category: models.CategoryConsumables,
		Amount:   mustDecimal(t, "2500"),
		Date:     "2026-08-31",
		Notes:    "syringes",
	}
	if err := client.SaveExpense(context.Background(), "tok", entry); err != nil {
		t.Fatalf("save expense: %v", err)
	}

	if got["category"] != "consumables" {
		t.Errorf("category = %v", got["category"])
	}
	// the amount must travel as a JSON number, not a quoted string
	if amount, ok := got["amount"].(float64); !ok || amount != 2500 {
		t.Errorf("amount = %v (%T)", got["amount"], got["amount"])
	}
	if got["date"] != "2026-08-31" || got["notes"] != "syringes" {
		t.Errorf("payload = %v", got)
	}
}

func TestSaveExpenseBackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"detail":"Expense already recorded for today"}`)
	}))
	defer backend.Close()

	client := api.New(backend.URL)
	err := client.SaveExpense(context.Background(), "tok", models.ExpenseEntry{})
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %v", err)
	}
	if apiErr.Detail != "Expense already recorded for today" {
		t.Errorf("detail = %q", apiErr.Detail)
	}
	if apiErr.Body == "" {
		t.Error("raw body not kept")
	}
}

func TestSBUReportQuery(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("sbu_id") != "1" || q.Get("period") != "weekly" || q.Get("report_date") != "2026-08-31" {
			t.Errorf("unexpected query: %v", q)
		}
		fmt.Fprint(w, `{"sbu":{"name":"Lagos"},"total_sales":100000,"expenses":{"total":40000},"net_profit":60000,"performance_percent":66.7}`)
	}))
	defer backend.Close()

	client := api.New(backend.URL)
	report, err := client.SBUReport(context.Background(), "tok", "1", "weekly", "2026-08-31")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if report.SBU.Name != "Lagos" {
		t.Errorf("sbu name = %q", report.SBU.Name)
	}
	if report.TotalSales.String() != "100000" || report.Expenses.Total.String() != "40000" {
		t.Errorf("figures = %s / %s", report.TotalSales, report.Expenses.Total)
	}
	if report.PerformancePercent.String() != "66.7" {
		t.Errorf("performance = %s", report.PerformancePercent)
	}
}

func TestListSBUsAcceptsNumericIDs(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":1,"name":"Lagos","daily_budget":50000},{"id":"a1b2","name":"Abuja","daily_budget":30000}]`)
	}))
	defer backend.Close()

	client := api.New(backend.URL)
	sbus, err := client.ListSBUs(context.Background(), "tok")
	if err != nil {
		t.Fatalf("list sbus: %v", err)
	}
	if len(sbus) != 2 {
		t.Fatalf("got %d sbus", len(sbus))
	}
	if sbus[0].ID != "1" || sbus[1].ID != "a1b2" {
		t.Errorf("ids = %q, %q", sbus[0].ID, sbus[1].ID)
	}
}
