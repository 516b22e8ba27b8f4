package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// Expense amounts go over the wire as JSON numbers, same as the backend
	// emits them.
	decimal.MarshalJSONWithoutQuotes = true
}

// ID holds a business-unit identifier. The backend serves string IDs but the
// API contract does not promise it, so numeric IDs are accepted too.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// SBU is a business unit as the backend reports it. Read-only on this side;
// fetched fresh on every page load, never cached across requests.
type SBU struct {
	ID          ID              `json:"id"`
	Name        string          `json:"name"`
	DailyBudget decimal.Decimal `json:"daily_budget"`
}

type FixedCosts struct {
	Personnel   decimal.Decimal `json:"personnel_cost"`
	Rent        decimal.Decimal `json:"rent"`
	Electricity decimal.Decimal `json:"electricity"`
}

type VariableCosts struct {
	Consumables     decimal.Decimal `json:"consumables"`
	GeneralExpenses decimal.Decimal `json:"general_expenses"`
	Miscellaneous   decimal.Decimal `json:"miscellaneous"`
}

// DashboardSnapshot is the read-model behind the staff page. Every figure is
// computed by the backend; this side only decodes and formats. Fields the
// backend omits decode as zero.
type DashboardSnapshot struct {
	SBU                SBU             `json:"sbu"`
	SalesToday         decimal.Decimal `json:"sales_today"`
	FixedCosts         FixedCosts      `json:"fixed_costs"`
	VariableCosts      VariableCosts   `json:"variable_costs"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	PerformancePercent decimal.Decimal `json:"performance_percent"`
	PerformanceStatus  string          `json:"performance_status"`
}

// StatusClass maps the backend's performance status tag to the one indicator
// class the dashboard shows. The three classes are mutually exclusive.
func (d DashboardSnapshot) StatusClass() string {
	switch d.PerformanceStatus {
	case "excellent":
		return "good"
	case "warning":
		return "warn"
	default:
		return "bad"
	}
}

type ReportSBU struct {
	Name string `json:"name"`
}

type ReportExpenses struct {
	Total decimal.Decimal `json:"total"`
}

// Report is the ad-hoc performance report the admin page renders verbatim.
type Report struct {
	SBU                ReportSBU       `json:"sbu"`
	TotalSales         decimal.Decimal `json:"total_sales"`
	Expenses           ReportExpenses  `json:"expenses"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	PerformancePercent decimal.Decimal `json:"performance_percent"`
}

// ReportPeriods are the ranges the report endpoint understands.
var ReportPeriods = []string{"daily", "weekly", "monthly"}

func ValidReportPeriod(period string) bool {
	for _, p := range ReportPeriods {
		if p == period {
			return true
		}
	}
	return false
}
