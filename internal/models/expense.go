package models

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ExpenseCategory string

const (
	CategoryConsumables     ExpenseCategory = "consumables"
	CategoryGeneralExpenses ExpenseCategory = "general_expenses"
	CategoryUtilities       ExpenseCategory = "utilities"
	CategoryMiscellaneous   ExpenseCategory = "miscellaneous"
)

var ExpenseCategories = []ExpenseCategory{
	CategoryConsumables,
	CategoryGeneralExpenses,
	CategoryUtilities,
	CategoryMiscellaneous,
}

func (c ExpenseCategory) Valid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ValidExpenseCategory is the "expensecategory" rule for form binding.
func ValidExpenseCategory(fl validator.FieldLevel) bool {
	return ExpenseCategory(fl.Field().String()).Valid()
}

// ExpenseEntry is a staff expense submission. One entry per category per day
// is the backend's rule; this side only sends and then re-fetches.
type ExpenseEntry struct {
	Category ExpenseCategory `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
	Notes    string          `json:"notes"`
}
