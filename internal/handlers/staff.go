package handlers

import (
	"errors"
	"net/http"

	"sbu-console/internal/api"
	"sbu-console/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// StaffDashboard fetches the caller's unit and today's figures and renders
// them as-is. A failed fetch leaves the dashboard empty; nothing is retried.
func (h *Handler) StaffDashboard(c *gin.Context) {
	s := currentSession(c)

	snap, err := h.api.MySBU(c.Request.Context(), s.Token)
	if err != nil {
		h.log.WithError(err).Error("load staff dashboard")
		render(c, http.StatusBadGateway, "staff.html", gin.H{
			"error":      "Error loading staff dashboard",
			"Dashboard":  &models.DashboardSnapshot{},
			"Categories": models.ExpenseCategories,
		})
		return
	}

	render(c, http.StatusOK, "staff.html", gin.H{
		"error":      "",
		"Dashboard":  snap,
		"Categories": models.ExpenseCategories,
	})
}

type expenseForm struct {
	Category models.ExpenseCategory `form:"category" binding:"required,expensecategory"`
	Amount   string                 `form:"amount" binding:"required"`
	Date     string                 `form:"date" binding:"required"`
	Notes    string                 `form:"notes"`
}

// SaveExpense validates locally, sends one request, and on success re-fetches
// the dashboard by redirecting back to it. Totals are never touched here; the
// backend owns the per-category-per-day upsert and every figure.
func (h *Handler) SaveExpense(c *gin.Context) {
	var form expenseForm
	if err := c.ShouldBind(&form); err != nil {
		msg := "Enter a valid expense amount"
		var verr validator.ValidationErrors
		if errors.As(err, &verr) && len(verr) > 0 {
			switch verr[0].Field() {
			case "Date":
				msg = "Select expense date"
			case "Category":
				msg = "Select expense category"
			}
		}
		h.rejectExpense(c, form, msg)
		return
	}

	amount, err := decimal.NewFromString(form.Amount)
	if err != nil || !amount.IsPositive() {
		h.rejectExpense(c, form, "Enter a valid expense amount")
		return
	}

	s := currentSession(c)
	entry := models.ExpenseEntry{
		Category: form.Category,
		Amount:   amount,
		Date:     form.Date,
		Notes:    form.Notes,
	}

	if err := h.api.SaveExpense(c.Request.Context(), s.Token, entry); err != nil {
		h.log.WithError(err).Error("save expense")
		msg := "Failed to save expense"
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			msg = apiErr.Detail
		}
		h.rejectExpense(c, form, msg)
		return
	}

	sess := sessions.Default(c)
	sess.AddFlash("Expense saved / updated for today")
	_ = sess.Save()

	// Redirect-after-post: the follow-up GET is the one dashboard re-fetch,
	// and the amount/notes inputs come back empty.
	c.Redirect(http.StatusFound, "/staff")
}

// rejectExpense re-renders the page with the entered values intact for
// correction. The dashboard section stays empty; no re-fetch happens here.
func (h *Handler) rejectExpense(c *gin.Context, form expenseForm, msg string) {
	render(c, http.StatusBadRequest, "staff.html", gin.H{
		"error":      msg,
		"Dashboard":  &models.DashboardSnapshot{},
		"Form":       form,
		"Categories": models.ExpenseCategories,
	})
}
