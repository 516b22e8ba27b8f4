package handlers

import (
	"errors"
	"net/http"
	"strings"

	"sbu-console/internal/api"
	"sbu-console/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminDashboard loads the unit list once and feeds every view on the page
// from it: the budget listing, the report selector and the staff-form
// selector all see the same fetch.
func (h *Handler) AdminDashboard(c *gin.Context) {
	s := currentSession(c)

	sbus, err := h.api.ListSBUs(c.Request.Context(), s.Token)
	if err != nil {
		h.log.WithError(err).Error("load sbus")
		render(c, http.StatusBadGateway, "admin.html", gin.H{
			"error":   "Failed to load SBUs",
			"Periods": models.ReportPeriods,
		})
		return
	}

	render(c, http.StatusOK, "admin.html", gin.H{
		"error":   "",
		"SBUs":    sbus,
		"Periods": models.ReportPeriods,
	})
}

type staffForm struct {
	FullName     string `form:"full_name" binding:"required"`
	Username     string `form:"username" binding:"required"`
	Password     string `form:"password" binding:"required"`
	DepartmentID string `form:"department_id" binding:"required"`
}

// CreateStaff provisions one account. The page is re-rendered in place either
// way: the form stays open for further entries and keeps whatever was typed.
func (h *Handler) CreateStaff(c *gin.Context) {
	s := currentSession(c)

	// The selector re-fetch the open panel needs; also redraws the page.
	sbus, err := h.api.ListSBUs(c.Request.Context(), s.Token)
	if err != nil {
		h.log.WithError(err).Error("load sbu options")
		render(c, http.StatusBadGateway, "admin.html", gin.H{
			"error":   "Failed to load SBU list",
			"Periods": models.ReportPeriods,
		})
		return
	}

	var form staffForm
	bindErr := c.ShouldBind(&form)
	form.FullName = strings.TrimSpace(form.FullName)
	form.Username = strings.TrimSpace(form.Username)
	if bindErr != nil || form.FullName == "" || form.Username == "" || form.Password == "" {
		h.redrawStaffPanel(c, http.StatusBadRequest, sbus, form, gin.H{"error": "Fill all fields"})
		return
	}

	account := models.StaffAccount{
		FullName:     form.FullName,
		Username:     form.Username,
		Password:     form.Password,
		DepartmentID: form.DepartmentID,
	}

	if err := h.api.CreateStaff(c.Request.Context(), s.Token, account); err != nil {
		fields := logrus.Fields{"username": form.Username}
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			fields["detail"] = apiErr.Body
		}
		h.log.WithFields(fields).WithError(err).Error("create staff")
		h.redrawStaffPanel(c, http.StatusBadGateway, sbus, form, gin.H{"error": "Failed to create staff"})
		return
	}

	h.redrawStaffPanel(c, http.StatusOK, sbus, form, gin.H{"notice": "Staff created successfully"})
}

func (h *Handler) redrawStaffPanel(c *gin.Context, status int, sbus []models.SBU, form staffForm, data gin.H) {
	data["SBUs"] = sbus
	data["Periods"] = models.ReportPeriods
	data["StaffForm"] = form
	data["StaffPanelOpen"] = true
	if _, ok := data["error"]; !ok {
		data["error"] = ""
	}
	render(c, status, "admin.html", data)
}

// SBUReport runs one parameterized query and renders the result whole; the
// panel is not touched until the full response has decoded.
func (h *Handler) SBUReport(c *gin.Context) {
	s := currentSession(c)

	sbus, err := h.api.ListSBUs(c.Request.Context(), s.Token)
	if err != nil {
		h.log.WithError(err).Error("load sbus")
		render(c, http.StatusBadGateway, "admin.html", gin.H{
			"error":   "Failed to load SBUs",
			"Periods": models.ReportPeriods,
		})
		return
	}

	sbuID := strings.TrimSpace(c.Query("sbu_id"))
	period := c.DefaultQuery("period", "daily")
	reportDate := c.Query("report_date")

	query := gin.H{"SBUID": sbuID, "Period": period, "Date": reportDate}

	if sbuID == "" || reportDate == "" {
		render(c, http.StatusBadRequest, "admin.html", gin.H{
			"error":       "Select SBU and date",
			"SBUs":        sbus,
			"Periods":     models.ReportPeriods,
			"ReportQuery": query,
		})
		return
	}

	if !models.ValidReportPeriod(period) {
		render(c, http.StatusBadRequest, "admin.html", gin.H{
			"error":       "Invalid period",
			"SBUs":        sbus,
			"Periods":     models.ReportPeriods,
			"ReportQuery": query,
		})
		return
	}

	report, err := h.api.SBUReport(c.Request.Context(), s.Token, sbuID, period, reportDate)
	if err != nil {
		h.log.WithError(err).Error("load report")
		render(c, http.StatusBadGateway, "admin.html", gin.H{
			"error":       "Failed to load report",
			"SBUs":        sbus,
			"Periods":     models.ReportPeriods,
			"ReportQuery": query,
		})
		return
	}

	render(c, http.StatusOK, "admin.html", gin.H{
		"error":       "",
		"SBUs":        sbus,
		"Periods":     models.ReportPeriods,
		"ReportQuery": query,
		"Report":      report,
	})
}
