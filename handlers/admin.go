package handlers

import (
	"fmt"
	"net/http"
	"time"

	"hdmonks/models"
	"hdmonks/services/admin"
	"hdmonks/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard, site settings and analytics.
type AdminHandler struct {
	Svc admin.AdminService
}

func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Svc: svc}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats, "")
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	s, err := h.Svc.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, s, "")
}

func (h *AdminHandler) PublicSettings(c *gin.Context) {
	s, err := h.Svc.PublicSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, s, "")
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var upd models.SettingsUpdate
	if !bindJSON(c, &upd) {
		return
	}
	s, err := h.Svc.UpdateSettings(c.Request.Context(), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, s, "Settings updated")
}

// Track answers POST /api/analytics/track.
func (h *AdminHandler) Track(c *gin.Context) {
	var ev models.AnalyticsEvent
	if !bindJSON(c, &ev) {
		return
	}
	saved, err := h.Svc.TrackEvent(c.Request.Context(), ev)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, saved, "")
}

// AnalyticsSummary accepts start_date and end_date as YYYY-MM-DD or RFC 3339.
func (h *AdminHandler) AnalyticsSummary(c *gin.Context) {
	start, err := parseDateParam(c.Query("start_date"), false)
	if err != nil {
		respondError(c, err)
		return
	}
	end, err := parseDateParam(c.Query("end_date"), true)
	if err != nil {
		respondError(c, err)
		return
	}
	sum, err := h.Svc.AnalyticsSummary(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sum, "")
}

// parseDateParam returns the zero time for an empty value. A bare date used
// as an upper bound covers the whole day.
func parseDateParam(v string, endOfDay bool) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", models.ErrValidation, v)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
