package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
	settingsService  portssvc.SettingsSvc
}

func newDashboardHandler(ds portssvc.DashboardSvc, ss portssvc.SettingsSvc) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: ds,
		settingsService:  ss,
	}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc, settingsService portssvc.SettingsSvc) {
	h := newDashboardHandler(dashboardService, settingsService)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Monthly spending dashboard
// @Description Totals, category breakdown and daily series for one month, converted into the display currency
// @Tags dashboard
// @Produce  json
// @Param   month    query int    false "Month (1-12), defaults to the current month"
// @Param   year     query int    false "Year, defaults to the current year"
// @Param   currency query string false "Display currency, defaults to the user's preference"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, logger)
		return
	}

	var q dto.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}

	month, year, err := h.dashboardService.ResolvePeriod(q.Month, q.Year)
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}

	display, err := h.settingsService.ResolveDisplayCurrency(c.Request.Context(), userID, q.Currency)
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}

	snapshot, err := h.dashboardService.BuildDashboard(c.Request.Context(), userID, month, year, display)
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}

	logger.Info("Dashboard built",
		slog.Int("month", month), slog.Int("year", year), slog.String("display_currency", display.Code))
	c.JSON(http.StatusOK, dto.ToDashboardResponse(snapshot))
}
