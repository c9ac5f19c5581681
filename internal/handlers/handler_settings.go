package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.SettingsSvc
}

func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvc) {
	h := &settingsHandler{settingsService: settingsService}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

// getSettings godoc
// @Summary Get user settings
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.UserSettingsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, logger)
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update user settings
// @Description Sets the default display currency; null or empty clears it
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings body dto.UserSettingsRequest true "Settings"
// @Success 200 {object} dto.UserSettingsResponse
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, logger)
		return
	}

	var req dto.UserSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), userID, req.DefaultCurrencyCode)
	if err != nil {
		respondError(c, logger, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserSettingsResponse(settings))
}
