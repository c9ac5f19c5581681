package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	resolver            portssvc.RateResolverSvc
	currencyService     portssvc.CurrencyReaderSvc
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade, resolver portssvc.RateResolverSvc, cs portssvc.CurrencyReaderSvc) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		resolver:            resolver,
		currencyService:     cs,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newExchangeRateHandler(services.ExchangeRate, services.RateResolver, services.Currency)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("/resolve", h.resolveExchangeRate)
		exchangeRates.GET("/convert", h.convertAmount)
		exchangeRates.PUT("/:rateID", h.updateExchangeRate)
		exchangeRates.DELETE("/:rateID", h.deleteExchangeRate)
	}
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Lists the caller's exchange rates, newest effective date first
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, logger)
		return
	}

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Adds a rate for a currency pair, effective from the given date
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]interface{} "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, logger)
		return
	}

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger.Info("Received request to create exchange rate",
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.String("rate", req.Rate.String()),
	)

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create exchange rate")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// updateExchangeRate godoc
// @Summary Update an exchange rate
// @Description Changes the rate value and effective date. The currency pair cannot change.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rateID path string true "Exchange Rate ID"
// @Param   rate body dto.UpdateExchangeRateRequest true "New rate and effective date"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]interface{} "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to update exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{rateID} [put]
func (h *exchangeRateHandler) updateExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, logger)
		return
	}

	rateID, ok := parseRateID(c)
	if !ok {
		return
	}
	logger = logger.With(slog.String("exchange_rate_id", rateID))

	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	updated, err := h.exchangeRateService.UpdateExchangeRate(c.Request.Context(), userID, rateID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(updated))
}

// deleteExchangeRate godoc
// @Summary Delete an exchange rate
// @Tags exchange rates
// @Param   rateID path string true "Exchange Rate ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to delete exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{rateID} [delete]
func (h *exchangeRateHandler) deleteExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, logger)
		return
	}

	rateID, ok := parseRateID(c)
	if !ok {
		return
	}

	if err := h.exchangeRateService.DeleteExchangeRate(c.Request.Context(), userID, rateID); err != nil {
		respondError(c, logger.With(slog.String("exchange_rate_id", rateID)), err, "Failed to delete exchange rate")
		return
	}
	c.Status(http.StatusNoContent)
}

// resolveExchangeRate godoc
// @Summary Resolve the rate for a currency pair
// @Description Shows which stored rate (direct or inverted) applies on a date, or the 1:1 identity
// @Tags exchange rates
// @Produce  json
// @Param   from query string true "From currency code"
// @Param   to   query string true "To currency code"
// @Param   date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.RateResolutionResponse
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 500 {object} map[string]string "Failed to resolve exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/resolve [get]
func (h *exchangeRateHandler) resolveExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, logger)
		return
	}

	var q dto.ResolveRateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}
	from, to, asOf, err := h.pairAndDate(c, q.From, q.To, q.Date)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve exchange rate")
		return
	}

	res, err := h.resolver.ResolveRate(c.Request.Context(), userID, from, to, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to resolve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResolutionResponse(from, to, asOf, res))
}

// convertAmount godoc
// @Summary Convert an amount between currencies
// @Description Converts using the rate effective on the date, rounded to 2 decimals
// @Tags exchange rates
// @Produce  json
// @Param   amount query string true "Amount to convert"
// @Param   from   query string true "From currency code"
// @Param   to     query string true "To currency code"
// @Param   date   query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 500 {object} map[string]string "Failed to convert amount"
// @Security BearerAuth
// @Router /exchange-rates/convert [get]
func (h *exchangeRateHandler) convertAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondUnauthorized(c, logger)
		return
	}

	var q dto.ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(q.Amount))
	if err != nil {
		respondError(c, logger, apperrors.NewFieldError("amount", "Amount must be a decimal number."), "")
		return
	}
	from, to, asOf, err := h.pairAndDate(c, q.From, q.To, q.Date)
	if err != nil {
		respondError(c, logger, err, "Failed to convert amount")
		return
	}

	res, err := h.resolver.ResolveRate(c.Request.Context(), userID, from, to, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to convert amount")
		return
	}
	c.JSON(http.StatusOK, dto.ConversionResponse{
		Amount:           amount,
		FromCurrencyCode: from,
		ConvertedAmount:  domain.RoundMoney(amount.Mul(res.Factor)),
		ToCurrencyCode:   to,
		AsOf:             dto.NewDate(asOf),
		Kind:             res.Kind,
		Factor:           res.Factor,
	})
}

// pairAndDate normalizes the pair, checks both codes exist, and parses the
// optional date (today when empty).
func (h *exchangeRateHandler) pairAndDate(c *gin.Context, from, to, date string) (string, string, time.Time, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	verrs := apperrors.ValidationErrors{}

	for field, code := range map[string]string{"from": from, "to": to} {
		exists, err := h.currencyService.CurrencyExists(c.Request.Context(), code)
		if err != nil {
			return "", "", time.Time{}, err
		}
		if !exists {
			verrs.Add(field, "Currency '"+code+"' not found.")
		}
	}

	asOf := dto.NewDate(time.Now().UTC())
	if date != "" {
		parsed, err := dto.ParseDate(date)
		if err != nil {
			verrs.Add("date", "Date must be in YYYY-MM-DD format.")
		} else {
			asOf = parsed
		}
	}

	if verrs.HasErrors() {
		return "", "", time.Time{}, verrs
	}
	return from, to, asOf.Time, nil
}

// parseRateID writes a 404 and returns false when the path ID is not a UUID.
func parseRateID(c *gin.Context) (string, bool) {
	rateID := c.Param("rateID")
	if _, err := uuid.Parse(rateID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return "", false
	}
	return rateID, true
}
