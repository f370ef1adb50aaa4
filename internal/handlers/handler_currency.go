package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/core/domain"
	portssvc "github.com/SscSPs/currency_registry/internal/core/ports/services"
	"github.com/SscSPs/currency_registry/internal/dto"
	"github.com/SscSPs/currency_registry/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
	rg.GET("/identify", h.identifyCurrency)
}

// getCurrencyByCode godoc
// @Summary Resolve a currency by code
// @Description Resolves a primary or secondary code. Without a classification every classification is searched.
// @Tags currencies
// @Produce  json
// @Param   code path string true "Primary or secondary currency code"
// @Param   classification query string false "circulating, historical or crypto"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid classification"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	var query dto.CurrencyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query for GetCurrencyByCode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	classification, err := query.Parse()
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode))
	logger.Info("Received request to get currency by code")

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode, classification)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}

	logger.Info("Currency retrieved successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies of a classification
// @Description Lists the records of one classification, circulating by default
// @Tags currencies
// @Produce  json
// @Param   classification query string false "circulating, historical or crypto"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid classification"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.CurrencyQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid query for ListCurrencies", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}
	classification, err := query.Parse()
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}
	if classification == "" {
		classification = domain.Circulating
	}
	logger.Info("Received request to list currencies", slog.String("classification", string(classification)))

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), classification)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// identifyCurrency godoc
// @Summary Identify the currency named in a text
// @Description Scans text such as "USD 1,234.56" for a known currency code and the amount beside it. code is empty when none is found.
// @Tags currencies
// @Produce  json
// @Param   text query string true "Text holding an amount and a currency code"
// @Success 200 {object} dto.IdentifyResponse
// @Failure 400 {object} map[string]string "Missing text"
// @Router /identify [get]
func (h *currencyHandler) identifyCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.IdentifyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid query for IdentifyCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	identification, err := h.currencyService.IdentifyCurrency(c.Request.Context(), req.Text)
	if err != nil {
		writeServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToIdentifyResponse(identification))
}

// writeServiceError maps service errors to HTTP responses.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Currency not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidArgument):
		logger.Warn("Invalid currency request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Currency service failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process currency request"})
	}
}
