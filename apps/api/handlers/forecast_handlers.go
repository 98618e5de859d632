package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/db"
	"github.com/fiscalia/fiscalia-api/libs/go/services"
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ForecastHandler manages treasury forecast documents: generation, reads
// and period edits with full recalculation.
type ForecastHandler struct {
	common   *CommonServices
	forecast *services.TreasuryForecastService
	logger   *zap.Logger
}

// NewForecastHandler creates a new forecast handler.
func NewForecastHandler(common *CommonServices) *ForecastHandler {
	return &ForecastHandler{
		common:   common,
		forecast: services.NewTreasuryForecastService(),
		logger:   common.Logger,
	}
}

// FlexAmount is a float64 that tolerates malformed JSON input: numeric
// strings parse, anything else collapses to 0. The forecast table must stay
// renderable while the user is actively editing, so bad input is coerced,
// never rejected.
type FlexAmount float64

// UnmarshalJSON implements the lenient decoding.
func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*a = FlexAmount(services.CoerceAmount(number))
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		if parsed, err := strconv.ParseFloat(text, 64); err == nil {
			*a = FlexAmount(services.CoerceAmount(parsed))
			return nil
		}
	}
	*a = 0
	return nil
}

// CreateForecastRequest is the payload for generating a forecast.
type CreateForecastRequest struct {
	PeriodType     business.ForecastPeriodType `json:"period_type" binding:"required,oneof=monthly weekly"`
	Count          int                         `json:"count" binding:"required,gt=0,lte=60"`
	StartDate      *time.Time                  `json:"start_date,omitempty"`
	InitialBalance *FlexAmount                 `json:"initial_balance,omitempty"`
}

// CreateForecast generates an empty forecast. The opening balance comes
// from the request when given, otherwise it is seeded from the latest known
// cash balance. POST /api/v1/forecasts
func (h *ForecastHandler) CreateForecast(c *gin.Context) {
	var req CreateForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	ctx := c.Request.Context()

	initialBalance := 0.0
	if req.InitialBalance != nil {
		initialBalance = float64(*req.InitialBalance)
	} else {
		balance, err := h.common.Queries.GetCurrentBalance(ctx)
		if err != nil {
			respondInternalError(c, h.logger, "failed to load current balance", err)
			return
		}
		initialBalance = balance
	}

	start := time.Now()
	if req.StartDate != nil {
		start = *req.StartDate
	}

	forecast := &business.TreasuryForecast{
		ID:         uuid.New(),
		PeriodType: req.PeriodType,
		Periods:    h.forecast.GenerateEmptyPeriods(start, req.PeriodType, req.Count, initialBalance),
		UpdatedAt:  time.Now(),
	}

	if err := h.common.Queries.SaveTreasuryForecast(ctx, forecast); err != nil {
		respondInternalError(c, h.logger, "failed to save forecast", err)
		return
	}

	h.logger.Info("Created treasury forecast",
		zap.String("forecast_id", forecast.ID.String()),
		zap.String("period_type", string(forecast.PeriodType)),
		zap.Int("periods", len(forecast.Periods)),
	)
	c.JSON(http.StatusCreated, forecast)
}

// GetForecast returns a forecast document. GET /api/v1/forecasts/:id
func (h *ForecastHandler) GetForecast(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid forecast id")
		return
	}

	forecast, err := h.common.Queries.GetTreasuryForecast(c.Request.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		respondError(c, http.StatusNotFound, "forecast not found")
		return
	}
	if err != nil {
		respondInternalError(c, h.logger, "failed to load forecast", err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// UpdatePeriodRequest carries the edited planned figures of one period.
type UpdatePeriodRequest struct {
	PlannedIncome  FlexAmount `json:"planned_income"`
	PlannedExpense FlexAmount `json:"planned_expense"`
}

// UpdateForecastPeriod applies one period's edited figures, re-folds the
// whole balance chain and persists the full document.
// PUT /api/v1/forecasts/:id/periods/:index
func (h *ForecastHandler) UpdateForecastPeriod(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid forecast id")
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		respondError(c, http.StatusBadRequest, "invalid period index")
		return
	}

	var req UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	forecast, err := h.common.Queries.GetTreasuryForecast(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		respondError(c, http.StatusNotFound, "forecast not found")
		return
	}
	if err != nil {
		respondInternalError(c, h.logger, "failed to load forecast", err)
		return
	}
	if index >= len(forecast.Periods) {
		respondError(c, http.StatusBadRequest, "period index out of range")
		return
	}

	forecast.Periods[index].PlannedIncome = float64(req.PlannedIncome)
	forecast.Periods[index].PlannedExpense = float64(req.PlannedExpense)
	h.forecast.RecalculateBalances(forecast.Periods)
	forecast.UpdatedAt = time.Now()

	if err := h.common.Queries.SaveTreasuryForecast(ctx, forecast); err != nil {
		respondInternalError(c, h.logger, "failed to save forecast", err)
		return
	}

	h.logger.Info("Updated forecast period",
		zap.String("forecast_id", forecast.ID.String()),
		zap.Int("index", index),
	)
	c.JSON(http.StatusOK, forecast)
}
