package handlers

import (
	"net/http"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/services"
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ResultHandler serves period-scoped business result statements.
type ResultHandler struct {
	common      *CommonServices
	resolver    *services.PeriodResolver
	aggregation *services.AggregationService
	calculator  *services.BusinessResultService
	logger      *zap.Logger
}

// NewResultHandler creates a new result handler.
func NewResultHandler(common *CommonServices) *ResultHandler {
	return &ResultHandler{
		common:      common,
		resolver:    services.NewPeriodResolver(),
		aggregation: services.NewAggregationService(),
		calculator:  services.NewBusinessResultService(),
		logger:      common.Logger,
	}
}

// GetBusinessResult computes the full fiscal statement for the requested
// period keyword. GET /api/v1/results?period=month|3months|6months|all
func (h *ResultHandler) GetBusinessResult(c *gin.Context) {
	keyword := business.PeriodKeyword(c.DefaultQuery("period", string(business.PeriodMonth)))
	if !keyword.Valid() {
		respondError(c, http.StatusBadRequest, "invalid period keyword")
		return
	}

	ctx := c.Request.Context()
	now := time.Now()

	var oldestSale, oldestInvoice *time.Time
	if keyword == business.PeriodAll {
		var err error
		oldestSale, err = h.common.Queries.GetOldestSaleDate(ctx)
		if err != nil {
			respondInternalError(c, h.logger, "failed to resolve period", err)
			return
		}
		oldestInvoice, err = h.common.Queries.GetOldestInvoiceDate(ctx)
		if err != nil {
			respondInternalError(c, h.logger, "failed to resolve period", err)
			return
		}
	}
	period := h.resolver.Resolve(keyword, now, oldestSale, oldestInvoice)

	sales, err := h.common.Queries.ListSalesBetween(ctx, period.Start, period.End)
	if err != nil {
		respondInternalError(c, h.logger, "failed to load sales", err)
		return
	}
	invoices, err := h.common.Queries.ListInvoicesBetween(ctx, period.Start, period.End)
	if err != nil {
		respondInternalError(c, h.logger, "failed to load invoices", err)
		return
	}
	fixedCosts, err := h.common.Queries.ListFixedCosts(ctx)
	if err != nil {
		respondInternalError(c, h.logger, "failed to load fixed costs", err)
		return
	}

	cfg := h.loadFiscalConfig(c)

	totals := h.aggregation.Aggregate(period, sales, invoices, fixedCosts)
	result := h.calculator.Calculate(period, totals, cfg)

	c.JSON(http.StatusOK, result)
}

// loadFiscalConfig fetches the stored tax profile, falling back to the
// default one. Calculations never fail because configuration is unset.
func (h *ResultHandler) loadFiscalConfig(c *gin.Context) business.FiscalConfig {
	stored, err := h.common.Queries.GetFiscalConfig(c.Request.Context())
	if err != nil {
		h.logger.Warn("Failed to load fiscal config, using defaults", zap.Error(err))
		return business.DefaultFiscalConfig()
	}
	if stored == nil {
		return business.DefaultFiscalConfig()
	}
	return *stored
}
