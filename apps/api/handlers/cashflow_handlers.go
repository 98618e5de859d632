package handlers

import (
	"net/http"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/services"
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CashFlowHandler serves the current-quarter treasury snapshot.
type CashFlowHandler struct {
	common   *CommonServices
	cashFlow *services.CashFlowService
	logger   *zap.Logger
}

// NewCashFlowHandler creates a new cash-flow handler.
func NewCashFlowHandler(common *CommonServices) *CashFlowHandler {
	return &CashFlowHandler{
		common:   common,
		cashFlow: services.NewCashFlowService(),
		logger:   common.Logger,
	}
}

// GetCurrentSnapshot computes the cash-flow snapshot for the quarter
// containing today. GET /api/v1/cashflow/current
func (h *CashFlowHandler) GetCurrentSnapshot(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now()
	quarter := h.cashFlow.CurrentQuarter(now)

	sales, err := h.common.Queries.ListSalesBetween(ctx, quarter.Start, quarter.End)
	if err != nil {
		respondInternalError(c, h.logger, "failed to load sales", err)
		return
	}
	invoices, err := h.common.Queries.ListInvoicesBetween(ctx, quarter.Start, quarter.End)
	if err != nil {
		respondInternalError(c, h.logger, "failed to load invoices", err)
		return
	}
	fixedCosts, err := h.common.Queries.ListFixedCosts(ctx)
	if err != nil {
		respondInternalError(c, h.logger, "failed to load fixed costs", err)
		return
	}

	cfg := business.DefaultFiscalConfig()
	if stored, err := h.common.Queries.GetFiscalConfig(ctx); err != nil {
		h.logger.Warn("Failed to load fiscal config, using defaults", zap.Error(err))
	} else if stored != nil {
		cfg = *stored
	}

	snapshot := h.cashFlow.Snapshot(now, sales, invoices, fixedCosts, cfg)
	c.JSON(http.StatusOK, snapshot)
}
