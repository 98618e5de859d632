package handlers

import (
	"net/http"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OpportunityHandler serves the temporal sales analysis.
type OpportunityHandler struct {
	common   *CommonServices
	analyzer *services.OpportunityService
	logger   *zap.Logger
}

// NewOpportunityHandler creates a new opportunity handler.
func NewOpportunityHandler(common *CommonServices) *OpportunityHandler {
	return &OpportunityHandler{
		common:   common,
		analyzer: services.NewOpportunityService(),
		logger:   common.Logger,
	}
}

// GetOpportunityReport analyzes the trailing sales window for day/hour
// performance and recommendations. GET /api/v1/opportunities
func (h *OpportunityHandler) GetOpportunityReport(c *gin.Context) {
	ctx := c.Request.Context()

	// The analyzer needs full history to judge the 3-month floor, not just
	// the trailing window.
	sales, err := h.common.Queries.ListSales(ctx)
	if err != nil {
		respondInternalError(c, h.logger, "failed to load sales", err)
		return
	}
	fixedCosts, err := h.common.Queries.ListFixedCosts(ctx)
	if err != nil {
		respondInternalError(c, h.logger, "failed to load fixed costs", err)
		return
	}

	var monthlyFixedCosts float64
	for _, cost := range fixedCosts {
		monthlyFixedCosts += cost.MonthlyEquivalent()
	}

	report := h.analyzer.Analyze(time.Now(), sales, monthlyFixedCosts)
	c.JSON(http.StatusOK, report)
}
