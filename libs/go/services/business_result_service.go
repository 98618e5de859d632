package services

import (
	"math"

	"github.com/fiscalia/fiscalia-api/libs/go/constants"
	"github.com/fiscalia/fiscalia-api/libs/go/logger"
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
	"go.uber.org/zap"
)

// BusinessResultService derives the full fiscal statement for a period from
// aggregated totals. Every step is pure; a fresh result is built per call.
type BusinessResultService struct {
	logger *zap.Logger
}

// NewBusinessResultService creates a new business result service.
func NewBusinessResultService() *BusinessResultService {
	return &BusinessResultService{
		logger: logger.Log,
	}
}

// Calculate derives gross/net figures, tax estimates, cash position and the
// waterfall breakdown. A missing fiscal configuration never fails the
// calculation: callers should pass business.DefaultFiscalConfig() in that
// case, and cfg with an unknown entity type simply yields zero income-tax
// estimates (only the VAT settlement applies).
func (s *BusinessResultService) Calculate(period business.Period, totals business.PeriodTotals, cfg business.FiscalConfig) *business.BusinessResult {
	result := &business.BusinessResult{
		Period:  period,
		Totals:  totals,
		HasData: totals.SaleCount > 0 || totals.InvoiceCount > 0,
	}

	result.GrossIncome = totals.RevenueTaxBase + totals.OutputVAT
	result.VariableCosts = totals.InvoiceExpenses
	result.TotalCosts = result.VariableCosts + totals.FixedCosts

	result.GrossMargin = result.GrossIncome - result.VariableCosts
	if result.GrossIncome != 0 {
		result.GrossMarginPct = result.GrossMargin / result.GrossIncome * 100
	}

	result.OperatingProfit = result.GrossMargin - totals.FixedCosts

	// VAT settlement is reported as a non-negative liability. An input VAT
	// excess becomes a credit carried forward, surfaced separately so the
	// amount is not discarded.
	vatPosition := totals.OutputVAT - totals.InputVAT
	result.VATDue = math.Max(0, vatPosition)
	if vatPosition < 0 {
		result.VATCredit = -vatPosition
	}

	if result.OperatingProfit > 0 {
		if cfg.PaysIRPF() {
			result.EstimatedIRPF = result.OperatingProfit * cfg.IRPFRate
		}
		if cfg.PaysCorporateTax() {
			result.EstimatedCorpTax = result.OperatingProfit * cfg.CorporateTaxRate
		}
	}

	result.TotalTaxBurden = result.VATDue + result.EstimatedIRPF + result.EstimatedCorpTax
	result.RecommendedTaxReserve = result.TotalTaxBurden * constants.TaxReserveSafetyFactor
	result.NetProfit = result.OperatingProfit - result.TotalTaxBurden

	s.calculateCashPosition(result, totals, period)
	result.Waterfall = s.buildWaterfall(result)

	if s.logger != nil {
		s.logger.Debug("Calculated business result",
			zap.String("period", string(period.Keyword)),
			zap.Bool("has_data", result.HasData),
			zap.Float64("operating_profit", result.OperatingProfit),
			zap.Float64("net_profit", result.NetProfit),
		)
	}

	return result
}

// calculateCashPosition derives the cash balance and how many days of costs
// it covers at the period's daily burn rate.
func (s *BusinessResultService) calculateCashPosition(result *business.BusinessResult, totals business.PeriodTotals, period business.Period) {
	result.CashBalance = totals.CollectedRevenue - (totals.PaidInvoices + totals.FixedCosts)

	if result.CashBalance <= 0 {
		result.CoverageDays = 0
		return
	}

	dailyBurn := result.TotalCosts / (period.MonthsInPeriod * constants.DaysPerMonth)
	if dailyBurn <= 0 {
		// Nothing is being burned: coverage is indefinite, flagged
		// explicitly instead of a magic sentinel value.
		result.CoverageUnbounded = true
		return
	}
	result.CoverageDays = int(math.Round(result.CashBalance / dailyBurn))
}

// buildWaterfall assembles the ordered profit breakdown. Zero-valued steps
// are dropped except the subtotal and total anchors, which always appear.
func (s *BusinessResultService) buildWaterfall(result *business.BusinessResult) []business.WaterfallStep {
	steps := make([]business.WaterfallStep, 0, 9)
	cumulative := 0.0

	push := func(label string, stepType business.WaterfallStepType, amount float64) {
		anchor := stepType == business.WaterfallSubtotal || stepType == business.WaterfallTotal
		if amount == 0 && !anchor {
			return
		}
		if !anchor {
			cumulative += amount
		}
		steps = append(steps, business.WaterfallStep{
			Label:      label,
			Type:       stepType,
			Amount:     amount,
			Cumulative: cumulative,
		})
	}

	push("Gross income", business.WaterfallIncome, result.GrossIncome)
	push("Variable costs", business.WaterfallDeduction, -result.VariableCosts)
	push("Gross margin", business.WaterfallSubtotal, result.GrossMargin)
	push("Fixed costs", business.WaterfallDeduction, -result.Totals.FixedCosts)
	push("Operating profit", business.WaterfallSubtotal, result.OperatingProfit)
	push("VAT due", business.WaterfallDeduction, -result.VATDue)
	push("IRPF estimate", business.WaterfallDeduction, -result.EstimatedIRPF)
	push("Corporate tax estimate", business.WaterfallDeduction, -result.EstimatedCorpTax)
	push("Net profit", business.WaterfallTotal, result.NetProfit)

	return steps
}
