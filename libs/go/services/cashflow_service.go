package services

import (
	"math"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/constants"
	"github.com/fiscalia/fiscalia-api/libs/go/logger"
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
	"go.uber.org/zap"
)

// CashFlowService computes the treasury position of the current fiscal
// quarter. Unlike the rolling windows used for result statements, VAT and
// IRPF are legally settled on fixed calendar quarters, so this service
// always aggregates Q1 Jan-Mar, Q2 Apr-Jun, Q3 Jul-Sep or Q4 Oct-Dec.
type CashFlowService struct {
	aggregation *AggregationService
	logger      *zap.Logger
}

// NewCashFlowService creates a new cash-flow service.
func NewCashFlowService() *CashFlowService {
	return &CashFlowService{
		aggregation: NewAggregationService(),
		logger:      logger.Log,
	}
}

// CurrentQuarter resolves the fixed fiscal quarter containing t.
func (s *CashFlowService) CurrentQuarter(t time.Time) business.FiscalQuarter {
	quarter := (int(t.Month())-1)/3 + 1
	start := time.Date(t.Year(), time.Month(3*(quarter-1)+1), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 3, 0).Add(-time.Second)
	return business.FiscalQuarter{
		Year:    t.Year(),
		Quarter: quarter,
		Start:   start,
		End:     end,
	}
}

// Snapshot computes the quarter's accrual result, cash movements, settlement
// obligations and the next filing deadline.
func (s *CashFlowService) Snapshot(now time.Time, sales []business.SaleRecord, invoices []business.PurchaseInvoice, fixedCosts []business.FixedCost, cfg business.FiscalConfig) *business.CashFlowSnapshot {
	quarter := s.CurrentQuarter(now)
	period := business.Period{
		Keyword:        business.PeriodThreeMonths,
		Start:          quarter.Start,
		End:            quarter.End,
		MonthsInPeriod: constants.MonthsPerQuarter,
	}
	totals := s.aggregation.Aggregate(period, sales, invoices, fixedCosts)

	snapshot := &business.CashFlowSnapshot{
		Quarter: quarter,
		HasData: totals.SaleCount > 0 || totals.InvoiceCount > 0,
	}

	snapshot.AccrualIncome = totals.RevenueTaxBase + totals.OutputVAT
	snapshot.AccrualExpenses = totals.InvoiceExpenses + totals.FixedCosts
	snapshot.AccrualResult = snapshot.AccrualIncome - snapshot.AccrualExpenses

	snapshot.Collected = totals.CollectedRevenue
	snapshot.Paid = totals.PaidInvoices + totals.FixedCosts
	snapshot.GrossCash = snapshot.Collected - snapshot.Paid

	snapshot.VAT = s.vatBreakdown(totals, cfg)

	// Modelo 130 fractional payment: a flat statutory rate on positive
	// quarterly operating profit, only for IRPF-settling entities. This is
	// not the annual IRPF rate from the fiscal configuration.
	if cfg.PaysIRPF() {
		operatingProfit := snapshot.AccrualIncome - totals.InvoiceExpenses - totals.FixedCosts
		snapshot.IRPFInstallment = math.Max(0, operatingProfit) * constants.IRPFInstallmentRate
	}

	snapshot.NetCash = snapshot.GrossCash - snapshot.VAT.NetVATDue - snapshot.IRPFInstallment
	snapshot.NextLiquidation = s.nextLiquidation(now, quarter)

	if s.logger != nil {
		s.logger.Debug("Calculated cash-flow snapshot",
			zap.Int("quarter", quarter.Quarter),
			zap.Float64("gross_cash", snapshot.GrossCash),
			zap.Float64("net_cash", snapshot.NetCash),
			zap.Int("days_to_filing", snapshot.NextLiquidation.DaysRemaining),
		)
	}

	return snapshot
}

// vatBreakdown splits deductible VAT by source. Stored fixed-cost amounts
// are tax inclusive, so their embedded VAT is extracted at the configured
// rate.
func (s *CashFlowService) vatBreakdown(totals business.PeriodTotals, cfg business.FiscalConfig) business.VATBreakdown {
	breakdown := business.VATBreakdown{
		OutputVAT:        totals.OutputVAT,
		InputVATInvoices: totals.InputVAT,
	}
	if cfg.VATRate > 0 {
		breakdown.InputVATFixedCost = totals.FixedCosts * cfg.VATRate / (1 + cfg.VATRate)
	}
	breakdown.NetVATDue = math.Max(0, breakdown.OutputVAT-breakdown.InputVATInvoices-breakdown.InputVATFixedCost)
	return breakdown
}

// nextLiquidation returns the statutory filing date following the current
// quarter. Q1-Q3 settlements are due on day 20 of the month after quarter
// end; the Q4 settlement runs to January 30 of the following year.
func (s *CashFlowService) nextLiquidation(now time.Time, quarter business.FiscalQuarter) business.LiquidationDeadline {
	var due time.Time
	if quarter.Quarter == 4 {
		due = time.Date(quarter.Year+1, time.January, constants.FourthQuarterFilingDay, 0, 0, 0, 0, now.Location())
	} else {
		month := time.Month(3*quarter.Quarter + 1)
		due = time.Date(quarter.Year, month, constants.FilingDayOfMonth, 0, 0, 0, 0, now.Location())
	}

	days := int(math.Ceil(due.Sub(now).Hours() / 24))
	if days < 0 {
		days = 0
	}
	return business.LiquidationDeadline{
		Quarter:       quarter.Quarter,
		DueDate:       due,
		DaysRemaining: days,
	}
}
