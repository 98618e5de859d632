package services

import (
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
)

// AggregationService sums raw records into period totals. It is pure: the
// caller supplies already-fetched snapshots and gets a value back.
type AggregationService struct{}

// NewAggregationService creates a new aggregation service.
func NewAggregationService() *AggregationService {
	return &AggregationService{}
}

// Aggregate computes the totals for the resolved period. Records outside the
// period window are skipped, so callers may pass over-fetched slices. Fixed
// costs are normalized to monthly equivalents and prorated by the period's
// month count; skipping that proration would overstate costs on partial
// periods.
func (s *AggregationService) Aggregate(period business.Period, sales []business.SaleRecord, invoices []business.PurchaseInvoice, fixedCosts []business.FixedCost) business.PeriodTotals {
	var totals business.PeriodTotals

	for _, sale := range sales {
		if !period.Contains(sale.SaleDate) {
			continue
		}
		revenue := sale.EffectiveRevenue()
		totals.RevenueTaxBase += revenue
		totals.OutputVAT += sale.TaxAmount
		totals.SaleCount++

		if sale.IsCollected() {
			totals.CollectedRevenue += revenue + sale.TaxAmount
		} else {
			totals.PendingRevenue += revenue + sale.TaxAmount
		}
	}

	for _, inv := range invoices {
		if !period.Contains(inv.InvoiceDate) {
			continue
		}
		totals.InvoiceExpenses += inv.TotalAmount
		totals.InputVAT += inv.TaxAmount
		totals.InvoiceCount++

		if inv.IsPaid() {
			totals.PaidInvoices += inv.TotalAmount
		} else {
			totals.PendingInvoices += inv.TotalAmount
		}
	}

	for _, cost := range fixedCosts {
		totals.MonthlyFixedCosts += cost.MonthlyEquivalent()
	}
	totals.FixedCosts = totals.MonthlyFixedCosts * period.MonthsInPeriod

	return totals
}
