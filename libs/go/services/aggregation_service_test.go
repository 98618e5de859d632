package services_test

import (
	"testing"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/services"
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func monthPeriod(year int, month time.Month) business.Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return business.Period{
		Keyword:        business.PeriodMonth,
		Start:          start,
		End:            start.AddDate(0, 1, 0).Add(-time.Second),
		MonthsInPeriod: 1,
	}
}

func saleOn(day time.Time, subtotal, tax float64, status string) business.SaleRecord {
	return business.SaleRecord{
		ID:            uuid.New(),
		Subtotal:      subtotal,
		Total:         subtotal + tax,
		TaxAmount:     tax,
		SaleDate:      day,
		PaymentStatus: status,
		PaymentMethod: "card",
		CreatedAt:     day,
	}
}

func TestAggregationService_FixedCostMonthlyEquivalents(t *testing.T) {
	tests := []struct {
		name     string
		cost     business.FixedCost
		expected float64
	}{
		{
			name:     "monthly cost counts as-is",
			cost:     business.FixedCost{Amount: 600, Frequency: business.FrequencyMonthly, IsActive: true},
			expected: 600,
		},
		{
			name:     "quarterly cost divides by three",
			cost:     business.FixedCost{Amount: 600, Frequency: business.FrequencyQuarterly, IsActive: true},
			expected: 200,
		},
		{
			name:     "yearly cost divides by twelve",
			cost:     business.FixedCost{Amount: 600, Frequency: business.FrequencyYearly, IsActive: true},
			expected: 50,
		},
		{
			name:     "inactive cost contributes nothing",
			cost:     business.FixedCost{Amount: 600, Frequency: business.FrequencyMonthly, IsActive: false},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cost.MonthlyEquivalent())
		})
	}
}

func TestAggregationService_Aggregate(t *testing.T) {
	agg := services.NewAggregationService()
	period := monthPeriod(2026, time.May)
	mid := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	sales := []business.SaleRecord{
		saleOn(mid, 1000, 210, business.PaymentStatusPaid),
		saleOn(mid.AddDate(0, 0, 5), 500, 105, business.PaymentStatusPending),
		// Outside the period, must be skipped.
		saleOn(mid.AddDate(0, -2, 0), 9999, 2100, business.PaymentStatusPaid),
	}
	invoices := []business.PurchaseInvoice{
		{ID: uuid.New(), InvoiceDate: mid, TotalAmount: 300, TaxAmount: 63, PaymentStatus: business.PaymentStatusPaid},
		{ID: uuid.New(), InvoiceDate: mid, TotalAmount: 200, TaxAmount: 42, PaymentStatus: business.PaymentStatusPending, PaymentConfirmed: true},
		{ID: uuid.New(), InvoiceDate: mid, TotalAmount: 100, TaxAmount: 21, PaymentStatus: business.PaymentStatusPending},
	}
	fixedCosts := []business.FixedCost{
		{Amount: 300, Frequency: business.FrequencyMonthly, IsActive: true},
		{Amount: 600, Frequency: business.FrequencyQuarterly, IsActive: true},
	}

	totals := agg.Aggregate(period, sales, invoices, fixedCosts)

	assert.Equal(t, 1500.0, totals.RevenueTaxBase)
	assert.Equal(t, 315.0, totals.OutputVAT)
	assert.Equal(t, 2, totals.SaleCount)
	assert.Equal(t, 1210.0, totals.CollectedRevenue)
	assert.Equal(t, 605.0, totals.PendingRevenue)

	assert.Equal(t, 600.0, totals.InvoiceExpenses)
	assert.Equal(t, 126.0, totals.InputVAT)
	assert.Equal(t, 3, totals.InvoiceCount)
	// Confirmed payment counts as paid even while the status lags.
	assert.Equal(t, 500.0, totals.PaidInvoices)
	assert.Equal(t, 100.0, totals.PendingInvoices)

	assert.Equal(t, 500.0, totals.MonthlyFixedCosts)
	assert.Equal(t, 500.0, totals.FixedCosts)
}

func TestAggregationService_FixedCostProration(t *testing.T) {
	agg := services.NewAggregationService()
	fixedCosts := []business.FixedCost{
		{Amount: 500, Frequency: business.FrequencyMonthly, IsActive: true},
	}

	tests := []struct {
		name     string
		months   float64
		expected float64
	}{
		{name: "single month", months: 1, expected: 500},
		{name: "six months", months: 6, expected: 3000},
		{name: "fractional all-time window", months: 14.5, expected: 7250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := business.Period{
				Start:          time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
				End:            time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
				MonthsInPeriod: tt.months,
			}
			totals := agg.Aggregate(period, nil, nil, fixedCosts)
			assert.InDelta(t, tt.expected, totals.FixedCosts, 0.001)
		})
	}
}

func TestAggregationService_EffectiveRevenueFallback(t *testing.T) {
	agg := services.NewAggregationService()
	period := monthPeriod(2026, time.May)
	mid := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	sales := []business.SaleRecord{
		// Subtotal missing: the tax-inclusive total is used instead.
		{ID: uuid.New(), Total: 121, TaxAmount: 21, SaleDate: mid, PaymentStatus: business.PaymentStatusPaid},
		// Both missing: contributes nothing.
		{ID: uuid.New(), SaleDate: mid, PaymentStatus: business.PaymentStatusPaid},
	}

	totals := agg.Aggregate(period, sales, nil, nil)
	assert.Equal(t, 121.0, totals.RevenueTaxBase)
	assert.Equal(t, 2, totals.SaleCount)
}
