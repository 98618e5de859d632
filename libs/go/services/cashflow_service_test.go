package services_test

import (
	"testing"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/services"
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashFlowService_CurrentQuarter(t *testing.T) {
	svc := services.NewCashFlowService()

	tests := []struct {
		name          string
		now           time.Time
		expectedQ     int
		expectedStart time.Time
	}{
		{
			name:          "january is Q1",
			now:           time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			expectedQ:     1,
			expectedStart: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "may is Q2",
			now:           time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC),
			expectedQ:     2,
			expectedStart: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "september is Q3",
			now:           time.Date(2026, time.September, 30, 23, 0, 0, 0, time.UTC),
			expectedQ:     3,
			expectedStart: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:          "december is Q4",
			now:           time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC),
			expectedQ:     4,
			expectedStart: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quarter := svc.CurrentQuarter(tt.now)
			assert.Equal(t, tt.expectedQ, quarter.Quarter)
			assert.Equal(t, tt.expectedStart, quarter.Start)
			assert.Equal(t, tt.expectedStart.AddDate(0, 3, 0).Add(-time.Second), quarter.End)
		})
	}
}

func TestCashFlowService_Snapshot(t *testing.T) {
	svc := services.NewCashFlowService()
	now := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	inQuarter := time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC)

	sales := []business.SaleRecord{
		saleOn(inQuarter, 10000, 2100, business.PaymentStatusPaid),
	}
	invoices := []business.PurchaseInvoice{
		{InvoiceDate: inQuarter, TotalAmount: 3000, TaxAmount: 630, PaymentStatus: business.PaymentStatusPaid},
	}
	fixedCosts := []business.FixedCost{
		{Amount: 500, Frequency: business.FrequencyMonthly, IsActive: true},
	}

	snapshot := svc.Snapshot(now, sales, invoices, fixedCosts, soleTraderConfig())

	require.True(t, snapshot.HasData)
	assert.Equal(t, 2, snapshot.Quarter.Quarter)

	// Accrual view: fixed costs cover the whole quarter.
	assert.InDelta(t, 12100.0, snapshot.AccrualIncome, 0.001)
	assert.InDelta(t, 4500.0, snapshot.AccrualExpenses, 0.001)
	assert.InDelta(t, 7600.0, snapshot.AccrualResult, 0.001)

	// Cash view.
	assert.InDelta(t, 12100.0, snapshot.Collected, 0.001)
	assert.InDelta(t, 4500.0, snapshot.Paid, 0.001)
	assert.InDelta(t, 7600.0, snapshot.GrossCash, 0.001)

	// VAT: 1500 of quarterly fixed costs carries 21% embedded VAT.
	embeddedVAT := 1500 * 0.21 / 1.21
	assert.InDelta(t, 2100.0, snapshot.VAT.OutputVAT, 0.001)
	assert.InDelta(t, 630.0, snapshot.VAT.InputVATInvoices, 0.001)
	assert.InDelta(t, embeddedVAT, snapshot.VAT.InputVATFixedCost, 0.001)
	assert.InDelta(t, 2100-630-embeddedVAT, snapshot.VAT.NetVATDue, 0.001)

	// Modelo 130: 20% of positive quarterly operating profit.
	assert.InDelta(t, 7600*0.20, snapshot.IRPFInstallment, 0.001)

	expectedNet := snapshot.GrossCash - snapshot.VAT.NetVATDue - snapshot.IRPFInstallment
	assert.InDelta(t, expectedNet, snapshot.NetCash, 0.001)
}

func TestCashFlowService_IRPFInstallment(t *testing.T) {
	svc := services.NewCashFlowService()
	now := time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC)
	inQuarter := time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC)

	sales := []business.SaleRecord{saleOn(inQuarter, 10000, 2100, business.PaymentStatusPaid)}

	t.Run("companies pay no fractional IRPF", func(t *testing.T) {
		cfg := soleTraderConfig()
		cfg.EntityType = business.EntityLimitedCompany
		snapshot := svc.Snapshot(now, sales, nil, nil, cfg)
		assert.Equal(t, 0.0, snapshot.IRPFInstallment)
	})

	t.Run("loss-making quarter owes nothing", func(t *testing.T) {
		invoices := []business.PurchaseInvoice{
			{InvoiceDate: inQuarter, TotalAmount: 20000, TaxAmount: 4200, PaymentStatus: business.PaymentStatusPaid},
		}
		snapshot := svc.Snapshot(now, sales, invoices, nil, soleTraderConfig())
		assert.Equal(t, 0.0, snapshot.IRPFInstallment)
	})
}

func TestCashFlowService_NextLiquidation(t *testing.T) {
	svc := services.NewCashFlowService()

	tests := []struct {
		name         string
		now          time.Time
		expectedDue  time.Time
		expectedDays int
	}{
		{
			name:         "Q2 files on July 20",
			now:          time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC),
			expectedDue:  time.Date(2026, time.July, 20, 0, 0, 0, 0, time.UTC),
			expectedDays: 66,
		},
		{
			name:         "Q4 files on January 30 of the next year",
			now:          time.Date(2026, time.November, 10, 0, 0, 0, 0, time.UTC),
			expectedDue:  time.Date(2027, time.January, 30, 0, 0, 0, 0, time.UTC),
			expectedDays: 81,
		},
		{
			name:         "Q1 files on April 20",
			now:          time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
			expectedDue:  time.Date(2026, time.April, 20, 0, 0, 0, 0, time.UTC),
			expectedDays: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := svc.Snapshot(tt.now, nil, nil, nil, soleTraderConfig())
			assert.Equal(t, tt.expectedDue, snapshot.NextLiquidation.DueDate)
			assert.Equal(t, tt.expectedDays, snapshot.NextLiquidation.DaysRemaining)
			assert.False(t, snapshot.HasData)
		})
	}
}
