package db

import (
	"context"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
	"github.com/google/uuid"
)

// Querier is the data-access contract consumed by handlers and the snapshot
// scheduler. The calculation services never touch it: they receive already
// fetched records as plain data.
type Querier interface {
	ListSales(ctx context.Context) ([]business.SaleRecord, error)
	ListSalesBetween(ctx context.Context, start, end time.Time) ([]business.SaleRecord, error)
	ListInvoicesBetween(ctx context.Context, start, end time.Time) ([]business.PurchaseInvoice, error)
	ListFixedCosts(ctx context.Context) ([]business.FixedCost, error)
	GetOldestSaleDate(ctx context.Context) (*time.Time, error)
	GetOldestInvoiceDate(ctx context.Context) (*time.Time, error)
	GetFiscalConfig(ctx context.Context) (*business.FiscalConfig, error)
	GetCurrentBalance(ctx context.Context) (float64, error)
	GetTreasuryForecast(ctx context.Context, id uuid.UUID) (*business.TreasuryForecast, error)
	SaveTreasuryForecast(ctx context.Context, forecast *business.TreasuryForecast) error
	SaveCashFlowSnapshot(ctx context.Context, snapshot *business.CashFlowSnapshot) error
}
