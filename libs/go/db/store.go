package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Queries is the pgx-backed implementation of Querier.
type Queries struct {
	pool *pgxpool.Pool
}

// New creates a Queries instance over the given connection pool.
func New(pool *pgxpool.Pool) *Queries {
	return &Queries{pool: pool}
}

// Connect opens a pgx pool for the given DSN and verifies connectivity.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}
	return pool, nil
}

const listSalesQuery = `
	SELECT id, subtotal, total, tax_amount, sale_date, sale_time,
	       payment_status, payment_method, created_at
	FROM sales
	ORDER BY sale_date
`

// ListSales returns every sale, oldest first.
func (q *Queries) ListSales(ctx context.Context) ([]business.SaleRecord, error) {
	rows, err := q.pool.Query(ctx, listSalesQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query sales")
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListSalesBetween returns sales dated inside [start, end].
func (q *Queries) ListSalesBetween(ctx context.Context, start, end time.Time) ([]business.SaleRecord, error) {
	query := `
		SELECT id, subtotal, total, tax_amount, sale_date, sale_time,
		       payment_status, payment_method, created_at
		FROM sales
		WHERE sale_date >= $1 AND sale_date <= $2
		ORDER BY sale_date
	`
	rows, err := q.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query sales in range")
	}
	defer rows.Close()
	return scanSales(rows)
}

func scanSales(rows pgx.Rows) ([]business.SaleRecord, error) {
	var sales []business.SaleRecord
	for rows.Next() {
		var sale business.SaleRecord
		var subtotal, total, taxAmount pgtype.Float8
		var saleTime pgtype.Text
		if err := rows.Scan(&sale.ID, &subtotal, &total, &taxAmount, &sale.SaleDate,
			&saleTime, &sale.PaymentStatus, &sale.PaymentMethod, &sale.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan sale")
		}
		sale.Subtotal = subtotal.Float64
		sale.Total = total.Float64
		sale.TaxAmount = taxAmount.Float64
		if saleTime.Valid {
			sale.SaleTime = &saleTime.String
		}
		sales = append(sales, sale)
	}
	return sales, errors.Wrap(rows.Err(), "failed to read sales")
}

// ListInvoicesBetween returns purchase invoices dated inside [start, end].
func (q *Queries) ListInvoicesBetween(ctx context.Context, start, end time.Time) ([]business.PurchaseInvoice, error) {
	query := `
		SELECT id, invoice_date, total_amount, tax_amount, payment_status, payment_confirmed
		FROM purchase_invoices
		WHERE invoice_date >= $1 AND invoice_date <= $2
		ORDER BY invoice_date
	`
	rows, err := q.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query invoices")
	}
	defer rows.Close()

	var invoices []business.PurchaseInvoice
	for rows.Next() {
		var inv business.PurchaseInvoice
		var totalAmount, taxAmount pgtype.Float8
		if err := rows.Scan(&inv.ID, &inv.InvoiceDate, &totalAmount, &taxAmount,
			&inv.PaymentStatus, &inv.PaymentConfirmed); err != nil {
			return nil, errors.Wrap(err, "failed to scan invoice")
		}
		inv.TotalAmount = totalAmount.Float64
		inv.TaxAmount = taxAmount.Float64
		invoices = append(invoices, inv)
	}
	return invoices, errors.Wrap(rows.Err(), "failed to read invoices")
}

// ListFixedCosts returns all fixed costs, active and inactive; the engine
// already treats inactive costs as zero.
func (q *Queries) ListFixedCosts(ctx context.Context) ([]business.FixedCost, error) {
	query := `SELECT id, name, amount, frequency, is_active FROM fixed_costs ORDER BY name`
	rows, err := q.pool.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query fixed costs")
	}
	defer rows.Close()

	var costs []business.FixedCost
	for rows.Next() {
		var cost business.FixedCost
		var frequency string
		if err := rows.Scan(&cost.ID, &cost.Name, &cost.Amount, &frequency, &cost.IsActive); err != nil {
			return nil, errors.Wrap(err, "failed to scan fixed cost")
		}
		cost.Frequency = business.CostFrequency(frequency)
		costs = append(costs, cost)
	}
	return costs, errors.Wrap(rows.Err(), "failed to read fixed costs")
}

// GetOldestSaleDate returns the earliest sale date, or nil when there are no
// sales.
func (q *Queries) GetOldestSaleDate(ctx context.Context) (*time.Time, error) {
	return q.oldestDate(ctx, `SELECT MIN(sale_date) FROM sales`)
}

// GetOldestInvoiceDate returns the earliest invoice date, or nil when there
// are no invoices.
func (q *Queries) GetOldestInvoiceDate(ctx context.Context) (*time.Time, error) {
	return q.oldestDate(ctx, `SELECT MIN(invoice_date) FROM purchase_invoices`)
}

func (q *Queries) oldestDate(ctx context.Context, query string) (*time.Time, error) {
	var oldest pgtype.Timestamptz
	if err := q.pool.QueryRow(ctx, query).Scan(&oldest); err != nil {
		return nil, errors.Wrap(err, "failed to query oldest date")
	}
	if !oldest.Valid {
		return nil, nil
	}
	return &oldest.Time, nil
}

// GetFiscalConfig loads the stored fiscal configuration. Returns nil without
// error when none is stored; callers fall back to the default profile.
func (q *Queries) GetFiscalConfig(ctx context.Context) (*business.FiscalConfig, error) {
	query := `
		SELECT entity_type, vat_rate, irpf_rate, corporate_tax_rate
		FROM fiscal_config
		ORDER BY updated_at DESC
		LIMIT 1
	`
	var cfg business.FiscalConfig
	var entityType string
	err := q.pool.QueryRow(ctx, query).Scan(&entityType, &cfg.VATRate, &cfg.IRPFRate, &cfg.CorporateTaxRate)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query fiscal config")
	}
	cfg.EntityType = business.EntityType(entityType)
	return &cfg, nil
}

// GetCurrentBalance returns the latest known cash balance, 0 when none has
// been recorded yet.
func (q *Queries) GetCurrentBalance(ctx context.Context) (float64, error) {
	var balance pgtype.Float8
	err := q.pool.QueryRow(ctx, `SELECT balance FROM cash_balances ORDER BY recorded_at DESC LIMIT 1`).Scan(&balance)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to query current balance")
	}
	return balance.Float64, nil
}

// GetTreasuryForecast loads a forecast document with its period list.
func (q *Queries) GetTreasuryForecast(ctx context.Context, id uuid.UUID) (*business.TreasuryForecast, error) {
	query := `SELECT id, period_type, periods, updated_at FROM treasury_forecasts WHERE id = $1`
	forecast := &business.TreasuryForecast{}
	var periodType string
	var periodsJSON []byte
	err := q.pool.QueryRow(ctx, query, id).Scan(&forecast.ID, &periodType, &periodsJSON, &forecast.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to query forecast")
	}
	forecast.PeriodType = business.ForecastPeriodType(periodType)
	if err := json.Unmarshal(periodsJSON, &forecast.Periods); err != nil {
		return nil, errors.Wrap(err, "failed to decode forecast periods")
	}
	return forecast, nil
}

// SaveTreasuryForecast upserts the whole forecast document. Edits are full
// recompute, full persist; there is no per-period write path.
func (q *Queries) SaveTreasuryForecast(ctx context.Context, forecast *business.TreasuryForecast) error {
	periodsJSON, err := json.Marshal(forecast.Periods)
	if err != nil {
		return errors.Wrap(err, "failed to encode forecast periods")
	}
	query := `
		INSERT INTO treasury_forecasts (id, period_type, periods, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET period_type = EXCLUDED.period_type,
		    periods = EXCLUDED.periods,
		    updated_at = EXCLUDED.updated_at
	`
	_, err = q.pool.Exec(ctx, query, forecast.ID, string(forecast.PeriodType), periodsJSON, forecast.UpdatedAt)
	return errors.Wrap(err, "failed to save forecast")
}

// SaveCashFlowSnapshot stores a computed quarterly snapshot for dashboards
// and history.
func (q *Queries) SaveCashFlowSnapshot(ctx context.Context, snapshot *business.CashFlowSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}
	query := `
		INSERT INTO cashflow_snapshots (year, quarter, snapshot, computed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (year, quarter) DO UPDATE
		SET snapshot = EXCLUDED.snapshot, computed_at = EXCLUDED.computed_at
	`
	_, err = q.pool.Exec(ctx, query, snapshot.Quarter.Year, snapshot.Quarter.Quarter, payload, time.Now())
	return errors.Wrap(err, "failed to save snapshot")
}
