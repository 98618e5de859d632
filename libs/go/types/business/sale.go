package business

import (
	"time"

	"github.com/google/uuid"
)

// Payment status values shared by sales and purchase invoices.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// SaleRecord is a single sale as loaded from the data layer. Subtotal is the
// pre-tax amount and is authoritative for revenue recognition; Total is the
// tax-inclusive amount.
type SaleRecord struct {
	ID            uuid.UUID `json:"id"`
	Subtotal      float64   `json:"subtotal"`
	Total         float64   `json:"total"`
	TaxAmount     float64   `json:"tax_amount"`
	SaleDate      time.Time `json:"sale_date"`
	SaleTime      *string   `json:"sale_time,omitempty"` // "HH:MM", optional
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

// EffectiveRevenue resolves the amount counted toward the revenue tax base.
// Precedence: subtotal when present, otherwise the tax-inclusive total,
// otherwise zero. Kept as a named function so the fallback chain stays in
// one place.
func (s SaleRecord) EffectiveRevenue() float64 {
	if s.Subtotal > 0 {
		return s.Subtotal
	}
	if s.Total > 0 {
		return s.Total
	}
	return 0
}

// IsCollected reports whether the sale has actually been collected.
func (s SaleRecord) IsCollected() bool {
	return s.PaymentStatus == PaymentStatusPaid
}
