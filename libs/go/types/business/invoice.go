package business

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseInvoice is a supplier/expense invoice. These represent the
// variable costs of the business.
type PurchaseInvoice struct {
	ID               uuid.UUID `json:"id"`
	InvoiceDate      time.Time `json:"invoice_date"`
	TotalAmount      float64   `json:"total_amount"`
	TaxAmount        float64   `json:"tax_amount"`
	PaymentStatus    string    `json:"payment_status"`
	PaymentConfirmed bool      `json:"payment_confirmed"`
}

// IsPaid reports whether the invoice has been settled, either through its
// status or an explicit payment confirmation.
func (i PurchaseInvoice) IsPaid() bool {
	return i.PaymentStatus == PaymentStatusPaid || i.PaymentConfirmed
}
