package business

import "time"

// FiscalQuarter is a fixed Spanish fiscal quarter (Q1 Jan-Mar ... Q4 Oct-Dec).
type FiscalQuarter struct {
	Year    int       `json:"year"`
	Quarter int       `json:"quarter"` // 1..4
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// VATBreakdown splits the quarter's deductible VAT by source.
type VATBreakdown struct {
	OutputVAT         float64 `json:"output_vat"`
	InputVATInvoices  float64 `json:"input_vat_invoices"`
	InputVATFixedCost float64 `json:"input_vat_fixed_costs"`
	NetVATDue         float64 `json:"net_vat_due"`
}

// LiquidationDeadline is the next statutory filing date with countdown.
type LiquidationDeadline struct {
	Quarter       int       `json:"quarter"`
	DueDate       time.Time `json:"due_date"`
	DaysRemaining int       `json:"days_remaining"`
}

// CashFlowSnapshot is the cash position of the current fiscal quarter,
// including the obligations that must be reserved for the next settlement.
type CashFlowSnapshot struct {
	Quarter FiscalQuarter `json:"quarter"`
	HasData bool          `json:"has_data"`

	// Accrual view: what was earned and owed regardless of collection.
	AccrualIncome   float64 `json:"accrual_income"`
	AccrualExpenses float64 `json:"accrual_expenses"`
	AccrualResult   float64 `json:"accrual_result"`

	// Cash view: what actually moved.
	Collected float64 `json:"collected"`
	Paid      float64 `json:"paid"`
	GrossCash float64 `json:"gross_cash"`

	// Obligations reserved against the gross cash position.
	VAT             VATBreakdown `json:"vat"`
	IRPFInstallment float64      `json:"irpf_installment"`
	NetCash         float64      `json:"net_cash"`

	NextLiquidation LiquidationDeadline `json:"next_liquidation"`
}
