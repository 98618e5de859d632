package business

// PeriodTotals is the raw aggregation of sales, purchase invoices and fixed
// costs over a resolved period, before any fiscal derivation.
type PeriodTotals struct {
	// Revenue side
	RevenueTaxBase   float64 `json:"revenue_tax_base"` // base imponible
	OutputVAT        float64 `json:"output_vat"`       // IVA repercutido
	CollectedRevenue float64 `json:"collected_revenue"`
	PendingRevenue   float64 `json:"pending_revenue"`
	SaleCount        int     `json:"sale_count"`

	// Expense side
	InvoiceExpenses float64 `json:"invoice_expenses"`
	InputVAT        float64 `json:"input_vat"` // IVA soportado
	PaidInvoices    float64 `json:"paid_invoices"`
	PendingInvoices float64 `json:"pending_invoices"`
	InvoiceCount    int     `json:"invoice_count"`

	// Fixed costs
	MonthlyFixedCosts float64 `json:"monthly_fixed_costs"`
	FixedCosts        float64 `json:"fixed_costs"` // prorated to the period
}

// WaterfallStepType classifies entries of the result waterfall.
type WaterfallStepType string

const (
	WaterfallIncome    WaterfallStepType = "income"
	WaterfallDeduction WaterfallStepType = "deduction"
	WaterfallSubtotal  WaterfallStepType = "subtotal"
	WaterfallTotal     WaterfallStepType = "total"
)

// WaterfallStep is one named step of the profit waterfall with its running
// cumulative value.
type WaterfallStep struct {
	Label      string            `json:"label"`
	Type       WaterfallStepType `json:"type"`
	Amount     float64           `json:"amount"`
	Cumulative float64           `json:"cumulative"`
}

// BusinessResult is the full derived statement for a period. It is built
// fresh on every request and never mutated in place.
type BusinessResult struct {
	Period  Period       `json:"period"`
	Totals  PeriodTotals `json:"totals"`
	HasData bool         `json:"has_data"`

	GrossIncome           float64 `json:"gross_income"`
	VariableCosts         float64 `json:"variable_costs"`
	TotalCosts            float64 `json:"total_costs"`
	GrossMargin           float64 `json:"gross_margin"`
	GrossMarginPct        float64 `json:"gross_margin_pct"`
	OperatingProfit       float64 `json:"operating_profit"`
	VATDue                float64 `json:"vat_due"`
	VATCredit             float64 `json:"vat_credit"` // input VAT excess, informational
	EstimatedIRPF         float64 `json:"estimated_irpf"`
	EstimatedCorpTax      float64 `json:"estimated_corporate_tax"`
	TotalTaxBurden        float64 `json:"total_tax_burden"`
	RecommendedTaxReserve float64 `json:"recommended_tax_reserve"`
	NetProfit             float64 `json:"net_profit"`

	// Cash position
	CashBalance       float64 `json:"cash_balance"`
	CoverageDays      int     `json:"coverage_days"`
	CoverageUnbounded bool    `json:"coverage_unbounded"`

	Waterfall []WaterfallStep `json:"waterfall"`
}
