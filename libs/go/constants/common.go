package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Currencies
	EURCurrency = "EUR"
)

// Statutory defaults applied when no fiscal configuration is stored.
const (
	DefaultVATRate          = 0.21
	DefaultIRPFRate         = 0.15
	DefaultCorporateTaxRate = 0.25
)

// Quarterly settlement constants (Spanish AEAT calendar).
const (
	// IRPFInstallmentRate is the fixed fractional payment rate applied to
	// quarterly operating profit (modelo 130). It is independent of the
	// annual IRPF rate configured per business.
	IRPFInstallmentRate = 0.20

	// FilingDayOfMonth is the statutory filing day for Q1-Q3 settlements,
	// counted in the month following quarter end.
	FilingDayOfMonth = 20

	// FourthQuarterFilingDay is the extended filing day for the Q4
	// settlement, due in January of the following year.
	FourthQuarterFilingDay = 30
)

// Derived-figure constants.
const (
	// TaxReserveSafetyFactor pads the recommended tax reserve above the
	// estimated total burden.
	TaxReserveSafetyFactor = 1.1

	// ForecastWarningThreshold is the balance below which a forecast
	// period is flagged as warning. Danger starts below zero.
	ForecastWarningThreshold = 2000.0

	// MonthsPerYear and related frequency divisors for fixed costs.
	MonthsPerYear    = 12
	MonthsPerQuarter = 3

	// DaysPerMonth is the flat day count used when converting monthly
	// figures to daily burn rates.
	DaysPerMonth = 30
)

// Opportunity analyzer thresholds.
const (
	// OpportunityWindowDays is the trailing window analyzed.
	OpportunityWindowDays = 90

	// MinHistoryMonths is the minimum sales history required before the
	// analyzer emits recommendations.
	MinHistoryMonths = 3

	// FullConfidenceSampleDays is the per-weekday sample size at which a
	// recommendation reaches full confidence.
	FullConfidenceSampleDays = 8

	// LowRevenueShare flags a weekday or hour whose average revenue falls
	// below this share of the daily fixed-cost burden.
	LowRevenueShare = 0.5

	// LowVolumeSales flags a weekday averaging fewer sales than this.
	LowVolumeSales = 2.0

	// SeasonalDeviationShare is the relative deviation of the most recent
	// month's revenue from the earlier months' baseline at which a
	// seasonal shift is flagged.
	SeasonalDeviationShare = 0.3
)
