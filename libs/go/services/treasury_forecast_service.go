package services

import (
	"math"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/constants"
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
)

// TreasuryForecastService generates and recalculates treasury projections.
// The defining invariant is the balance chain: every period's initial
// balance equals the previous period's final balance, and any edit to a
// single period re-folds the whole sequence from index 0. Re-folding from
// the start rather than the edited index trades a little work for a chain
// that can never drift.
type TreasuryForecastService struct{}

// NewTreasuryForecastService creates a new treasury forecast service.
func NewTreasuryForecastService() *TreasuryForecastService {
	return &TreasuryForecastService{}
}

// GenerateEmptyPeriods builds count periods starting at start with zero
// planned figures and the given opening balance. Deterministic: same inputs,
// same output.
func (s *TreasuryForecastService) GenerateEmptyPeriods(start time.Time, periodType business.ForecastPeriodType, count int, initialBalance float64) []business.ForecastPeriod {
	if count <= 0 {
		return []business.ForecastPeriod{}
	}

	periods := make([]business.ForecastPeriod, count)
	date := start
	for i := range periods {
		periods[i] = business.ForecastPeriod{PeriodDate: date}
		if periodType == business.ForecastWeekly {
			date = date.AddDate(0, 0, 7)
		} else {
			date = date.AddDate(0, 1, 0)
		}
	}
	periods[0].InitialBalance = CoerceAmount(initialBalance)

	s.RecalculateBalances(periods)
	return periods
}

// RecalculateBalances runs the strict left-to-right fold over the sequence
// in place: final[i] = initial[i] + income[i] - expense[i], and the next
// period opens with that final balance. Planned figures are coerced through
// CoerceAmount first so a malformed edit can never poison the chain. There
// is no early exit.
func (s *TreasuryForecastService) RecalculateBalances(periods []business.ForecastPeriod) {
	for i := range periods {
		if i > 0 {
			periods[i].InitialBalance = periods[i-1].FinalBalance
		}
		periods[i].PlannedIncome = CoerceAmount(periods[i].PlannedIncome)
		periods[i].PlannedExpense = CoerceAmount(periods[i].PlannedExpense)
		periods[i].FinalBalance = periods[i].InitialBalance + periods[i].PlannedIncome - periods[i].PlannedExpense
		periods[i].Alert = classifyBalance(periods[i].FinalBalance)
	}
}

// CoerceAmount applies the forecast leniency policy: NaN and infinite
// values collapse to 0 so a user mid-edit always sees a renderable table.
func CoerceAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func classifyBalance(balance float64) business.AlertLevel {
	switch {
	case balance < 0:
		return business.AlertDanger
	case balance < constants.ForecastWarningThreshold:
		return business.AlertWarning
	default:
		return business.AlertSafe
	}
}
