package business

import (
	"time"

	"github.com/google/uuid"
)

// ForecastPeriodType is the granularity of a treasury forecast.
type ForecastPeriodType string

const (
	ForecastMonthly ForecastPeriodType = "monthly"
	ForecastWeekly  ForecastPeriodType = "weekly"
)

// AlertLevel classifies the projected balance of a forecast period.
type AlertLevel string

const (
	AlertSafe    AlertLevel = "safe"
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)

// ForecastPeriod is one projected period. PlannedIncome and PlannedExpense
// are user-edited; InitialBalance, FinalBalance and Alert are derived by the
// recalculation fold and must never be edited directly.
type ForecastPeriod struct {
	PeriodDate     time.Time  `json:"period_date"`
	InitialBalance float64    `json:"initial_balance"`
	PlannedIncome  float64    `json:"planned_income"`
	PlannedExpense float64    `json:"planned_expense"`
	FinalBalance   float64    `json:"final_balance"`
	Alert          AlertLevel `json:"alert"`
}

// TreasuryForecast is an ordered projection of future periods where each
// period's initial balance is the previous period's final balance.
type TreasuryForecast struct {
	ID         uuid.UUID          `json:"id"`
	PeriodType ForecastPeriodType `json:"period_type"`
	Periods    []ForecastPeriod   `json:"periods"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
