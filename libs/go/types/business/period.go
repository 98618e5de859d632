package business

import "time"

// PeriodKeyword selects the reporting window for result calculations.
type PeriodKeyword string

const (
	PeriodMonth       PeriodKeyword = "month"
	PeriodThreeMonths PeriodKeyword = "3months"
	PeriodSixMonths   PeriodKeyword = "6months"
	PeriodAll         PeriodKeyword = "all"
)

// Valid reports whether the keyword is one of the supported selectors.
func (k PeriodKeyword) Valid() bool {
	switch k {
	case PeriodMonth, PeriodThreeMonths, PeriodSixMonths, PeriodAll:
		return true
	}
	return false
}

// Period is a resolved reporting window. MonthsInPeriod may be fractional
// for "all" ranges and is always >= 1 so downstream rate divisions are safe.
type Period struct {
	Keyword        PeriodKeyword `json:"keyword"`
	Start          time.Time     `json:"start"`
	End            time.Time     `json:"end"`
	MonthsInPeriod float64       `json:"months_in_period"`
}

// Contains reports whether t falls inside the period, start inclusive,
// end inclusive.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
