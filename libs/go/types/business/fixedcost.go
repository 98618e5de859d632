package business

import (
	"github.com/fiscalia/fiscalia-api/libs/go/constants"
	"github.com/google/uuid"
)

// CostFrequency is how often a fixed cost recurs.
type CostFrequency string

const (
	FrequencyMonthly   CostFrequency = "monthly"
	FrequencyQuarterly CostFrequency = "quarterly"
	FrequencyYearly    CostFrequency = "yearly"
)

// FixedCost is a recurring operating cost (rent, insurance, salaries...).
type FixedCost struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Amount    float64       `json:"amount"`
	Frequency CostFrequency `json:"frequency"`
	IsActive  bool          `json:"is_active"`
}

// MonthlyEquivalent normalizes the cost to a per-month figure. Inactive
// costs contribute nothing. Unknown frequencies are treated as monthly.
func (f FixedCost) MonthlyEquivalent() float64 {
	if !f.IsActive {
		return 0
	}
	switch f.Frequency {
	case FrequencyQuarterly:
		return f.Amount / constants.MonthsPerQuarter
	case FrequencyYearly:
		return f.Amount / constants.MonthsPerYear
	default:
		return f.Amount
	}
}
