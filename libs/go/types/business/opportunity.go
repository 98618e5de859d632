package business

import "time"

// WeekdayStat is the average performance of one weekday across the analysis
// window, normalized by how many times that weekday actually occurred.
type WeekdayStat struct {
	Weekday      time.Weekday `json:"weekday"`
	Occurrences  int          `json:"occurrences"`
	SaleCount    int          `json:"sale_count"`
	TotalRevenue float64      `json:"total_revenue"`
	AvgRevenue   float64      `json:"avg_revenue"`
	AvgSales     float64      `json:"avg_sales"`
}

// HourStat is the average performance of one hour of the day (0-23).
type HourStat struct {
	Hour         int     `json:"hour"`
	SaleCount    int     `json:"sale_count"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgRevenue   float64 `json:"avg_revenue"`
}

// RecommendationType tags the variant of a recommendation payload.
type RecommendationType string

const (
	RecommendExtendHours     RecommendationType = "extend_hours"
	RecommendReduceHours     RecommendationType = "reduce_hours"
	RecommendReallocateStaff RecommendationType = "reallocate_staff"
	RecommendSeasonal        RecommendationType = "seasonal"
)

// ExtendHoursData backs an extend-hours recommendation.
type ExtendHoursData struct {
	Hour       int     `json:"hour"`
	AvgRevenue float64 `json:"avg_revenue"`
	DailyMean  float64 `json:"daily_mean"`
}

// ReduceHoursData backs a reduce-hours recommendation.
type ReduceHoursData struct {
	Weekday    time.Weekday `json:"weekday"`
	AvgRevenue float64      `json:"avg_revenue"`
	AvgSales   float64      `json:"avg_sales"`
	CostShare  float64      `json:"cost_share"` // daily fixed-cost burden compared against
}

// ReallocateStaffData backs a staffing redistribution recommendation.
type ReallocateStaffData struct {
	FromWeekday time.Weekday `json:"from_weekday"`
	ToWeekday   time.Weekday `json:"to_weekday"`
	RevenueGap  float64      `json:"revenue_gap"`
}

// SeasonalData backs a seasonal-shift recommendation comparing the most
// recent month of the window against the months before it.
type SeasonalData struct {
	RecentRevenue   float64 `json:"recent_revenue"`
	BaselineRevenue float64 `json:"baseline_revenue"` // per-month baseline
	ChangePct       float64 `json:"change_pct"`
}

// Recommendation is a tagged variant: exactly one payload pointer is set,
// matching Type, so clients can switch on Type without inspecting the rest.
type Recommendation struct {
	Type       RecommendationType   `json:"type"`
	Message    string               `json:"message"`
	Confidence float64              `json:"confidence"` // 0..1
	Extend     *ExtendHoursData     `json:"extend_hours,omitempty"`
	Reduce     *ReduceHoursData     `json:"reduce_hours,omitempty"`
	Reallocate *ReallocateStaffData `json:"reallocate_staff,omitempty"`
	Seasonal   *SeasonalData        `json:"seasonal,omitempty"`
}

// OpportunityReport is the output of the temporal analyzer.
type OpportunityReport struct {
	WindowStart      time.Time        `json:"window_start"`
	WindowEnd        time.Time        `json:"window_end"`
	HasData          bool             `json:"has_data"`
	InsufficientWhy  string           `json:"insufficient_reason,omitempty"`
	WeekdayStats     []WeekdayStat    `json:"weekday_stats"`
	HourStats        []HourStat       `json:"hour_stats"`
	DailyMeanRevenue float64          `json:"daily_mean_revenue"`
	Recommendations  []Recommendation `json:"recommendations"`
}
