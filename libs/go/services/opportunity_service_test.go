package services_test

import (
	"testing"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/services"
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dailySales builds one paid sale per day at 12:00 over the trailing window,
// with revenue chosen per weekday. An extra sale four months back anchors the
// history-length check.
func dailySales(now time.Time, revenueFor func(time.Weekday) float64) []business.SaleRecord {
	saleTime := "12:00"
	sales := []business.SaleRecord{
		saleOn(now.AddDate(0, -4, 0), 100, 21, business.PaymentStatusPaid),
	}
	for offset := 0; offset < 90; offset++ {
		day := now.AddDate(0, 0, -offset)
		sale := saleOn(day, revenueFor(day.Weekday()), 0, business.PaymentStatusPaid)
		sale.SaleTime = &saleTime
		sales = append(sales, sale)
	}
	return sales
}

func TestOpportunityService_InsufficientData(t *testing.T) {
	svc := services.NewOpportunityService()
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	t.Run("no sales at all", func(t *testing.T) {
		report := svc.Analyze(now, nil, 3000)
		assert.False(t, report.HasData)
		assert.Equal(t, "no sales history", report.InsufficientWhy)
		assert.Empty(t, report.Recommendations)
	})

	t.Run("history shorter than three months", func(t *testing.T) {
		sales := []business.SaleRecord{
			saleOn(now.AddDate(0, -2, 0), 500, 105, business.PaymentStatusPaid),
			saleOn(now.AddDate(0, 0, -10), 500, 105, business.PaymentStatusPaid),
		}
		report := svc.Analyze(now, sales, 3000)
		assert.False(t, report.HasData)
		assert.Equal(t, "less than 3 months of sales history", report.InsufficientWhy)
	})
}

func TestOpportunityService_WeekdayStats(t *testing.T) {
	svc := services.NewOpportunityService()
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	sales := dailySales(now, func(time.Weekday) float64 { return 200 })
	report := svc.Analyze(now, sales, 0)
	require.True(t, report.HasData)
	require.Len(t, report.WeekdayStats, 7)

	// The inclusive 90-day window spans 91 calendar days.
	var occurrences int
	for _, stat := range report.WeekdayStats {
		occurrences += stat.Occurrences
		assert.GreaterOrEqual(t, stat.Occurrences, 12)
		assert.LessOrEqual(t, stat.Occurrences, 14)
	}
	assert.Equal(t, 91, occurrences)

	// Every day sold 200, so averages settle near 200 regardless of how many
	// of each weekday the window holds.
	for _, stat := range report.WeekdayStats {
		assert.InDelta(t, 200.0, stat.AvgRevenue, 20.0, "weekday %s", stat.Weekday)
		assert.InDelta(t, 1.0, stat.AvgSales, 0.1)
	}
	// The daily mean is taken over the same inclusive day count the
	// occurrences sum to: 90 sales of 200 across 91 days.
	assert.InDelta(t, 18000.0/91.0, report.DailyMeanRevenue, 0.001)
}

func TestOpportunityService_HourExtraction(t *testing.T) {
	svc := services.NewOpportunityService()
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	day := now.AddDate(0, 0, -5)

	explicit := "18:30"
	withTime := saleOn(time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC), 100, 0, business.PaymentStatusPaid)
	withTime.SaleTime = &explicit

	embedded := saleOn(time.Date(day.Year(), day.Month(), day.Day(), 14, 45, 0, 0, time.UTC), 100, 0, business.PaymentStatusPaid)

	fallback := saleOn(time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC), 100, 0, business.PaymentStatusPaid)
	fallback.CreatedAt = time.Date(day.Year(), day.Month(), day.Day(), 9, 15, 0, 0, time.UTC)

	anchor := saleOn(now.AddDate(0, -4, 0), 100, 0, business.PaymentStatusPaid)

	report := svc.Analyze(now, []business.SaleRecord{withTime, embedded, fallback, anchor}, 0)
	require.True(t, report.HasData)

	assert.Equal(t, 1, report.HourStats[18].SaleCount, "explicit sale_time wins")
	assert.Equal(t, 1, report.HourStats[14].SaleCount, "non-midnight sale date time is used")
	assert.Equal(t, 1, report.HourStats[9].SaleCount, "created_at is the last resort")
}

func TestOpportunityService_ReduceHoursRecommendation(t *testing.T) {
	svc := services.NewOpportunityService()
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	// 3000/month of fixed costs is a 100/day share. Sundays earn 30 with one
	// sale, under both the half-share revenue floor and the volume floor.
	sales := dailySales(now, func(wd time.Weekday) float64 {
		if wd == time.Sunday {
			return 30
		}
		return 200
	})

	report := svc.Analyze(now, sales, 3000)
	require.True(t, report.HasData)

	var reduce *business.Recommendation
	for i := range report.Recommendations {
		if report.Recommendations[i].Type == business.RecommendReduceHours {
			reduce = &report.Recommendations[i]
		}
	}
	require.NotNil(t, reduce, "expected a reduce-hours recommendation")
	require.NotNil(t, reduce.Reduce)
	assert.Equal(t, time.Sunday, reduce.Reduce.Weekday)
	assert.InDelta(t, 100.0, reduce.Reduce.CostShare, 0.001)
	assert.Less(t, reduce.Reduce.AvgRevenue, 50.0)
	assert.Equal(t, 1.0, reduce.Confidence, "a full window of Sundays is full confidence")
}

func TestOpportunityService_ReallocateStaffRecommendation(t *testing.T) {
	svc := services.NewOpportunityService()
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	// Saturdays at 500 against Mondays at 50 is a gap well past half the
	// best day's average.
	sales := dailySales(now, func(wd time.Weekday) float64 {
		switch wd {
		case time.Saturday:
			return 500
		case time.Monday:
			return 50
		default:
			return 200
		}
	})

	report := svc.Analyze(now, sales, 0)
	require.True(t, report.HasData)

	var reallocate *business.Recommendation
	for i := range report.Recommendations {
		if report.Recommendations[i].Type == business.RecommendReallocateStaff {
			reallocate = &report.Recommendations[i]
		}
	}
	require.NotNil(t, reallocate, "expected a reallocate-staff recommendation")
	require.NotNil(t, reallocate.Reallocate)
	assert.Equal(t, time.Saturday, reallocate.Reallocate.ToWeekday)
	assert.Equal(t, time.Monday, reallocate.Reallocate.FromWeekday)
	assert.Greater(t, reallocate.Reallocate.RevenueGap, 250.0)
}

func TestOpportunityService_SeasonalRecommendation(t *testing.T) {
	svc := services.NewOpportunityService()
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	// 100/day for the first two months of the window, 200/day for the most
	// recent 30 days: a 100% jump over the earlier monthly baseline.
	saleTime := "12:00"
	sales := []business.SaleRecord{
		saleOn(now.AddDate(0, -4, 0), 100, 0, business.PaymentStatusPaid),
	}
	for offset := 0; offset < 90; offset++ {
		amount := 100.0
		if offset < 30 {
			amount = 200
		}
		sale := saleOn(now.AddDate(0, 0, -offset), amount, 0, business.PaymentStatusPaid)
		sale.SaleTime = &saleTime
		sales = append(sales, sale)
	}

	report := svc.Analyze(now, sales, 0)
	require.True(t, report.HasData)

	var seasonal *business.Recommendation
	for i := range report.Recommendations {
		if report.Recommendations[i].Type == business.RecommendSeasonal {
			seasonal = &report.Recommendations[i]
		}
	}
	require.NotNil(t, seasonal, "expected a seasonal recommendation")
	require.NotNil(t, seasonal.Seasonal)
	assert.InDelta(t, 6000.0, seasonal.Seasonal.RecentRevenue, 0.001)
	assert.InDelta(t, 3000.0, seasonal.Seasonal.BaselineRevenue, 0.001)
	assert.InDelta(t, 100.0, seasonal.Seasonal.ChangePct, 0.001)
	assert.Equal(t, 1.0, seasonal.Confidence)
}

func TestOpportunityService_NoSeasonalOnStableRevenue(t *testing.T) {
	svc := services.NewOpportunityService()
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	sales := dailySales(now, func(time.Weekday) float64 { return 200 })
	report := svc.Analyze(now, sales, 0)
	require.True(t, report.HasData)

	for _, rec := range report.Recommendations {
		assert.NotEqual(t, business.RecommendSeasonal, rec.Type)
	}
}

func TestOpportunityService_ExtendHoursRecommendation(t *testing.T) {
	svc := services.NewOpportunityService()
	now := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

	// Daytime hours are modest; the few 21:00 sales are large, so the late
	// hour clearly outperforms the mean active hour.
	elevenTime, thirteenTime, lateTime := "11:00", "13:00", "21:00"
	sales := dailySales(now, func(time.Weekday) float64 { return 100 })
	for offset := 1; offset <= 5; offset++ {
		day := now.AddDate(0, 0, -offset)
		for _, at := range []*string{&elevenTime, &thirteenTime} {
			sale := saleOn(day, 100, 0, business.PaymentStatusPaid)
			sale.SaleTime = at
			sales = append(sales, sale)
		}
		late := saleOn(day, 900, 0, business.PaymentStatusPaid)
		late.SaleTime = &lateTime
		sales = append(sales, late)
	}

	report := svc.Analyze(now, sales, 0)
	require.True(t, report.HasData)

	var extend *business.Recommendation
	for i := range report.Recommendations {
		if report.Recommendations[i].Type == business.RecommendExtendHours {
			extend = &report.Recommendations[i]
		}
	}
	require.NotNil(t, extend, "expected an extend-hours recommendation")
	require.NotNil(t, extend.Extend)
	assert.Equal(t, 21, extend.Extend.Hour)
	assert.InDelta(t, 900.0, extend.Extend.AvgRevenue, 0.001)
}
