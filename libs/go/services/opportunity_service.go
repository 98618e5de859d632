package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/constants"
	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
)

// OpportunityService runs the temporal analysis pass over historical sales:
// per-weekday and per-hour performance over a trailing window, plus
// rule-based staffing and opening-hours recommendations. It is independent
// of the tax engine and tolerant of sparse data.
type OpportunityService struct{}

// NewOpportunityService creates a new opportunity analyzer.
func NewOpportunityService() *OpportunityService {
	return &OpportunityService{}
}

// Analyze builds the opportunity report for the trailing 90-day window
// ending at now. monthlyFixedCosts is the business's monthly fixed-cost
// burden, used to judge whether a weekday earns its keep. Histories shorter
// than three months produce an insufficient-data report with no
// recommendations.
func (s *OpportunityService) Analyze(now time.Time, sales []business.SaleRecord, monthlyFixedCosts float64) *business.OpportunityReport {
	windowStart := now.AddDate(0, 0, -constants.OpportunityWindowDays)
	report := &business.OpportunityReport{
		WindowStart: windowStart,
		WindowEnd:   now,
	}

	oldest := oldestSaleDate(sales)
	if oldest == nil {
		report.InsufficientWhy = "no sales history"
		return report
	}
	if oldest.After(now.AddDate(0, -constants.MinHistoryMonths, 0)) {
		report.InsufficientWhy = fmt.Sprintf("less than %d months of sales history", constants.MinHistoryMonths)
		return report
	}

	report.HasData = true
	report.WeekdayStats = s.weekdayStats(windowStart, now, sales)
	report.HourStats = s.hourStats(windowStart, now, sales)

	// The occurrence counts already cover every day of the inclusive
	// window, so their sum is the day count the mean is taken over.
	var windowRevenue float64
	var windowDays int
	for _, stat := range report.WeekdayStats {
		windowRevenue += stat.TotalRevenue
		windowDays += stat.Occurrences
	}
	report.DailyMeanRevenue = windowRevenue / float64(windowDays)

	report.Recommendations = s.recommend(report, monthlyFixedCosts, sales)
	return report
}

// weekdayStats aggregates sales per weekday, normalizing by the number of
// times each weekday actually occurs in the window rather than a flat
// divide-by-7: a 90-day window does not hold the same count of every
// weekday.
func (s *OpportunityService) weekdayStats(windowStart, windowEnd time.Time, sales []business.SaleRecord) []business.WeekdayStat {
	stats := make([]business.WeekdayStat, 7)
	for i := range stats {
		stats[i].Weekday = time.Weekday(i)
	}

	for day := windowStart; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
		stats[int(day.Weekday())].Occurrences++
	}

	for _, sale := range sales {
		if sale.SaleDate.Before(windowStart) || sale.SaleDate.After(windowEnd) {
			continue
		}
		idx := int(sale.SaleDate.Weekday())
		stats[idx].SaleCount++
		stats[idx].TotalRevenue += sale.EffectiveRevenue()
	}

	for i := range stats {
		if stats[i].Occurrences > 0 {
			stats[i].AvgRevenue = stats[i].TotalRevenue / float64(stats[i].Occurrences)
			stats[i].AvgSales = float64(stats[i].SaleCount) / float64(stats[i].Occurrences)
		}
	}
	return stats
}

// hourStats aggregates sales per hour of day (0-23) over the window.
func (s *OpportunityService) hourStats(windowStart, windowEnd time.Time, sales []business.SaleRecord) []business.HourStat {
	stats := make([]business.HourStat, 24)
	for i := range stats {
		stats[i].Hour = i
	}

	for _, sale := range sales {
		if sale.SaleDate.Before(windowStart) || sale.SaleDate.After(windowEnd) {
			continue
		}
		hour := saleHour(sale)
		stats[hour].SaleCount++
		stats[hour].TotalRevenue += sale.EffectiveRevenue()
	}

	for i := range stats {
		if stats[i].SaleCount > 0 {
			stats[i].AvgRevenue = stats[i].TotalRevenue / float64(stats[i].SaleCount)
		}
	}
	return stats
}

// saleHour extracts the hour of a sale, falling back through three sources
// in priority order: the explicit time field, the time component of the
// sale date when it carries a non-midnight time, and finally the record
// creation timestamp.
func saleHour(sale business.SaleRecord) int {
	if sale.SaleTime != nil {
		if hour, ok := parseHour(*sale.SaleTime); ok {
			return hour
		}
	}
	if sale.SaleDate.Hour() != 0 || sale.SaleDate.Minute() != 0 {
		return sale.SaleDate.Hour()
	}
	return sale.CreatedAt.Hour()
}

// parseHour reads the hour out of an "HH:MM" or "HH:MM:SS" string.
func parseHour(value string) (int, bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) == 0 {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// recommend applies the fixed rule set over the computed stats.
func (s *OpportunityService) recommend(report *business.OpportunityReport, monthlyFixedCosts float64, sales []business.SaleRecord) []business.Recommendation {
	recommendations := []business.Recommendation{}
	dailyCostShare := monthlyFixedCosts / constants.DaysPerMonth

	// Weekdays that neither cover their fixed-cost share nor move volume
	// are candidates for reduced opening hours.
	for _, stat := range report.WeekdayStats {
		if stat.Occurrences == 0 {
			continue
		}
		lowRevenue := dailyCostShare > 0 && stat.AvgRevenue < dailyCostShare*constants.LowRevenueShare
		lowVolume := stat.AvgSales < constants.LowVolumeSales
		if lowRevenue && lowVolume {
			recommendations = append(recommendations, business.Recommendation{
				Type:       business.RecommendReduceHours,
				Message:    fmt.Sprintf("%ss average %.2f in revenue against a %.2f daily fixed-cost share; consider reducing hours", stat.Weekday, stat.AvgRevenue, dailyCostShare),
				Confidence: sampleConfidence(stat.Occurrences),
				Reduce: &business.ReduceHoursData{
					Weekday:    stat.Weekday,
					AvgRevenue: stat.AvgRevenue,
					AvgSales:   stat.AvgSales,
					CostShare:  dailyCostShare,
				},
			})
		}
	}

	// Hours that clearly outperform the mean active hour at the edges of
	// the day suggest the schedule is cutting demand short.
	meanHourRevenue := meanActiveHourRevenue(report.HourStats)
	for _, stat := range report.HourStats {
		if stat.SaleCount == 0 || meanHourRevenue <= 0 {
			continue
		}
		edgeOfDay := stat.Hour <= 9 || stat.Hour >= 20
		if edgeOfDay && stat.AvgRevenue > meanHourRevenue*2 {
			recommendations = append(recommendations, business.Recommendation{
				Type:       business.RecommendExtendHours,
				Message:    fmt.Sprintf("hour %02d:00 averages %.2f per sale, well above the %.2f hourly mean; consider extending hours around it", stat.Hour, stat.AvgRevenue, meanHourRevenue),
				Confidence: sampleConfidence(stat.SaleCount),
				Extend: &business.ExtendHoursData{
					Hour:       stat.Hour,
					AvgRevenue: stat.AvgRevenue,
					DailyMean:  report.DailyMeanRevenue,
				},
			})
		}
	}

	// A wide gap between the best and worst weekday suggests shifting
	// staff toward the strong day.
	best, worst := bestAndWorstWeekday(report.WeekdayStats)
	if best != nil && worst != nil && best.AvgRevenue > 0 {
		gap := best.AvgRevenue - worst.AvgRevenue
		if gap > best.AvgRevenue*constants.LowRevenueShare {
			recommendations = append(recommendations, business.Recommendation{
				Type:       business.RecommendReallocateStaff,
				Message:    fmt.Sprintf("%ss out-earn %ss by %.2f on average; consider shifting staff", best.Weekday, worst.Weekday, gap),
				Confidence: sampleConfidence(minInt(best.Occurrences, worst.Occurrences)),
				Reallocate: &business.ReallocateStaffData{
					FromWeekday: worst.Weekday,
					ToWeekday:   best.Weekday,
					RevenueGap:  gap,
				},
			})
		}
	}

	// A recent month that departs clearly from the earlier months points
	// at a seasonal shift worth planning stock and staffing for.
	if seasonal := seasonalShift(report.WindowStart, report.WindowEnd, sales); seasonal != nil {
		recommendations = append(recommendations, *seasonal)
	}

	return recommendations
}

// seasonalShift compares revenue over the last 30 days of the window with
// the per-month baseline of the days before them. Nothing is flagged until
// the deviation passes the configured share, or when the baseline is empty.
func seasonalShift(windowStart, windowEnd time.Time, sales []business.SaleRecord) *business.Recommendation {
	recentStart := windowEnd.AddDate(0, 0, -constants.DaysPerMonth)

	var recent, earlier float64
	var recentCount int
	for _, sale := range sales {
		if sale.SaleDate.Before(windowStart) || sale.SaleDate.After(windowEnd) {
			continue
		}
		if sale.SaleDate.After(recentStart) {
			recent += sale.EffectiveRevenue()
			recentCount++
		} else {
			earlier += sale.EffectiveRevenue()
		}
	}

	earlierMonths := float64(constants.OpportunityWindowDays-constants.DaysPerMonth) / constants.DaysPerMonth
	baseline := earlier / earlierMonths
	if baseline <= 0 {
		return nil
	}

	changePct := (recent - baseline) / baseline * 100
	if math.Abs(changePct) < constants.SeasonalDeviationShare*100 {
		return nil
	}

	direction := "above"
	if changePct < 0 {
		direction = "below"
	}
	return &business.Recommendation{
		Type:       business.RecommendSeasonal,
		Message:    fmt.Sprintf("revenue over the last %d days runs %.0f%% %s the earlier monthly baseline; plan stock and staffing for the shift", constants.DaysPerMonth, math.Abs(changePct), direction),
		Confidence: sampleConfidence(recentCount),
		Seasonal: &business.SeasonalData{
			RecentRevenue:   recent,
			BaselineRevenue: baseline,
			ChangePct:       changePct,
		},
	}
}

// sampleConfidence scales confidence with sample size, reaching 1.0 at the
// configured floor of observed days.
func sampleConfidence(samples int) float64 {
	return math.Min(1, float64(samples)/constants.FullConfidenceSampleDays)
}

func meanActiveHourRevenue(stats []business.HourStat) float64 {
	var total float64
	var active int
	for _, stat := range stats {
		if stat.SaleCount > 0 {
			total += stat.AvgRevenue
			active++
		}
	}
	if active == 0 {
		return 0
	}
	return total / float64(active)
}

func bestAndWorstWeekday(stats []business.WeekdayStat) (best, worst *business.WeekdayStat) {
	for i := range stats {
		if stats[i].Occurrences == 0 {
			continue
		}
		if best == nil || stats[i].AvgRevenue > best.AvgRevenue {
			best = &stats[i]
		}
		if worst == nil || stats[i].AvgRevenue < worst.AvgRevenue {
			worst = &stats[i]
		}
	}
	return best, worst
}

func oldestSaleDate(sales []business.SaleRecord) *time.Time {
	var oldest *time.Time
	for i := range sales {
		date := sales[i].SaleDate
		if oldest == nil || date.Before(*oldest) {
			oldest = &date
		}
	}
	return oldest
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
