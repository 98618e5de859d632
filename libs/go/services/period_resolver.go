package services

import (
	"time"

	"github.com/fiscalia/fiscalia-api/libs/go/types/business"
)

// PeriodResolver turns a period keyword into a concrete date window with a
// fractional month count.
type PeriodResolver struct{}

// NewPeriodResolver creates a new period resolver.
func NewPeriodResolver() *PeriodResolver {
	return &PeriodResolver{}
}

// Resolve computes the window for the given keyword, anchored at now.
// For "all", the window starts at the earliest known record: the older of
// oldestSale and oldestInvoice, whichever is present, falling back to the
// first of the current month when neither exists. MonthsInPeriod is always
// at least 1 so per-month rates never divide by zero.
func (r *PeriodResolver) Resolve(keyword business.PeriodKeyword, now time.Time, oldestSale, oldestInvoice *time.Time) business.Period {
	switch keyword {
	case business.PeriodThreeMonths:
		return fixedWindow(keyword, now, 3)
	case business.PeriodSixMonths:
		return fixedWindow(keyword, now, 6)
	case business.PeriodAll:
		start := earliestRecordDate(now, oldestSale, oldestInvoice)
		return business.Period{
			Keyword:        business.PeriodAll,
			Start:          start,
			End:            now,
			MonthsInPeriod: monthsBetween(start, now),
		}
	default:
		return fixedWindow(business.PeriodMonth, now, 1)
	}
}

func fixedWindow(keyword business.PeriodKeyword, now time.Time, months int) business.Period {
	return business.Period{
		Keyword:        keyword,
		Start:          now.AddDate(0, -months, 0),
		End:            now,
		MonthsInPeriod: float64(months),
	}
}

func earliestRecordDate(now time.Time, oldestSale, oldestInvoice *time.Time) time.Time {
	switch {
	case oldestSale != nil && oldestInvoice != nil:
		if oldestSale.Before(*oldestInvoice) {
			return *oldestSale
		}
		return *oldestInvoice
	case oldestSale != nil:
		return *oldestSale
	case oldestInvoice != nil:
		return *oldestInvoice
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// monthsBetween approximates the fractional number of months from start to
// end, counting partial months as days/30.
func monthsBetween(start, end time.Time) float64 {
	if end.Before(start) {
		return 1
	}
	years := end.Year() - start.Year()
	months := int(end.Month()) - int(start.Month())
	days := end.Day() - start.Day()

	total := float64(years*12+months) + float64(days)/30.0
	if total < 1 {
		return 1
	}
	return total
}
