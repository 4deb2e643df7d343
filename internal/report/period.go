package report

import (
	"time"

	"github.com/pocketledger/pocketledger/internal/model"
)

// TimePeriod names a date interval used to scope summary views.
type TimePeriod string

const (
	// PeriodAll covers any realistic date.
	PeriodAll TimePeriod = "all"
	// PeriodThisWeek is the current Monday-start week.
	PeriodThisWeek TimePeriod = "this-week"
	// PeriodLastWeek is the previous Monday-start week.
	PeriodLastWeek TimePeriod = "last-week"
	// PeriodThisMonth is the current calendar month.
	PeriodThisMonth TimePeriod = "this-month"
	// PeriodLastMonth is the previous calendar month.
	PeriodLastMonth TimePeriod = "last-month"
	// PeriodCustom is a caller-supplied range.
	PeriodCustom TimePeriod = "custom"
)

// Valid reports whether the period is one of the known tokens.
func (p TimePeriod) Valid() bool {
	switch p {
	case PeriodAll, PeriodThisWeek, PeriodLastWeek, PeriodThisMonth, PeriodLastMonth, PeriodCustom:
		return true
	}
	return false
}

// DateRange is an inclusive [Start, End] interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DateRangeForPeriod resolves a period to a concrete interval, evaluated
// against the current local time.
func DateRangeForPeriod(period TimePeriod, custom *DateRange) DateRange {
	return dateRangeForPeriodAt(period, custom, time.Now())
}

func dateRangeForPeriodAt(period TimePeriod, custom *DateRange, now time.Time) DateRange {
	switch period {
	case PeriodThisWeek:
		return weekOf(now)
	case PeriodLastWeek:
		return weekOf(now.AddDate(0, 0, -7))
	case PeriodThisMonth:
		return monthOf(now)
	case PeriodLastMonth:
		return monthOf(startOfMonth(now).AddDate(0, 0, -1))
	case PeriodCustom:
		if custom != nil {
			return *custom
		}
		return DateRange{Start: time.Unix(0, 0), End: now}
	default:
		// PeriodAll: unbounded for any realistic date
		return DateRange{
			Start: time.Unix(0, 0),
			End:   time.Date(2100, 1, 1, 0, 0, 0, 0, now.Location()),
		}
	}
}

// FilterByPeriod returns the transactions whose date falls within the
// period's range, widened to whole days on both ends. PeriodAll
// short-circuits to the input untouched.
func FilterByPeriod(transactions []model.Transaction, period TimePeriod, custom *DateRange) []model.Transaction {
	return filterByPeriodAt(transactions, period, custom, time.Now())
}

func filterByPeriodAt(transactions []model.Transaction, period TimePeriod, custom *DateRange, now time.Time) []model.Transaction {
	if period == PeriodAll {
		return transactions
	}

	r := dateRangeForPeriodAt(period, custom, now)
	start := startOfDay(r.Start)
	end := startOfDay(r.End).AddDate(0, 0, 1)

	filtered := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !t.Date.Before(start) && t.Date.Before(end) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FormatTimePeriod renders a period for display.
func FormatTimePeriod(period TimePeriod) string {
	switch period {
	case PeriodThisWeek:
		return "This Week"
	case PeriodLastWeek:
		return "Last Week"
	case PeriodThisMonth:
		return "This Month"
	case PeriodLastMonth:
		return "Last Month"
	case PeriodCustom:
		return "Custom"
	default:
		return "All Time"
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// weekOf returns the Monday-start week containing t.
func weekOf(t time.Time) DateRange {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week starting the previous Monday
	}
	monday := startOfDay(t).AddDate(0, 0, -(weekday - 1))
	return DateRange{Start: monday, End: monday.AddDate(0, 0, 6)}
}

// monthOf returns the calendar month containing t.
func monthOf(t time.Time) DateRange {
	first := startOfMonth(t)
	return DateRange{Start: first, End: first.AddDate(0, 1, -1)}
}
