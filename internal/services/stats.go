package services

import (
	"fmt"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/domain"
)

// Sentinel busiest-day value for a week without any collections.
const NoCollections = "No collections"

// weekdayOrder fixes the Monday-first scan used by the weekly histogram and
// the busiest-day tie-break.
var weekdayOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayWindow returns [midnight of now, +24h) in now's location.
func DayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// WeekWindow returns [Monday 00:00 of now's week, +7d) in now's location.
func WeekWindow(now time.Time) (time.Time, time.Time) {
	dayStart, _ := DayWindow(now)
	offset := (int(now.Weekday()) + 6) % 7
	start := dayStart.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// MonthWindow returns [1st of now's month, 1st of next month) in now's location.
func MonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// SummarizeDaily folds a driver's collections scheduled today into dashboard
// metrics. The reference time is caller-supplied so window boundaries stay
// reproducible in tests; the depot is the notional route start.
func SummarizeDaily(collections []*domain.Collection, depot domain.Coordinate, now time.Time) domain.DailyStats {
	start, end := DayWindow(now)
	window := inWindow(collections, start, end)

	stats := domain.DailyStats{TotalCollections: len(window)}
	for _, c := range window {
		switch c.Status {
		case domain.StatusCompleted:
			stats.CompletedCollections++
		case domain.StatusPending:
			stats.PendingCollections++
		}
	}

	stats.TotalDistanceKm = round2(chainedDistance(depot, window))
	stats.CompletionRate = CompletionRate(stats.CompletedCollections, stats.TotalCollections)

	// Mean handling time over completed stops, scheduled -> last update.
	var handling time.Duration
	completed := 0
	for _, c := range window {
		if c.Status != domain.StatusCompleted {
			continue
		}
		handling += c.LastUpdate.Sub(c.ScheduledTime)
		completed++
	}
	if completed > 0 {
		stats.AverageMinutes = round2(handling.Minutes() / float64(completed))
	}

	return stats
}

// SummarizeWeekly folds a driver's collections for the current Monday-based
// week, adding a fixed seven-bucket day histogram and the busiest day.
func SummarizeWeekly(collections []*domain.Collection, depot domain.Coordinate, now time.Time) domain.WeeklyStats {
	start, end := WeekWindow(now)
	window := inWindow(collections, start, end)

	byDay := make(map[string]int, len(weekdayOrder))
	for _, day := range weekdayOrder {
		byDay[day] = 0
	}

	completed := 0
	for _, c := range window {
		byDay[c.ScheduledTime.Weekday().String()]++
		if c.Status == domain.StatusCompleted {
			completed++
		}
	}

	// First maximum in Monday-first order wins ties.
	busiest := NoCollections
	best := 0
	for _, day := range weekdayOrder {
		if byDay[day] > best {
			best = byDay[day]
			busiest = day
		}
	}

	return domain.WeeklyStats{
		CollectionsByDay: byDay,
		TotalCollections: len(window),
		TotalDistanceKm:  round2(chainedDistance(depot, window)),
		CompletionRate:   CompletionRate(completed, len(window)),
		BusiestDay:       busiest,
	}
}

// SummarizeMonthly folds a driver's collections for the current calendar
// month, bucketing by week-of-month and averaging the daily count.
func SummarizeMonthly(collections []*domain.Collection, depot domain.Coordinate, now time.Time) domain.MonthlyStats {
	start, end := MonthWindow(now)
	window := inWindow(collections, start, end)

	byWeek := make(map[string]int)
	completed := 0
	for _, c := range window {
		week := fmt.Sprintf("Week %d", (c.ScheduledTime.Day()-1)/7+1)
		byWeek[week]++
		if c.Status == domain.StatusCompleted {
			completed++
		}
	}

	daysInMonth := int(end.Sub(start).Hours() / 24)
	avgDaily := 0.0
	if daysInMonth > 0 {
		avgDaily = round2(float64(len(window)) / float64(daysInMonth))
	}

	return domain.MonthlyStats{
		TotalCollections:        len(window),
		AverageDailyCollections: avgDaily,
		TotalDistanceKm:         round2(chainedDistance(depot, window)),
		CompletionRate:          CompletionRate(completed, len(window)),
		CollectionsByWeek:       byWeek,
	}
}

// SummarizePerformance bundles all three dashboard windows over one input set.
func SummarizePerformance(collections []*domain.Collection, depot domain.Coordinate, now time.Time) domain.PerformanceStats {
	return domain.PerformanceStats{
		Daily:   SummarizeDaily(collections, depot, now),
		Weekly:  SummarizeWeekly(collections, depot, now),
		Monthly: SummarizeMonthly(collections, depot, now),
	}
}

// chainedDistance sums leg distances between consecutive collections in the
// given order, starting from the depot. This approximates route length from
// scheduling order; it does not re-run the optimizer.
func chainedDistance(depot domain.Coordinate, collections []*domain.Collection) float64 {
	total := 0.0
	current := depot
	for _, c := range collections {
		total += Distance(current, c.Coordinate)
		current = c.Coordinate
	}
	return total
}

// CompletionRate is the completed share as a percentage, rounded to two
// decimals. Zero totals yield zero rather than NaN.
func CompletionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(completed) / float64(total) * 100)
}

func inWindow(collections []*domain.Collection, start, end time.Time) []*domain.Collection {
	out := make([]*domain.Collection, 0, len(collections))
	for _, c := range collections {
		if !c.ScheduledTime.Before(start) && c.ScheduledTime.Before(end) {
			out = append(out, c)
		}
	}
	return out
}
