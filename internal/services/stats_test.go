package services

import (
	"math"
	"testing"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/domain"
)

var accraDepot = domain.Coordinate{Lat: 5.6037, Lng: -0.1870}

// July 16 2025 is a Wednesday.
var statsNow = time.Date(2025, 7, 16, 12, 0, 0, 0, time.UTC)

func scheduledCollection(id int, scheduled time.Time, status domain.CollectionStatus) *domain.Collection {
	return &domain.Collection{
		CollectionID:  id,
		DriverID:      1,
		Coordinate:    domain.Coordinate{Lat: 5.60 + float64(id)*0.01, Lng: -0.18},
		ScheduledTime: scheduled,
		LastUpdate:    scheduled,
		Status:        status,
	}
}

func TestWindows(t *testing.T) {
	dayStart, dayEnd := DayWindow(statsNow)
	if !dayStart.Equal(time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("day start = %v", dayStart)
	}
	if !dayEnd.Equal(time.Date(2025, 7, 17, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("day end = %v", dayEnd)
	}

	weekStart, weekEnd := WeekWindow(statsNow)
	if !weekStart.Equal(time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("week start = %v, want Monday July 14", weekStart)
	}
	if !weekEnd.Equal(time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("week end = %v", weekEnd)
	}

	monthStart, monthEnd := MonthWindow(statsNow)
	if !monthStart.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("month start = %v", monthStart)
	}
	if !monthEnd.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("month end = %v", monthEnd)
	}

	// Monday itself stays in its own week.
	monday := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
	start, _ := WeekWindow(monday)
	if !start.Equal(monday) {
		t.Errorf("week start for a Monday = %v, want %v", start, monday)
	}
}

func TestSummarizeDaily(t *testing.T) {
	midnight := time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC)

	completed := scheduledCollection(1, midnight.Add(8*time.Hour), domain.StatusCompleted)
	completed.LastUpdate = completed.ScheduledTime.Add(30 * time.Minute)

	pending := scheduledCollection(2, midnight, domain.StatusPending) // exactly at the boundary
	skipped := scheduledCollection(3, midnight.Add(10*time.Hour), domain.StatusSkipped)
	tomorrow := scheduledCollection(4, midnight.AddDate(0, 0, 1), domain.StatusPending) // out of window

	stats := SummarizeDaily([]*domain.Collection{completed, pending, skipped, tomorrow}, accraDepot, statsNow)

	if stats.TotalCollections != 3 {
		t.Fatalf("total = %d, want 3 (midnight boundary is inclusive, next day exclusive)", stats.TotalCollections)
	}
	if stats.CompletedCollections != 1 || stats.PendingCollections != 1 {
		t.Errorf("counts = %d completed / %d pending, want 1/1", stats.CompletedCollections, stats.PendingCollections)
	}
	if stats.CompletionRate != 33.33 {
		t.Errorf("completion rate = %v, want 33.33", stats.CompletionRate)
	}
	if stats.AverageMinutes != 30 {
		t.Errorf("average handling minutes = %v, want 30", stats.AverageMinutes)
	}

	want := round2(Distance(accraDepot, completed.Coordinate) +
		Distance(completed.Coordinate, pending.Coordinate) +
		Distance(pending.Coordinate, skipped.Coordinate))
	if math.Abs(stats.TotalDistanceKm-want) > 1e-9 {
		t.Errorf("total distance = %v, want %v", stats.TotalDistanceKm, want)
	}
}

func TestSummarizeDailyEmpty(t *testing.T) {
	stats := SummarizeDaily(nil, accraDepot, statsNow)
	if stats.TotalCollections != 0 || stats.CompletionRate != 0 || stats.AverageMinutes != 0 || stats.TotalDistanceKm != 0 {
		t.Errorf("expected zeroed daily stats, got %+v", stats)
	}
}

func TestSummarizeWeeklyOnePerDay(t *testing.T) {
	weekStart := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)

	collections := make([]*domain.Collection, 0, 7)
	for i := 0; i < 7; i++ {
		status := domain.StatusPending
		if i < 3 {
			status = domain.StatusCompleted
		}
		collections = append(collections, scheduledCollection(i+1, weekStart.AddDate(0, 0, i), status))
	}

	stats := SummarizeWeekly(collections, accraDepot, statsNow)

	if stats.TotalCollections != 7 {
		t.Fatalf("total = %d, want 7", stats.TotalCollections)
	}
	if stats.CompletionRate != 42.86 {
		t.Errorf("completion rate = %v, want 42.86", stats.CompletionRate)
	}
	for _, day := range []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"} {
		if stats.CollectionsByDay[day] != 1 {
			t.Errorf("%s count = %d, want 1", day, stats.CollectionsByDay[day])
		}
	}
	// All days tie at one collection; the Monday-first scan decides.
	if stats.BusiestDay != "Monday" {
		t.Errorf("busiest day = %q, want Monday", stats.BusiestDay)
	}
}

func TestSummarizeWeeklyEmpty(t *testing.T) {
	stats := SummarizeWeekly(nil, accraDepot, statsNow)
	if stats.BusiestDay != NoCollections {
		t.Errorf("busiest day = %q, want %q", stats.BusiestDay, NoCollections)
	}
	if stats.TotalCollections != 0 || stats.CompletionRate != 0 {
		t.Errorf("expected zeroed weekly stats, got %+v", stats)
	}
	if len(stats.CollectionsByDay) != 7 {
		t.Errorf("day histogram should keep its 7 fixed buckets, got %d", len(stats.CollectionsByDay))
	}
}

func TestSummarizeMonthly(t *testing.T) {
	collections := []*domain.Collection{
		scheduledCollection(1, time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC), domain.StatusCompleted),
		scheduledCollection(2, time.Date(2025, 7, 7, 8, 0, 0, 0, time.UTC), domain.StatusCompleted),
		scheduledCollection(3, time.Date(2025, 7, 8, 8, 0, 0, 0, time.UTC), domain.StatusPending),
		scheduledCollection(4, time.Date(2025, 7, 31, 8, 0, 0, 0, time.UTC), domain.StatusSkipped),
		scheduledCollection(5, time.Date(2025, 8, 1, 8, 0, 0, 0, time.UTC), domain.StatusPending), // next month
	}

	stats := SummarizeMonthly(collections, accraDepot, statsNow)

	if stats.TotalCollections != 4 {
		t.Fatalf("total = %d, want 4", stats.TotalCollections)
	}
	if stats.CollectionsByWeek["Week 1"] != 2 {
		t.Errorf("Week 1 = %d, want 2 (days 1-7)", stats.CollectionsByWeek["Week 1"])
	}
	if stats.CollectionsByWeek["Week 2"] != 1 {
		t.Errorf("Week 2 = %d, want 1 (day 8)", stats.CollectionsByWeek["Week 2"])
	}
	if stats.CollectionsByWeek["Week 5"] != 1 {
		t.Errorf("Week 5 = %d, want 1 (day 31)", stats.CollectionsByWeek["Week 5"])
	}
	if stats.CompletionRate != 50 {
		t.Errorf("completion rate = %v, want 50", stats.CompletionRate)
	}
	// 4 collections over 31 days.
	if stats.AverageDailyCollections != 0.13 {
		t.Errorf("average daily = %v, want 0.13", stats.AverageDailyCollections)
	}
}

func TestSummarizePerformance(t *testing.T) {
	c := scheduledCollection(1, statsNow, domain.StatusCompleted)
	perf := SummarizePerformance([]*domain.Collection{c}, accraDepot, statsNow)

	if perf.Daily.TotalCollections != 1 || perf.Weekly.TotalCollections != 1 || perf.Monthly.TotalCollections != 1 {
		t.Errorf("all windows should include the collection: %+v", perf)
	}
	if perf.Weekly.BusiestDay != "Wednesday" {
		t.Errorf("busiest day = %q, want Wednesday", perf.Weekly.BusiestDay)
	}
}
