package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Godhold/Waste-Management-App/internal/api/dto"
	"github.com/Godhold/Waste-Management-App/internal/domain"
	"github.com/Godhold/Waste-Management-App/internal/platform/obs"
	"github.com/Godhold/Waste-Management-App/internal/ports"
	"github.com/Godhold/Waste-Management-App/internal/services"
)

// DashboardHandler serves per-driver performance summaries.
type DashboardHandler struct {
	Collections ports.CollectionRepository
	Depot       domain.Coordinate
}

func (h *DashboardHandler) Today(w http.ResponseWriter, r *http.Request) {
	driverID, err := requireQueryID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	collections, err := h.fetchWindow(r.Context(), driverID, services.DayWindow, now)
	if err != nil {
		log.Printf("daily stats failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toDailyStatsResponse(services.SummarizeDaily(collections, h.Depot, now)))
}

func (h *DashboardHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	driverID, err := requireQueryID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	collections, err := h.fetchWindow(r.Context(), driverID, services.WeekWindow, now)
	if err != nil {
		log.Printf("weekly stats failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toWeeklyStatsResponse(services.SummarizeWeekly(collections, h.Depot, now)))
}

func (h *DashboardHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	driverID, err := requireQueryID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()
	collections, err := h.fetchWindow(r.Context(), driverID, services.MonthWindow, now)
	if err != nil {
		log.Printf("monthly stats failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toMonthlyStatsResponse(services.SummarizeMonthly(collections, h.Depot, now)))
}

// Combined returns all three windows at once for the dashboard landing view.
func (h *DashboardHandler) Combined(w http.ResponseWriter, r *http.Request) {
	driverID, err := requireQueryID(r, "driver_id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now().UTC()

	// One fetch spanning all three windows; the aggregator filters per window.
	// The week can straddle a month boundary, so take the widest bounds.
	dayStart, dayEnd := services.DayWindow(now)
	weekStart, weekEnd := services.WeekWindow(now)
	monthStart, monthEnd := services.MonthWindow(now)

	start := minTime(dayStart, weekStart, monthStart)
	end := maxTime(dayEnd, weekEnd, monthEnd)

	collections, err := h.listBetween(r.Context(), driverID, start, end)
	if err != nil {
		log.Printf("dashboard stats failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	perf := services.SummarizePerformance(collections, h.Depot, now)
	writeJSON(w, r, http.StatusOK, dto.PerformanceStatsResponse{
		Daily:   toDailyStatsResponse(perf.Daily),
		Weekly:  toWeeklyStatsResponse(perf.Weekly),
		Monthly: toMonthlyStatsResponse(perf.Monthly),
	})
}

func (h *DashboardHandler) fetchWindow(
	ctx context.Context,
	driverID int,
	window func(time.Time) (time.Time, time.Time),
	now time.Time,
) ([]*domain.Collection, error) {
	start, end := window(now)
	return h.listBetween(ctx, driverID, start, end)
}

func (h *DashboardHandler) listBetween(ctx context.Context, driverID int, start, end time.Time) (_ []*domain.Collection, err error) {
	defer obs.Time(ctx, "dashboard.listBetween")(&err)

	collections, err := h.Collections.ListForDriverBetween(ctx, driverID, start, end, "")
	if err != nil {
		return nil, fmt.Errorf("list collections for driver %d: %w", driverID, err)
	}
	return collections, nil
}

func minTime(times ...time.Time) time.Time {
	min := times[0]
	for _, t := range times[1:] {
		if t.Before(min) {
			min = t
		}
	}
	return min
}

func maxTime(times ...time.Time) time.Time {
	max := times[0]
	for _, t := range times[1:] {
		if t.After(max) {
			max = t
		}
	}
	return max
}
