package handlers

import (
	"github.com/Godhold/Waste-Management-App/internal/api/dto"
	"github.com/Godhold/Waste-Management-App/internal/domain"
)

func toDriverResponse(d *domain.Driver) dto.DriverResponse {
	res := dto.DriverResponse{
		DriverID:   d.DriverID,
		Name:       d.Name,
		Phone:      d.Phone,
		Email:      d.Email,
		IsActive:   d.IsActive,
		LastUpdate: d.LastUpdate,
	}
	if d.Position != nil {
		lat, lng := d.Position.Lat, d.Position.Lng
		res.CurrentLat = &lat
		res.CurrentLng = &lng
	}
	return res
}

func toNavigationResponse(n domain.NavigationEstimate) *dto.NavigationResponse {
	return &dto.NavigationResponse{
		DistanceKm:       n.DistanceKm,
		EstimatedTimeMin: n.EstimatedMinutes,
		StartLocation:    dto.PointResponse{Lat: n.Start.Lat, Lng: n.Start.Lng},
		EndLocation:      dto.PointResponse{Lat: n.End.Lat, Lng: n.End.Lng},
	}
}

func toCollectionResponse(c *domain.Collection) dto.CollectionResponse {
	res := dto.CollectionResponse{
		CollectionID:  c.CollectionID,
		DriverID:      c.DriverID,
		LocationName:  c.LocationName,
		Address:       c.Address,
		Latitude:      c.Coordinate.Lat,
		Longitude:     c.Coordinate.Lng,
		ScheduledTime: c.ScheduledTime,
		ActualTime:    c.ActualTime,
		Status:        string(c.Status),
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		LastUpdate:    c.LastUpdate,
	}
	if c.CustomerLocation != nil {
		res.CustomerLocation = &dto.CustomerLocationResponse{
			Name:          c.CustomerLocation.Name,
			Address:       c.CustomerLocation.Address,
			ContactName:   c.CustomerLocation.ContactName,
			ContactNumber: c.CustomerLocation.ContactNumber,
		}
	}
	return res
}

func toCollectionResponses(cs []*domain.Collection) []dto.CollectionResponse {
	out := make([]dto.CollectionResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCollectionResponse(c))
	}
	return out
}

func toDailyStatsResponse(s domain.DailyStats) dto.DailyStatsResponse {
	return dto.DailyStatsResponse{
		TotalCollections:     s.TotalCollections,
		CompletedCollections: s.CompletedCollections,
		PendingCollections:   s.PendingCollections,
		TotalDistance:        s.TotalDistanceKm,
		CompletionRate:       s.CompletionRate,
		AverageTime:          s.AverageMinutes,
	}
}

func toWeeklyStatsResponse(s domain.WeeklyStats) dto.WeeklyStatsResponse {
	return dto.WeeklyStatsResponse{
		CollectionsByDay: s.CollectionsByDay,
		TotalCollections: s.TotalCollections,
		TotalDistance:    s.TotalDistanceKm,
		CompletionRate:   s.CompletionRate,
		BusiestDay:       s.BusiestDay,
	}
}

func toMonthlyStatsResponse(s domain.MonthlyStats) dto.MonthlyStatsResponse {
	return dto.MonthlyStatsResponse{
		TotalCollections:        s.TotalCollections,
		AverageDailyCollections: s.AverageDailyCollections,
		TotalDistance:           s.TotalDistanceKm,
		CompletionRate:          s.CompletionRate,
		CollectionsByWeek:       s.CollectionsByWeek,
	}
}
