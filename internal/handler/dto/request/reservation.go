package request

import (
	"time"
)

type BookReservationRequest struct {
	ResourceID string    `json:"resourceId" binding:"required"`
	UserName   string    `json:"userName" binding:"required"`
	StartTime  time.Time `json:"start" binding:"required"`
	EndTime    time.Time `json:"end" binding:"required"`
}

type CheckAvailabilityRequest struct {
	ResourceIDs []string `json:"resourceIds" binding:"required"`
}

// HistoryQuery carries the optional date bounds of the history view as
// inclusive calendar dates.
type HistoryQuery struct {
	Page      int    `form:"page"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

type EventsQuery struct {
	ResourceID string    `form:"resourceId" binding:"required"`
	Start      time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End        time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
