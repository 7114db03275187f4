package queries

import (
	"context"
	"fmt"
	"time"

	"roomdesk/internal/domain/reservation"
	"roomdesk/internal/pkg/clock"

	"github.com/google/uuid"
)

// HistoryPageSize is the fixed page size of the reservation history view.
const HistoryPageSize = 10

const (
	resourceOccupied  = "occupied"
	resourceAvailable = "available"
)

// Read models (DTO for read side)

// EventView is one calendar entry. Title carries the display convention
// consumed by the calendar layer.
type EventView struct {
	EventID uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Status  string    `json:"status"`
}

type ResourceStatusView struct {
	ResourceID string `json:"resourceId"`
	Status     string `json:"status"`
}

type HistoryItem struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	User   string `json:"user"`
	Status string `json:"status"`
}

type HistoryPage struct {
	Items       []HistoryItem `json:"data"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
}

// HistoryFilter bounds history by reservation start date. EndDate is an
// inclusive calendar date, extended to end-of-day when filtering.
type HistoryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ReservationRecord is the raw row shape served by the read store.
type ReservationRecord struct {
	EventID   uuid.UUID
	UserName  string
	StartTime time.Time
	EndTime   time.Time
	Status    reservation.Status
}

type ReservationReadStore interface {
	FindInWindow(ctx context.Context, resourceID string, statuses []reservation.Status, windowStart, windowEnd time.Time) ([]*ReservationRecord, error)
	ExistsActiveAt(ctx context.Context, resourceID string, statuses []reservation.Status, at time.Time) (bool, error)
	FindByResourcePaged(ctx context.Context, resourceID string, from, until *time.Time, limit, offset int32) ([]*ReservationRecord, int64, error)
}

type ReservationQueries interface {
	ListEvents(ctx context.Context, resourceID string, windowStart, windowEnd time.Time) ([]*EventView, error)
	CheckAvailability(ctx context.Context, resourceIDs []string) ([]*ResourceStatusView, error)
	History(ctx context.Context, resourceID string, page int, filter HistoryFilter) (*HistoryPage, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clock}
}

func (q *reservationQueriesImpl) ListEvents(ctx context.Context, resourceID string, windowStart, windowEnd time.Time) ([]*EventView, error) {
	records, err := q.store.FindInWindow(ctx, resourceID, reservation.ListableStatuses(), windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	events := make([]*EventView, len(records))
	for i, rec := range records {
		events[i] = &EventView{
			EventID: rec.EventID,
			Title:   displayTitle(rec.Status, rec.UserName),
			Start:   rec.StartTime,
			End:     rec.EndTime,
			Status:  rec.Status.String(),
		}
	}
	return events, nil
}

// CheckAvailability reports per-resource occupancy at the current
// instant. A resource counts as occupied only while a reservation on it
// is checked in.
func (q *reservationQueriesImpl) CheckAvailability(ctx context.Context, resourceIDs []string) ([]*ResourceStatusView, error) {
	now := q.clock.Now()

	result := make([]*ResourceStatusView, len(resourceIDs))
	for i, id := range resourceIDs {
		occupied, err := q.store.ExistsActiveAt(ctx, id, []reservation.Status{reservation.StatusCheckedIn}, now)
		if err != nil {
			return nil, err
		}
		status := resourceAvailable
		if occupied {
			status = resourceOccupied
		}
		result[i] = &ResourceStatusView{ResourceID: id, Status: status}
	}
	return result, nil
}

func (q *reservationQueriesImpl) History(ctx context.Context, resourceID string, page int, filter HistoryFilter) (*HistoryPage, error) {
	if page < 0 {
		page = 0
	}

	until := filter.EndDate
	if until != nil {
		// Inclusive end date: filter strictly before the following day.
		u := until.AddDate(0, 0, 1)
		until = &u
	}

	records, total, err := q.store.FindByResourcePaged(
		ctx, resourceID, filter.StartDate, until,
		HistoryPageSize, int32(page*HistoryPageSize),
	)
	if err != nil {
		return nil, err
	}

	items := make([]HistoryItem, len(records))
	for i, rec := range records {
		items[i] = HistoryItem{
			Date:   rec.StartTime.Format("2006/01/02"),
			Time:   fmt.Sprintf("%s ~ %s", rec.StartTime.Format("15:04"), rec.EndTime.Format("15:04")),
			User:   rec.UserName,
			Status: rec.Status.String(),
		}
	}

	totalPages := int((total + HistoryPageSize - 1) / HistoryPageSize)

	return &HistoryPage{
		Items:       items,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}

func displayTitle(status reservation.Status, userName string) string {
	switch status {
	case reservation.StatusBooked:
		return "[reserved] " + userName
	case reservation.StatusCheckedIn:
		return "[in use] " + userName
	case reservation.StatusNoShowCancelled:
		return "[cancelled] " + userName
	default:
		return "[" + status.String() + "] " + userName
	}
}
