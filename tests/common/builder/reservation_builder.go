//go:build unit || e2e

package builder

import (
	"time"

	domres "roomdesk/internal/domain/reservation"
	reqdto "roomdesk/internal/handler/dto/request"
	"roomdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ResourceID string
	UserName   string
	Start      time.Time
	End        time.Time
	Status     domres.Status
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ResourceID: "room-a",
		UserName:   "tanaka",
		Start:      now.Add(time.Hour),
		End:        now.Add(3 * time.Hour),
		Status:     domres.StatusBooked,
		CreatedAt:  now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithStatus(status domres.Status) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	r.Start = start
	r.End = end
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	slot, err := domres.NewTimeSlot(r.Start, r.End)
	if err != nil {
		return nil, err
	}
	return domres.NewReservation(r.ResourceID, r.UserName, slot, r.CreatedAt)
}

// BuildDomainWithStatus reconstructs an already persisted reservation in
// an arbitrary lifecycle state.
func (r *ReservationBuilder) BuildDomainWithStatus() *domres.Reservation {
	return domres.ReconstructReservation(
		uuid.New(), uuid.New(),
		r.ResourceID, r.UserName,
		domres.ReconstructTimeSlot(r.Start, r.End),
		r.Status,
		r.CreatedAt, r.CreatedAt,
	)
}

func (r *ReservationBuilder) BuildBookRequestDTO() reqdto.BookReservationRequest {
	return reqdto.BookReservationRequest{
		ResourceID: r.ResourceID,
		UserName:   r.UserName,
		StartTime:  r.Start,
		EndTime:    r.End,
	}
}

func (r *ReservationBuilder) BuildRecord() *queries.ReservationRecord {
	return &queries.ReservationRecord{
		EventID:   uuid.New(),
		UserName:  r.UserName,
		StartTime: r.Start,
		EndTime:   r.End,
		Status:    r.Status,
	}
}

func (r *ReservationBuilder) BuildWindow() domres.Window {
	return domres.Window{
		Slot:   domres.ReconstructTimeSlot(r.Start, r.End),
		Status: r.Status,
	}
}
