package commands

import (
	"context"
	"time"

	"roomdesk/internal/domain/reservation"
	"roomdesk/internal/infra"
	"roomdesk/internal/pkg/clock"
	"roomdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrReservationConflict     = errs.New("reservation conflict")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrInvalidTransition       = errs.New("invalid status transition")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ReservationRepository is the write-side port of the reservation store.
type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*reservation.Reservation, error)
	FindOverlapping(ctx context.Context, resourceID string, statuses []reservation.Status, slot reservation.TimeSlot) ([]reservation.Window, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status, newEndTime *time.Time, updatedAt time.Time) error
}

type BookResult struct {
	EventID uuid.UUID
}

// ReservationCommands drives the reservation lifecycle. Every operation
// identifies its target by the public event ID, never the storage key.
type ReservationCommands interface {
	Book(ctx context.Context, resourceID, userName string, start, end time.Time) (*BookResult, error)
	CheckIn(ctx context.Context, eventID uuid.UUID) error
	Return(ctx context.Context, eventID uuid.UUID) error
	Cancel(ctx context.Context, eventID uuid.UUID) error
}

type reservationCommandsImpl struct {
	repo  ReservationRepository
	clock clock.Clock
}

func NewReservationCommands(repo ReservationRepository, clock clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		repo:  repo,
		clock: clock,
	}
}

// Book creates a reservation in the booked state. The conflict pre-check
// gives a clean failure for the common case; the storage exclusion
// constraint is what actually guarantees no double booking when two
// overlapping requests race past the pre-check.
func (c *reservationCommandsImpl) Book(ctx context.Context, resourceID, userName string, start, end time.Time) (*BookResult, error) {
	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	existing, err := c.repo.FindOverlapping(ctx, resourceID, reservation.OccupyingStatuses(), slot)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if reservation.HasConflict(slot, existing) {
		return nil, ErrReservationConflict
	}

	res, err := reservation.NewReservation(resourceID, userName, slot, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	if err := c.repo.Create(ctx, res); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrReservationConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &BookResult{EventID: res.EventID()}, nil
}

func (c *reservationCommandsImpl) CheckIn(ctx context.Context, eventID uuid.UUID) error {
	return c.applyTransition(ctx, eventID, func(res *reservation.Reservation, now time.Time) error {
		return res.CheckIn(now)
	}, false)
}

// Return also persists the rewritten end time so the calendar reflects
// the actual usage window.
func (c *reservationCommandsImpl) Return(ctx context.Context, eventID uuid.UUID) error {
	return c.applyTransition(ctx, eventID, func(res *reservation.Reservation, now time.Time) error {
		return res.Return(now)
	}, true)
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, eventID uuid.UUID) error {
	return c.applyTransition(ctx, eventID, func(res *reservation.Reservation, now time.Time) error {
		return res.Cancel(now)
	}, false)
}

func (c *reservationCommandsImpl) applyTransition(
	ctx context.Context,
	eventID uuid.UUID,
	apply func(*reservation.Reservation, time.Time) error,
	persistEndTime bool,
) error {
	res, err := c.repo.FindByEventID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := c.clock.Now()
	if err := apply(res, now); err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	var newEndTime *time.Time
	if persistEndTime {
		end := res.Slot().End()
		newEndTime = &end
	}

	if err := c.repo.UpdateStatus(ctx, res.ID(), res.Status(), newEndTime, now); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
