package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrEmptyResourceID   = errors.New("resource id must not be empty")
	ErrEmptyUserName     = errors.New("user name must not be empty")
)

// Reservation is a time-bounded claim on a shared resource. The storage
// primary key (id) is distinct from the public handle (eventID) so that
// external callers never reference internal keys.
type Reservation struct {
	id         uuid.UUID
	eventID    uuid.UUID
	resourceID string
	userName   string
	slot       TimeSlot
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(resourceID, userName string, slot TimeSlot, now time.Time) (*Reservation, error) {
	if resourceID == "" {
		return nil, ErrEmptyResourceID
	}
	if userName == "" {
		return nil, ErrEmptyUserName
	}

	return &Reservation{
		id:         uuid.New(),
		eventID:    uuid.New(),
		resourceID: resourceID,
		userName:   userName,
		slot:       slot,
		status:     StatusBooked,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructReservation(
	id, eventID uuid.UUID,
	resourceID, userName string,
	slot TimeSlot,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		eventID:    eventID,
		resourceID: resourceID,
		userName:   userName,
		slot:       slot,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// CheckIn marks the resource as picked up. Only a booked reservation can
// be checked in.
func (r *Reservation) CheckIn(now time.Time) error {
	return r.transition(StatusCheckedIn, now)
}

// Return closes out a checked-in reservation and rewrites the window end
// with the actual return instant. The rewritten end is deliberately not
// re-validated against the start: an early return may end before the
// window it was booked for.
func (r *Reservation) Return(now time.Time) error {
	if err := r.transition(StatusReturned, now); err != nil {
		return err
	}
	r.slot.end = now
	return nil
}

// Cancel voids a booked reservation before pickup.
func (r *Reservation) Cancel(now time.Time) error {
	return r.transition(StatusCancelled, now)
}

// MarkNoShow is the sweeper's transition for a booking whose grace period
// elapsed without a check-in.
func (r *Reservation) MarkNoShow(now time.Time) error {
	return r.transition(StatusNoShowCancelled, now)
}

// IsNoShowAt reports whether the reservation is eligible for automatic
// cancellation: still booked, with now strictly past start + grace.
func (r *Reservation) IsNoShowAt(now time.Time, grace time.Duration) bool {
	return r.status == StatusBooked && now.After(r.slot.start.Add(grace))
}

func (r *Reservation) transition(next Status, now time.Time) error {
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	r.updatedAt = now
	return nil
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) EventID() uuid.UUID   { return r.eventID }
func (r *Reservation) ResourceID() string   { return r.resourceID }
func (r *Reservation) UserName() string     { return r.userName }
func (r *Reservation) Slot() TimeSlot       { return r.slot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
