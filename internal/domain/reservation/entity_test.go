//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"roomdesk/internal/domain/reservation"
	"roomdesk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.NotEqual(t, uuid.Nil, actual.EventID())
		assert.NotEqual(t, actual.ID(), actual.EventID())
		assert.Equal(t, reservation.StatusBooked, actual.Status())
		assert.Equal(t, "room-a", actual.ResourceID())
		assert.Equal(t, "tanaka", actual.UserName())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("empty resource id", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.ResourceID = "" }).
			BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrEmptyResourceID)
	})

	t.Run("empty user name", func(t *testing.T) {
		_, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.UserName = "" }).
			BuildDomain()
		assert.ErrorIs(t, err, reservation.ErrEmptyUserName)
	})

	t.Run("storage key uniqueness", func(t *testing.T) {
		r1, err1 := builder.NewReservationBuilder().BuildDomain()
		r2, err2 := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, r1.ID(), r2.ID())
		assert.NotEqual(t, r1.EventID(), r2.EventID())
	})
}

func TestReservation_Transitions(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	apply := map[string]func(*reservation.Reservation) error{
		"checkin": func(r *reservation.Reservation) error { return r.CheckIn(now) },
		"return":  func(r *reservation.Reservation) error { return r.Return(now) },
		"cancel":  func(r *reservation.Reservation) error { return r.Cancel(now) },
		"no-show": func(r *reservation.Reservation) error { return r.MarkNoShow(now) },
	}

	testCases := []struct {
		name      string
		from      reservation.Status
		operation string
		errIs     error
		expect    reservation.Status
	}{
		{name: "check in a booked reservation", from: reservation.StatusBooked, operation: "checkin", expect: reservation.StatusCheckedIn},
		{name: "cancel a booked reservation", from: reservation.StatusBooked, operation: "cancel", expect: reservation.StatusCancelled},
		{name: "sweep a booked reservation", from: reservation.StatusBooked, operation: "no-show", expect: reservation.StatusNoShowCancelled},
		{name: "return a checked-in reservation", from: reservation.StatusCheckedIn, operation: "return", expect: reservation.StatusReturned},
		{name: "return without check-in", from: reservation.StatusBooked, operation: "return", errIs: reservation.ErrInvalidTransition},
		{name: "check in twice", from: reservation.StatusCheckedIn, operation: "checkin", errIs: reservation.ErrInvalidTransition},
		{name: "cancel while in use", from: reservation.StatusCheckedIn, operation: "cancel", errIs: reservation.ErrInvalidTransition},
		{name: "sweep while in use", from: reservation.StatusCheckedIn, operation: "no-show", errIs: reservation.ErrInvalidTransition},
		{name: "check in after return", from: reservation.StatusReturned, operation: "checkin", errIs: reservation.ErrInvalidTransition},
		{name: "cancel twice", from: reservation.StatusCancelled, operation: "cancel", errIs: reservation.ErrInvalidTransition},
		{name: "revive a swept reservation", from: reservation.StatusNoShowCancelled, operation: "checkin", errIs: reservation.ErrInvalidTransition},
		{name: "legacy no_show is frozen", from: reservation.StatusNoShow, operation: "checkin", errIs: reservation.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := builder.NewReservationBuilder().WithStatus(tc.from).BuildDomainWithStatus()

			err := apply[tc.operation](res)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, res.Status(), "failed transition must not change state")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expect, res.Status())
			assert.Equal(t, now, res.UpdatedAt())
		})
	}
}

func TestReservation_Return_RewritesEnd(t *testing.T) {
	b := builder.NewReservationBuilder().WithStatus(reservation.StatusCheckedIn)
	res := b.BuildDomainWithStatus()

	returnedAt := b.Start.Add(30 * time.Minute)
	require.NoError(t, res.Return(returnedAt))

	assert.Equal(t, returnedAt, res.Slot().End(), "end reflects the actual return instant")
	assert.Equal(t, b.Start, res.Slot().Start())
}

func TestReservation_Return_EarlyReturnBeforeStart(t *testing.T) {
	// Returning before the booked window opens leaves end < start; the
	// slot is reconstructed from storage without re-validation.
	b := builder.NewReservationBuilder().WithStatus(reservation.StatusCheckedIn)
	res := b.BuildDomainWithStatus()

	returnedAt := b.Start.Add(-10 * time.Minute)
	require.NoError(t, res.Return(returnedAt))
	assert.Equal(t, returnedAt, res.Slot().End())
}

func TestReservation_IsNoShowAt(t *testing.T) {
	grace := 10 * time.Minute
	b := builder.NewReservationBuilder()

	booked := b.WithStatus(reservation.StatusBooked).BuildDomainWithStatus()

	assert.False(t, booked.IsNoShowAt(b.Start, grace))
	assert.False(t, booked.IsNoShowAt(b.Start.Add(grace), grace), "deadline itself is not yet late")
	assert.True(t, booked.IsNoShowAt(b.Start.Add(grace+time.Second), grace))
	assert.True(t, booked.IsNoShowAt(b.Start.Add(time.Hour), grace))

	checkedIn := b.WithStatus(reservation.StatusCheckedIn).BuildDomainWithStatus()
	assert.False(t, checkedIn.IsNoShowAt(b.Start.Add(time.Hour), grace))

	cancelled := b.WithStatus(reservation.StatusCancelled).BuildDomainWithStatus()
	assert.False(t, cancelled.IsNoShowAt(b.Start.Add(time.Hour), grace))
}
