//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"roomdesk/internal/domain/reservation"
	"roomdesk/internal/pkg/clock"
	"roomdesk/internal/usecase/queries"
	"roomdesk/tests/common/builder"
	queriesmock "roomdesk/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func newQueries(t *testing.T) (queries.ReservationQueries, *queriesmock.MockReservationReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	return queries.NewReservationQueries(store, clock.NewMockClock(now)), store
}

// =============================================================================
// ListEvents
// =============================================================================

func TestQueries_ListEvents(t *testing.T) {
	ctx := context.Background()
	windowStart := now.Add(-24 * time.Hour)
	windowEnd := now.Add(24 * time.Hour)

	t.Run("success: titles follow the display convention", func(t *testing.T) {
		uc, store := newQueries(t)

		records := []*queries.ReservationRecord{
			builder.NewReservationBuilder().WithStatus(reservation.StatusBooked).BuildRecord(),
			builder.NewReservationBuilder().WithStatus(reservation.StatusCheckedIn).BuildRecord(),
			builder.NewReservationBuilder().WithStatus(reservation.StatusNoShowCancelled).BuildRecord(),
			builder.NewReservationBuilder().WithStatus(reservation.StatusReturned).BuildRecord(),
		}
		store.EXPECT().
			FindInWindow(ctx, "room-a", reservation.ListableStatuses(), windowStart, windowEnd).
			Return(records, nil)

		events, err := uc.ListEvents(ctx, "room-a", windowStart, windowEnd)
		require.NoError(t, err)
		require.Len(t, events, 4)

		assert.Equal(t, "[reserved] tanaka", events[0].Title)
		assert.Equal(t, "[in use] tanaka", events[1].Title)
		assert.Equal(t, "[cancelled] tanaka", events[2].Title)
		assert.Equal(t, "[returned] tanaka", events[3].Title)

		expected := &queries.EventView{
			EventID: records[0].EventID,
			Title:   "[reserved] tanaka",
			Start:   records[0].StartTime,
			End:     records[0].EndTime,
			Status:  "booked",
		}
		if diff := cmp.Diff(expected, events[0]); diff != "" {
			t.Errorf("event mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: empty window", func(t *testing.T) {
		uc, store := newQueries(t)

		store.EXPECT().
			FindInWindow(ctx, "room-a", reservation.ListableStatuses(), windowStart, windowEnd).
			Return(nil, nil)

		events, err := uc.ListEvents(ctx, "room-a", windowStart, windowEnd)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("error: store failure propagates", func(t *testing.T) {
		uc, store := newQueries(t)

		store.EXPECT().
			FindInWindow(ctx, "room-a", reservation.ListableStatuses(), windowStart, windowEnd).
			Return(nil, errors.New("connection refused"))

		_, err := uc.ListEvents(ctx, "room-a", windowStart, windowEnd)
		assert.Error(t, err)
	})
}

// =============================================================================
// CheckAvailability
// =============================================================================

func TestQueries_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	checkedIn := []reservation.Status{reservation.StatusCheckedIn}

	t.Run("success: only checked-in reservations occupy", func(t *testing.T) {
		uc, store := newQueries(t)

		store.EXPECT().ExistsActiveAt(ctx, "room-a", checkedIn, now).Return(true, nil)
		store.EXPECT().ExistsActiveAt(ctx, "room-b", checkedIn, now).Return(false, nil)

		statuses, err := uc.CheckAvailability(ctx, []string{"room-a", "room-b"})
		require.NoError(t, err)

		expected := []*queries.ResourceStatusView{
			{ResourceID: "room-a", Status: "occupied"},
			{ResourceID: "room-b", Status: "available"},
		}
		if diff := cmp.Diff(expected, statuses); diff != "" {
			t.Errorf("status mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: no resources requested", func(t *testing.T) {
		uc, _ := newQueries(t)

		statuses, err := uc.CheckAvailability(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, statuses)
	})

	t.Run("error: store failure propagates", func(t *testing.T) {
		uc, store := newQueries(t)

		store.EXPECT().ExistsActiveAt(ctx, "room-a", checkedIn, now).
			Return(false, errors.New("connection refused"))

		_, err := uc.CheckAvailability(ctx, []string{"room-a"})
		assert.Error(t, err)
	})
}

// =============================================================================
// History
// =============================================================================

func TestQueries_History(t *testing.T) {
	ctx := context.Background()

	records := func(n int) []*queries.ReservationRecord {
		out := make([]*queries.ReservationRecord, n)
		for i := range out {
			b := builder.NewReservationBuilder().WithStatus(reservation.StatusReturned)
			out[i] = b.BuildRecord()
		}
		return out
	}

	t.Run("success: fixed page size and ceiling page count", func(t *testing.T) {
		uc, store := newQueries(t)

		store.EXPECT().
			FindByResourcePaged(ctx, "room-a", (*time.Time)(nil), (*time.Time)(nil), int32(10), int32(0)).
			Return(records(10), int64(25), nil)

		page, err := uc.History(ctx, "room-a", 0, queries.HistoryFilter{})
		require.NoError(t, err)
		assert.Len(t, page.Items, 10)
		assert.Equal(t, 0, page.CurrentPage)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("success: offset follows the page number", func(t *testing.T) {
		uc, store := newQueries(t)

		store.EXPECT().
			FindByResourcePaged(ctx, "room-a", (*time.Time)(nil), (*time.Time)(nil), int32(10), int32(20)).
			Return(records(5), int64(25), nil)

		page, err := uc.History(ctx, "room-a", 2, queries.HistoryFilter{})
		require.NoError(t, err)
		assert.Len(t, page.Items, 5)
		assert.Equal(t, 2, page.CurrentPage)
	})

	t.Run("success: negative page is clamped to zero", func(t *testing.T) {
		uc, store := newQueries(t)

		store.EXPECT().
			FindByResourcePaged(ctx, "room-a", (*time.Time)(nil), (*time.Time)(nil), int32(10), int32(0)).
			Return(nil, int64(0), nil)

		page, err := uc.History(ctx, "room-a", -3, queries.HistoryFilter{})
		require.NoError(t, err)
		assert.Equal(t, 0, page.CurrentPage)
		assert.Equal(t, 0, page.TotalPages)
	})

	t.Run("success: inclusive end date is extended by one day", func(t *testing.T) {
		uc, store := newQueries(t)

		from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		until := time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC)
		expectedUntil := until.AddDate(0, 0, 1)

		store.EXPECT().
			FindByResourcePaged(ctx, "room-a", &from, &expectedUntil, int32(10), int32(0)).
			Return(nil, int64(0), nil)

		_, err := uc.History(ctx, "room-a", 0, queries.HistoryFilter{StartDate: &from, EndDate: &until})
		require.NoError(t, err)
	})

	t.Run("success: item formatting", func(t *testing.T) {
		uc, store := newQueries(t)

		rec := builder.NewReservationBuilder().
			WithStatus(reservation.StatusReturned).
			WithSlot(
				time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 2, 11, 30, 0, 0, time.UTC),
			).
			BuildRecord()
		store.EXPECT().
			FindByResourcePaged(ctx, "room-a", (*time.Time)(nil), (*time.Time)(nil), int32(10), int32(0)).
			Return([]*queries.ReservationRecord{rec}, int64(1), nil)

		page, err := uc.History(ctx, "room-a", 0, queries.HistoryFilter{})
		require.NoError(t, err)

		expected := queries.HistoryItem{
			Date:   "2025/06/02",
			Time:   "10:00 ~ 11:30",
			User:   "tanaka",
			Status: "returned",
		}
		if diff := cmp.Diff(expected, page.Items[0]); diff != "" {
			t.Errorf("item mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: store failure propagates", func(t *testing.T) {
		uc, store := newQueries(t)

		store.EXPECT().
			FindByResourcePaged(ctx, "room-a", (*time.Time)(nil), (*time.Time)(nil), int32(10), int32(0)).
			Return(nil, int64(0), errors.New("connection refused"))

		_, err := uc.History(ctx, "room-a", 0, queries.HistoryFilter{})
		assert.Error(t, err)
	})
}
