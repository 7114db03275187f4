//go:build e2e

package reservation_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"roomdesk/internal/infra/repository"
	"roomdesk/internal/pkg/clock"
	"roomdesk/internal/worker"
	"roomdesk/tests/common/builder"
	"roomdesk/tests/common/dbtest"
	commonhttp "roomdesk/tests/common/httptest"
	"roomdesk/tests/e2e"

	resdto "roomdesk/internal/handler/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReservationE2ETestSuite struct {
	e2e.SharedSuite
}

func TestReservationE2ESuite(t *testing.T) {
	suite.Run(t, new(ReservationE2ETestSuite))
}

func (s *ReservationE2ETestSuite) book(body any) *resdto.OperationResponse {
	rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", body)
	var resp resdto.OperationResponse
	commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
	s.Require().NotNil(resp.EventID)
	return &resp
}

func (s *ReservationE2ETestSuite) transition(eventID uuid.UUID, action string) *http.Response {
	rec := commonhttp.PerformRequest(s.T(), s.Router,
		http.MethodPost, fmt.Sprintf("/api/reservations/%s/%s", eventID, action), nil)
	return rec.Result()
}

// ================================================================================
// Booking lifecycle
// ================================================================================

func (s *ReservationE2ETestSuite) TestBookingLifecycle() {
	s.Run("book, check in and return", func() {
		reqBody := builder.NewReservationBuilder().BuildBookRequestDTO()
		booked := s.book(reqBody)

		res := s.transition(*booked.EventID, "checkin")
		s.Equal(http.StatusOK, res.StatusCode)

		res = s.transition(*booked.EventID, "return")
		s.Equal(http.StatusOK, res.StatusCode)

		// Returned is terminal
		res = s.transition(*booked.EventID, "cancel")
		s.Equal(http.StatusConflict, res.StatusCode)
	})

	s.Run("cancel before pickup blocks later check-in", func() {
		reqBody := builder.NewReservationBuilder().BuildBookRequestDTO()
		booked := s.book(reqBody)

		res := s.transition(*booked.EventID, "cancel")
		s.Equal(http.StatusOK, res.StatusCode)

		res = s.transition(*booked.EventID, "checkin")
		s.Equal(http.StatusConflict, res.StatusCode)
	})

	s.Run("return requires a prior check-in", func() {
		reqBody := builder.NewReservationBuilder().BuildBookRequestDTO()
		booked := s.book(reqBody)

		res := s.transition(*booked.EventID, "return")
		s.Equal(http.StatusConflict, res.StatusCode)
	})

	s.Run("unknown event id is 404", func() {
		res := s.transition(uuid.New(), "checkin")
		s.Equal(http.StatusNotFound, res.StatusCode)
	})

	s.Run("rejects inverted time slot", func() {
		b := builder.NewReservationBuilder()
		b.Start, b.End = b.End, b.Start
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", b.BuildBookRequestDTO())
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Start time must be before end time.")
	})
}

// ================================================================================
// Double booking
// ================================================================================

func (s *ReservationE2ETestSuite) TestDoubleBooking() {
	s.Run("overlapping slot on the same resource is rejected", func() {
		b := builder.NewReservationBuilder()
		s.book(b.BuildBookRequestDTO())

		overlap := builder.NewReservationBuilder().
			WithSlot(b.Start.Add(30*time.Minute), b.End.Add(30*time.Minute)).
			BuildBookRequestDTO()
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reservations", overlap)
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Sorry, this slot has just been taken.")
	})

	s.Run("back-to-back slots touch without conflict", func() {
		b := builder.NewReservationBuilder()
		s.book(b.BuildBookRequestDTO())

		adjacent := builder.NewReservationBuilder().
			WithSlot(b.End, b.End.Add(time.Hour)).
			BuildBookRequestDTO()
		s.book(adjacent)
	})

	s.Run("same slot on another resource is fine", func() {
		b := builder.NewReservationBuilder()
		s.book(b.BuildBookRequestDTO())

		other := builder.NewReservationBuilder()
		other.ResourceID = "room-b"
		s.book(other.BuildBookRequestDTO())
	})

	s.Run("cancelled reservation frees the slot", func() {
		b := builder.NewReservationBuilder()
		booked := s.book(b.BuildBookRequestDTO())

		res := s.transition(*booked.EventID, "cancel")
		s.Equal(http.StatusOK, res.StatusCode)

		s.book(b.BuildBookRequestDTO())
	})
}

// ================================================================================
// Calendar and availability
// ================================================================================

func (s *ReservationE2ETestSuite) TestCalendarAndAvailability() {
	s.Run("events list reservations overlapping the window", func() {
		base := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
		_, err := dbtest.InsertReservation(s.DB, "room-a", "tanaka", base, base.Add(2*time.Hour), "booked")
		s.Require().NoError(err)
		_, err = dbtest.InsertReservation(s.DB, "room-a", "suzuki", base.Add(3*time.Hour), base.Add(4*time.Hour), "checked_in")
		s.Require().NoError(err)
		// Outside the queried window
		_, err = dbtest.InsertReservation(s.DB, "room-a", "sato", base.Add(48*time.Hour), base.Add(50*time.Hour), "booked")
		s.Require().NoError(err)

		url := fmt.Sprintf("/api/events?resourceId=room-a&start=%s&end=%s",
			base.Add(-time.Hour).Format(time.RFC3339), base.Add(6*time.Hour).Format(time.RFC3339))
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil)

		var events []resdto.EventResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &events)
		s.Require().Len(events, 2)
		s.Equal("[reserved] tanaka", events[0].Title)
		s.Equal("[in use] suzuki", events[1].Title)
	})

	s.Run("availability reflects an in-use reservation", func() {
		now := time.Now().UTC()
		_, err := dbtest.InsertReservation(s.DB, "room-a", "tanaka", now.Add(-time.Hour), now.Add(time.Hour), "checked_in")
		s.Require().NoError(err)
		// Booked but not picked up does not occupy
		_, err = dbtest.InsertReservation(s.DB, "room-b", "suzuki", now.Add(-time.Hour), now.Add(time.Hour), "booked")
		s.Require().NoError(err)

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/status",
			map[string]any{"resourceIds": []string{"room-a", "room-b", "room-c"}})

		var statuses []resdto.ResourceStatusResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &statuses)
		s.Require().Len(statuses, 3)
		s.Equal("occupied", statuses[0].Status)
		s.Equal("available", statuses[1].Status)
		s.Equal("available", statuses[2].Status)
	})
}

// ================================================================================
// History
// ================================================================================

func (s *ReservationE2ETestSuite) TestHistory() {
	s.Run("fixed page size with total page count", func() {
		base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
		for i := range 25 {
			day := base.AddDate(0, 0, i)
			_, err := dbtest.InsertReservation(s.DB, "room-a", "tanaka", day, day.Add(time.Hour), "returned")
			s.Require().NoError(err)
		}

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/resources/room-a/history", nil)
		var page resdto.HistoryResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Items, 10)
		s.Equal(0, page.CurrentPage)
		s.Equal(3, page.TotalPages)
		// Most recent first
		s.Equal("2025/05/25", page.Items[0].Date)

		rec = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/resources/room-a/history?page=2", nil)
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Items, 5)
		s.Equal(2, page.CurrentPage)
	})

	s.Run("inclusive date bounds", func() {
		base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
		for i := range 5 {
			day := base.AddDate(0, 0, i)
			_, err := dbtest.InsertReservation(s.DB, "room-a", "tanaka", day, day.Add(time.Hour), "returned")
			s.Require().NoError(err)
		}

		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/resources/room-a/history?startDate=2025-05-02&endDate=2025-05-04", nil)
		var page resdto.HistoryResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Items, 3)
	})

	s.Run("empty history returns an empty page", func() {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/resources/room-x/history", nil)
		var page resdto.HistoryResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.NotNil(page.Items)
		s.Empty(page.Items)
		s.Equal(0, page.TotalPages)
	})

	s.Run("malformed date is rejected", func() {
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/resources/room-a/history?startDate=05-01-2025", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// No-show sweep
// ================================================================================

func (s *ReservationE2ETestSuite) TestNoShowSweep() {
	s.Run("sweeps stale bookings, leaves fresh and checked-in ones", func() {
		now := time.Now().UTC()
		staleID, err := dbtest.InsertReservation(s.DB, "room-a", "tanaka", now.Add(-31*time.Minute), now.Add(time.Hour), "booked")
		s.Require().NoError(err)
		freshID, err := dbtest.InsertReservation(s.DB, "room-b", "suzuki", now.Add(-5*time.Minute), now.Add(time.Hour), "booked")
		s.Require().NoError(err)
		inUseID, err := dbtest.InsertReservation(s.DB, "room-c", "sato", now.Add(-40*time.Minute), now.Add(time.Hour), "checked_in")
		s.Require().NoError(err)

		repo := repository.NewReservationRepository(s.DB)
		sweeper := worker.NewSweeper(repo, clock.NewMockClock(now), worker.SweeperConfig{
			Interval:    time.Minute,
			GracePeriod: 10 * time.Minute,
		}, nil)

		s.Require().NoError(sweeper.SweepOnce(context.Background()))

		s.Equal("no_show_cancelled", s.statusOf(staleID))
		s.Equal("booked", s.statusOf(freshID))
		s.Equal("checked_in", s.statusOf(inUseID))

		// Re-running the sweep is a no-op
		s.Require().NoError(sweeper.SweepOnce(context.Background()))
		s.Equal("no_show_cancelled", s.statusOf(staleID))
	})

	s.Run("swept slot shows as cancelled in the calendar", func() {
		now := time.Now().UTC()
		_, err := dbtest.InsertReservation(s.DB, "room-a", "tanaka", now.Add(-31*time.Minute), now.Add(time.Hour), "booked")
		s.Require().NoError(err)

		repo := repository.NewReservationRepository(s.DB)
		sweeper := worker.NewSweeper(repo, clock.NewMockClock(now), worker.SweeperConfig{
			Interval:    time.Minute,
			GracePeriod: 10 * time.Minute,
		}, nil)
		s.Require().NoError(sweeper.SweepOnce(context.Background()))

		url := fmt.Sprintf("/api/events?resourceId=room-a&start=%s&end=%s",
			now.Add(-2*time.Hour).Format(time.RFC3339), now.Add(2*time.Hour).Format(time.RFC3339))
		rec := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil)

		var events []resdto.EventResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &events)
		s.Require().Len(events, 1)
		s.Equal("[cancelled] tanaka", events[0].Title)
		s.Equal("no_show_cancelled", events[0].Status)
	})
}

func (s *ReservationE2ETestSuite) statusOf(eventID uuid.UUID) string {
	var status string
	err := s.DB.QueryRow(context.Background(),
		"SELECT status FROM reservations WHERE event_id = $1", eventID).Scan(&status)
	s.Require().NoError(err)
	return status
}
