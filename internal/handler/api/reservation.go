package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	reqdto "roomdesk/internal/handler/dto/request"
	resdto "roomdesk/internal/handler/dto/response"
	"roomdesk/internal/usecase/commands"
	"roomdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(commands commands.ReservationCommands, queries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary List calendar events
// @Description List reservations on a resource overlapping the given window
// @Tags reservations
// @Produce json
// @Param resourceId query string true "Resource ID"
// @Param start query string true "Window start (RFC3339)"
// @Param end query string true "Window end (RFC3339)"
// @Success 200 {array} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Router /events [get]
func (h *ReservationHandler) ListEvents(c *gin.Context) {
	var q reqdto.EventsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	events, err := h.queries.ListEvents(c.Request.Context(), q.ResourceID, q.Start, q.End)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventViews(events))
}

// @Summary Check resource availability
// @Description Report per-resource occupancy at the current instant
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Resource IDs"
// @Success 200 {array} resdto.ResourceStatusResponse
// @Failure 400 {object} map[string]string
// @Router /status [post]
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	statuses, err := h.queries.CheckAvailability(c.Request.Context(), req.ResourceIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceStatusViews(statuses))
}

// @Summary Book a reservation
// @Description Reserve a resource for a time window
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.BookReservationRequest true "Booking request"
// @Success 201 {object} resdto.OperationResponse
// @Failure 400 {object} resdto.OperationResponse
// @Failure 409 {object} resdto.OperationResponse
// @Router /reservations [post]
func (h *ReservationHandler) Book(c *gin.Context) {
	var req reqdto.BookReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.commands.Book(c.Request.Context(), req.ResourceID, req.UserName, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, resdto.OperationResponse{
				Success: false,
				Message: "Start time must be before end time.",
			})
		case errors.Is(err, commands.ErrReservationConflict):
			c.JSON(http.StatusConflict, resdto.OperationResponse{
				Success: false,
				Message: "Sorry, this slot has just been taken.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.OperationResponse{
		Success: true,
		Message: "Reservation completed.",
		EventID: &result.EventID,
	})
}

// @Summary Check in
// @Description Mark a booked reservation as in use
// @Tags reservations
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} resdto.OperationResponse
// @Failure 404 {object} resdto.OperationResponse
// @Failure 409 {object} resdto.OperationResponse
// @Router /reservations/{eventId}/checkin [post]
func (h *ReservationHandler) CheckIn(c *gin.Context) {
	h.applyTransition(c, h.commands.CheckIn, "Checked in.")
}

// @Summary Return
// @Description Close out a checked-in reservation at the current time
// @Tags reservations
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} resdto.OperationResponse
// @Failure 404 {object} resdto.OperationResponse
// @Failure 409 {object} resdto.OperationResponse
// @Router /reservations/{eventId}/return [post]
func (h *ReservationHandler) Return(c *gin.Context) {
	h.applyTransition(c, h.commands.Return, "Return completed.")
}

// @Summary Cancel
// @Description Void a booked reservation before pickup
// @Tags reservations
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} resdto.OperationResponse
// @Failure 404 {object} resdto.OperationResponse
// @Failure 409 {object} resdto.OperationResponse
// @Router /reservations/{eventId}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, h.commands.Cancel, "Reservation cancelled.")
}

// @Summary Reservation history
// @Description Paginated reservation history of a resource
// @Tags reservations
// @Produce json
// @Param resourceId path string true "Resource ID"
// @Param page query int false "Zero-based page number"
// @Param startDate query string false "Inclusive start date (2006-01-02)"
// @Param endDate query string false "Inclusive end date (2006-01-02)"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 400 {object} map[string]string
// @Router /resources/{resourceId}/history [get]
func (h *ReservationHandler) History(c *gin.Context) {
	resourceID := c.Param("resourceId")

	var q reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filter, err := historyFilter(q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	page, err := h.queries.History(c.Request.Context(), resourceID, q.Page, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromHistoryPage(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) applyTransition(
	c *gin.Context,
	op func(ctx context.Context, eventID uuid.UUID) error,
	successMessage string,
) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	if err := op(c.Request.Context(), eventID); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, resdto.OperationResponse{
				Success: false,
				Message: "Reservation not found.",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, resdto.OperationResponse{
				Success: false,
				Message: "This reservation cannot change to that state.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OperationResponse{
		Success: true,
		Message: successMessage,
	})
}

func historyFilter(q reqdto.HistoryQuery) (queries.HistoryFilter, error) {
	var filter queries.HistoryFilter

	if q.StartDate != "" {
		t, err := time.Parse("2006-01-02", q.StartDate)
		if err != nil {
			return queries.HistoryFilter{}, err
		}
		filter.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := time.Parse("2006-01-02", q.EndDate)
		if err != nil {
			return queries.HistoryFilter{}, err
		}
		filter.EndDate = &t
	}
	return filter, nil
}
