package response

import (
	"time"

	"roomdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// OperationResponse is the uniform success-flag envelope of the lifecycle
// operations.
type OperationResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	EventID *uuid.UUID `json:"eventId,omitempty"`
}

type EventResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
}

type ResourceStatusResponse struct {
	ResourceID string `json:"resourceId"`
	Status     string `json:"status"`
}

type HistoryItemResponse struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	User   string `json:"user"`
	Status string `json:"status"`
}

type HistoryResponse struct {
	Items       []HistoryItemResponse `json:"data"`
	CurrentPage int                   `json:"currentPage"`
	TotalPages  int                   `json:"totalPages"`
}

func FromEventView(v *queries.EventView) *EventResponse {
	return &EventResponse{
		ID:     v.EventID,
		Title:  v.Title,
		Start:  v.Start,
		End:    v.End,
		Status: v.Status,
	}
}

func FromEventViews(views []*queries.EventView) []*EventResponse {
	out := make([]*EventResponse, len(views))
	for i, v := range views {
		out[i] = FromEventView(v)
	}
	return out
}

func FromResourceStatusViews(views []*queries.ResourceStatusView) []*ResourceStatusResponse {
	out := make([]*ResourceStatusResponse, len(views))
	for i, v := range views {
		out[i] = &ResourceStatusResponse{ResourceID: v.ResourceID, Status: v.Status}
	}
	return out
}

func FromHistoryPage(page *queries.HistoryPage) (*HistoryResponse, error) {
	var resp HistoryResponse
	if err := copier.Copy(&resp, page); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		resp.Items = []HistoryItemResponse{}
	}
	return &resp, nil
}
