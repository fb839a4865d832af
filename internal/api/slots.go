package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bookdesk/bookdesk/internal/model"
)

type SlotsAPI struct {
	c *Client
}

type SlotParams struct {
	StaffID   *int64  `json:"staffId,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// AvailableFilter narrows GET /slots/available. Zero fields are left out of
// the query string.
type AvailableFilter struct {
	StaffID int64
	Date    string
}

func (f AvailableFilter) query() url.Values {
	q := url.Values{}
	if f.StaffID != 0 {
		q.Set("staffId", strconv.FormatInt(f.StaffID, 10))
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	return q
}

func (s SlotsAPI) List(ctx context.Context) ([]model.Slot, error) {
	return listOf[model.Slot](ctx, s.c, "/slots", nil)
}

func (s SlotsAPI) Get(ctx context.Context, id int64) (model.Slot, error) {
	var out model.Slot
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/slots/%d", id), nil, nil, &out)
	return out, err
}

func (s SlotsAPI) Create(ctx context.Context, params SlotParams) (model.Slot, error) {
	var out model.Slot
	err := s.c.do(ctx, http.MethodPost, "/slots", nil, params, &out)
	return out, err
}

func (s SlotsAPI) Update(ctx context.Context, id int64, params SlotParams, into *model.Slot) error {
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/slots/%d", id), nil, params, into)
}

func (s SlotsAPI) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/slots/%d", id), nil, nil, nil)
}

func (s SlotsAPI) ListAvailable(ctx context.Context, filter AvailableFilter) ([]model.Slot, error) {
	return listOf[model.Slot](ctx, s.c, "/slots/available", filter.query())
}

func (s SlotsAPI) ListByStaff(ctx context.Context, staffID int64) ([]model.Slot, error) {
	return listOf[model.Slot](ctx, s.c, fmt.Sprintf("/slots/staff/%d", staffID), nil)
}

// Book flips the slot to booked server-side and returns the updated slot.
// No request body; the server owns the isBooked transition.
func (s SlotsAPI) Book(ctx context.Context, id int64, into *model.Slot) error {
	return s.c.do(ctx, http.MethodPatch, fmt.Sprintf("/slots/%d/book", id), nil, nil, into)
}

func (s SlotsAPI) Free(ctx context.Context, id int64, into *model.Slot) error {
	return s.c.do(ctx, http.MethodPatch, fmt.Sprintf("/slots/%d/free", id), nil, nil, into)
}
