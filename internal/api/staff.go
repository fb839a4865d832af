package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bookdesk/bookdesk/internal/model"
)

type StaffAPI struct {
	c *Client
}

type StaffParams struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
}

type ScheduleParams struct {
	DayOfWeek   *string `json:"dayOfWeek,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

func (s StaffAPI) List(ctx context.Context) ([]model.Staff, error) {
	return listOf[model.Staff](ctx, s.c, "/staff", nil)
}

func (s StaffAPI) Get(ctx context.Context, id int64) (model.Staff, error) {
	var out model.Staff
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/staff/%d", id), nil, nil, &out)
	return out, err
}

func (s StaffAPI) Create(ctx context.Context, params StaffParams) (model.Staff, error) {
	var out model.Staff
	err := s.c.do(ctx, http.MethodPost, "/staff", nil, params, &out)
	return out, err
}

func (s StaffAPI) Update(ctx context.Context, id int64, params StaffParams, into *model.Staff) error {
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/staff/%d", id), nil, params, into)
}

func (s StaffAPI) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/staff/%d", id), nil, nil, nil)
}

func (s StaffAPI) AddSchedule(ctx context.Context, staffID int64, params ScheduleParams) (model.StaffSchedule, error) {
	var out model.StaffSchedule
	err := s.c.do(ctx, http.MethodPost, fmt.Sprintf("/staff/%d/schedules", staffID), nil, params, &out)
	return out, err
}

func (s StaffAPI) ListSchedules(ctx context.Context, staffID int64) ([]model.StaffSchedule, error) {
	return listOf[model.StaffSchedule](ctx, s.c, fmt.Sprintf("/staff/%d/schedules", staffID), nil)
}
