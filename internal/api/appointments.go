package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bookdesk/bookdesk/internal/model"
)

type AppointmentsAPI struct {
	c *Client
}

// AppointmentParams carries create/update payloads. Nil fields are omitted
// from the request body; the server decides what a partial update means.
type AppointmentParams struct {
	CustomerID      *int64  `json:"customerId,omitempty"`
	ServiceID       *int64  `json:"serviceId,omitempty"`
	StaffID         *int64  `json:"staffId,omitempty"`
	AppointmentDate *string `json:"appointmentDate,omitempty"`
	Status          *string `json:"status,omitempty"`
}

func (a AppointmentsAPI) List(ctx context.Context) ([]model.Appointment, error) {
	return listOf[model.Appointment](ctx, a.c, "/appointments", nil)
}

func (a AppointmentsAPI) Get(ctx context.Context, id int64) (model.Appointment, error) {
	var out model.Appointment
	err := a.c.do(ctx, http.MethodGet, fmt.Sprintf("/appointments/%d", id), nil, nil, &out)
	return out, err
}

func (a AppointmentsAPI) Create(ctx context.Context, params AppointmentParams) (model.Appointment, error) {
	var out model.Appointment
	err := a.c.do(ctx, http.MethodPost, "/appointments", nil, params, &out)
	return out, err
}

// Update decodes the server response onto *into, so fields the response
// omits keep their current values.
func (a AppointmentsAPI) Update(ctx context.Context, id int64, params AppointmentParams, into *model.Appointment) error {
	return a.c.do(ctx, http.MethodPut, fmt.Sprintf("/appointments/%d", id), nil, params, into)
}

func (a AppointmentsAPI) Delete(ctx context.Context, id int64) error {
	return a.c.do(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%d", id), nil, nil, nil)
}

func (a AppointmentsAPI) UpdateStatus(ctx context.Context, id int64, status string, into *model.Appointment) error {
	body := map[string]string{"status": status}
	return a.c.do(ctx, http.MethodPatch, fmt.Sprintf("/appointments/%d/status", id), nil, body, into)
}

func (a AppointmentsAPI) ListByCustomer(ctx context.Context, customerID int64) ([]model.Appointment, error) {
	return listOf[model.Appointment](ctx, a.c, fmt.Sprintf("/appointments/customer/%d", customerID), nil)
}

func (a AppointmentsAPI) ListByStaff(ctx context.Context, staffID int64) ([]model.Appointment, error) {
	return listOf[model.Appointment](ctx, a.c, fmt.Sprintf("/appointments/staff/%d", staffID), nil)
}
