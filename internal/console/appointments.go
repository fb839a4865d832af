package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
)

func (c *Console) ensureAppointments(ctx context.Context) {
	ensure(&c.appointmentsOnce, ctx, c.store.FetchAppointments)
}

func (c *Console) ListAppointments(ctx context.Context, statusFilter string) error {
	c.ensureAppointments(ctx)
	list, st := c.store.Appointments()
	c.renderAppointments(FilterAppointmentsByStatus(list, statusFilter))
	c.renderStatus(st)
	return nil
}

func (c *Console) ShowAppointment(ctx context.Context, id int64) error {
	appt, err := c.client.Appointments().Get(ctx, id)
	if err != nil {
		return err
	}
	c.renderAppointments([]model.Appointment{appt})
	return nil
}

func (c *Console) AddAppointment(ctx context.Context, params api.AppointmentParams) error {
	created, err := c.store.AddAppointment(ctx, params)
	if err != nil {
		return fmt.Errorf("add appointment: %w", err)
	}
	c.printf("created appointment %d\n", created.AppointmentID)
	return nil
}

func (c *Console) UpdateAppointment(ctx context.Context, id int64, params api.AppointmentParams) error {
	updated, err := c.store.UpdateAppointment(ctx, id, params)
	if err != nil {
		return fmt.Errorf("update appointment %d: %w", id, err)
	}
	c.renderAppointments([]model.Appointment{updated})
	return nil
}

func (c *Console) UpdateAppointmentStatus(ctx context.Context, id int64, status string) error {
	updated, err := c.store.UpdateAppointmentStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update appointment %d status: %w", id, err)
	}
	c.printf("appointment %d is now %s\n", id, updated.Status)
	return nil
}

func (c *Console) DeleteAppointment(ctx context.Context, id int64) error {
	if err := c.store.DeleteAppointment(ctx, id); err != nil {
		return fmt.Errorf("delete appointment %d: %w", id, err)
	}
	c.printf("deleted appointment %d\n", id)
	return nil
}

// ListAppointmentsByCustomer and ListAppointmentsByStaff use the scoped
// endpoints directly; the results are a view, not the mirrored collection.
func (c *Console) ListAppointmentsByCustomer(ctx context.Context, customerID int64) error {
	list, err := c.client.Appointments().ListByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	c.renderAppointments(list)
	return nil
}

func (c *Console) ListAppointmentsByStaff(ctx context.Context, staffID int64) error {
	list, err := c.client.Appointments().ListByStaff(ctx, staffID)
	if err != nil {
		return err
	}
	c.renderAppointments(list)
	return nil
}

func (c *Console) renderAppointments(list []model.Appointment) {
	w := c.table()
	fmt.Fprintln(w, "ID\tDATE\tSTATUS\tCUSTOMER\tSERVICE\tSTAFF")
	for _, a := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			a.AppointmentID,
			orDash(a.AppointmentDate),
			a.Status,
			nameOrID(a.Customer != nil, func() string { return a.Customer.Name }, a.CustomerID),
			nameOrID(a.Service != nil, func() string { return a.Service.ServiceName }, a.ServiceID),
			nameOrID(a.Staff != nil, func() string { return a.Staff.Name }, a.StaffID),
		)
	}
	w.Flush()
	c.printf("%d appointment(s)\n", len(list))
}

func nameOrID(ok bool, name func() string, id int64) string {
	if ok {
		return name()
	}
	return "#" + strconv.FormatInt(id, 10)
}
