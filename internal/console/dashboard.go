package console

import (
	"context"
	"fmt"

	"github.com/bookdesk/bookdesk/internal/model"
)

// Dashboard renders the summary counts: totals per collection plus the
// per-status appointment breakdown.
func (c *Console) Dashboard(ctx context.Context, poller *HealthPoller) error {
	c.ensureAppointments(ctx)
	c.ensureCustomers(ctx)
	c.ensureServices(ctx)
	c.ensureStaff(ctx)

	appointments, apptSt := c.store.Appointments()
	customers, custSt := c.store.Customers()
	services, svcSt := c.store.Services()
	staff, staffSt := c.store.Staff()

	pending := len(FilterAppointmentsByStatus(appointments, model.StatusPending))
	confirmed := len(FilterAppointmentsByStatus(appointments, model.StatusConfirmed))

	w := c.table()
	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "appointments\t%d\n", len(appointments))
	fmt.Fprintf(w, "pending\t%d\n", pending)
	fmt.Fprintf(w, "confirmed\t%d\n", confirmed)
	fmt.Fprintf(w, "customers\t%d\n", len(customers))
	fmt.Fprintf(w, "services\t%d\n", len(services))
	fmt.Fprintf(w, "staff\t%d\n", len(staff))
	if poller != nil {
		poller.Check(ctx)
		state := "disconnected"
		if poller.Connected() {
			state = "connected"
		}
		fmt.Fprintf(w, "vapi\t%s\n", state)
	}
	w.Flush()

	for _, pair := range []struct {
		name string
		err  string
	}{
		{"appointments", apptSt.Err},
		{"customers", custSt.Err},
		{"services", svcSt.Err},
		{"staff", staffSt.Err},
	} {
		if pair.err != "" {
			c.printf("error (%s): %s\n", pair.name, pair.err)
		}
	}
	return nil
}
