package main

import (
	"flag"
	"fmt"

	"github.com/bookdesk/bookdesk/internal/api"
)

func appointmentsCommand(app *App, args []string) error {
	if len(args) == 0 || wantsHelp(args) {
		return fmt.Errorf("usage: bookdesk appointments <list|get|add|update|status|delete|by-customer|by-staff>")
	}
	action, rest := args[0], args[1:]

	switch action {
	case "list":
		fs := newAppointmentsFlags("list")
		status := fs.String("status", "", "filter by status (PENDING, CONFIRMED, CANCELLED, COMPLETED)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return app.console.ListAppointments(app.ctx, *status)

	case "get":
		id, _, err := parseID(rest, "appointment")
		if err != nil {
			return err
		}
		return app.console.ShowAppointment(app.ctx, id)

	case "add":
		fs := newAppointmentsFlags("add")
		params, err := appointmentParams(fs, rest)
		if err != nil {
			return err
		}
		return app.console.AddAppointment(app.ctx, params)

	case "update":
		id, rest, err := parseID(rest, "appointment")
		if err != nil {
			return err
		}
		fs := newAppointmentsFlags("update")
		params, err := appointmentParams(fs, rest)
		if err != nil {
			return err
		}
		return app.console.UpdateAppointment(app.ctx, id, params)

	case "status":
		id, rest, err := parseID(rest, "appointment")
		if err != nil {
			return err
		}
		if len(rest) == 0 {
			return fmt.Errorf("usage: bookdesk appointments status <id> <STATUS>")
		}
		return app.console.UpdateAppointmentStatus(app.ctx, id, rest[0])

	case "delete":
		id, _, err := parseID(rest, "appointment")
		if err != nil {
			return err
		}
		return app.console.DeleteAppointment(app.ctx, id)

	case "by-customer":
		id, _, err := parseID(rest, "customer")
		if err != nil {
			return err
		}
		return app.console.ListAppointmentsByCustomer(app.ctx, id)

	case "by-staff":
		id, _, err := parseID(rest, "staff")
		if err != nil {
			return err
		}
		return app.console.ListAppointmentsByStaff(app.ctx, id)

	default:
		return fmt.Errorf("unknown appointments action %q", action)
	}
}

func newAppointmentsFlags(action string) *flag.FlagSet {
	return newFlagSet("appointments " + action)
}

func appointmentParams(fs *flag.FlagSet, rest []string) (api.AppointmentParams, error) {
	customer := fs.Int64("customer", 0, "customer id")
	service := fs.Int64("service", 0, "service id")
	staff := fs.Int64("staff", 0, "staff id")
	date := fs.String("date", "", "appointment date/time")
	status := fs.String("set-status", "", "status to set")
	if err := fs.Parse(rest); err != nil {
		return api.AppointmentParams{}, err
	}
	return api.AppointmentParams{
		CustomerID:      int64Arg(fs, "customer", customer),
		ServiceID:       int64Arg(fs, "service", service),
		StaffID:         int64Arg(fs, "staff", staff),
		AppointmentDate: strArg(fs, "date", date),
		Status:          strArg(fs, "set-status", status),
	}, nil
}
