package main

import (
	"flag"
	"fmt"

	"github.com/bookdesk/bookdesk/internal/api"
)

func staffCommand(app *App, args []string) error {
	if len(args) == 0 || wantsHelp(args) {
		return fmt.Errorf("usage: bookdesk staff <list|add|update|delete|schedules|add-schedule>")
	}
	action, rest := args[0], args[1:]

	switch action {
	case "list":
		return app.console.ListStaff(app.ctx)

	case "add":
		fs := newFlagSet("staff add")
		params, err := staffParams(fs, rest)
		if err != nil {
			return err
		}
		return app.console.AddStaff(app.ctx, params)

	case "update":
		id, rest, err := parseID(rest, "staff")
		if err != nil {
			return err
		}
		fs := newFlagSet("staff update")
		params, err := staffParams(fs, rest)
		if err != nil {
			return err
		}
		return app.console.UpdateStaff(app.ctx, id, params)

	case "delete":
		id, _, err := parseID(rest, "staff")
		if err != nil {
			return err
		}
		return app.console.DeleteStaff(app.ctx, id)

	case "schedules":
		id, _, err := parseID(rest, "staff")
		if err != nil {
			return err
		}
		return app.console.ListStaffSchedules(app.ctx, id)

	case "add-schedule":
		id, rest, err := parseID(rest, "staff")
		if err != nil {
			return err
		}
		fs := newFlagSet("staff add-schedule")
		day := fs.String("day", "", "day of week (Monday..Sunday)")
		start := fs.String("start", "", "start time, e.g. 09:00")
		end := fs.String("end", "", "end time, e.g. 17:00")
		available := fs.Bool("available", true, "whether the window is available")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return app.console.AddStaffSchedule(app.ctx, id, api.ScheduleParams{
			DayOfWeek:   strArg(fs, "day", day),
			StartTime:   strArg(fs, "start", start),
			EndTime:     strArg(fs, "end", end),
			IsAvailable: boolArg(fs, "available", available),
		})

	default:
		return fmt.Errorf("unknown staff action %q", action)
	}
}

func staffParams(fs *flag.FlagSet, rest []string) (api.StaffParams, error) {
	name := fs.String("name", "", "staff name")
	role := fs.String("role", "", "staff role")
	if err := fs.Parse(rest); err != nil {
		return api.StaffParams{}, err
	}
	return api.StaffParams{
		Name: strArg(fs, "name", name),
		Role: strArg(fs, "role", role),
	}, nil
}
