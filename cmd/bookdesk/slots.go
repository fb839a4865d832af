package main

import (
	"flag"
	"fmt"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/console"
)

func slotsCommand(app *App, args []string) error {
	if len(args) == 0 || wantsHelp(args) {
		return fmt.Errorf("usage: bookdesk slots <list|available|by-staff|add|update|delete|book|free>")
	}
	action, rest := args[0], args[1:]

	switch action {
	case "list":
		fs := newFlagSet("slots list")
		staff := fs.Int64("staff", 0, "filter by staff id")
		date := fs.String("date", "", "filter by date prefix, e.g. 2026-09-01")
		free := fs.Bool("free", false, "only unbooked slots")
		booked := fs.Bool("booked", false, "only booked slots")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return app.console.ListSlots(app.ctx, console.SlotFilter{
			StaffID:    *staff,
			DatePrefix: *date,
			OnlyFree:   *free,
			OnlyBooked: *booked,
		})

	case "available":
		fs := newFlagSet("slots available")
		staff := fs.Int64("staff", 0, "staff id")
		date := fs.String("date", "", "date")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return app.console.ListAvailableSlots(app.ctx, api.AvailableFilter{
			StaffID: *staff,
			Date:    *date,
		})

	case "by-staff":
		id, _, err := parseID(rest, "staff")
		if err != nil {
			return err
		}
		return app.console.ListSlotsByStaff(app.ctx, id)

	case "add":
		fs := newFlagSet("slots add")
		params, err := slotParams(fs, rest)
		if err != nil {
			return err
		}
		return app.console.CreateSlot(app.ctx, params)

	case "update":
		id, rest, err := parseID(rest, "slot")
		if err != nil {
			return err
		}
		fs := newFlagSet("slots update")
		params, err := slotParams(fs, rest)
		if err != nil {
			return err
		}
		return app.console.UpdateSlot(app.ctx, id, params)

	case "delete":
		id, _, err := parseID(rest, "slot")
		if err != nil {
			return err
		}
		return app.console.DeleteSlot(app.ctx, id)

	case "book":
		id, _, err := parseID(rest, "slot")
		if err != nil {
			return err
		}
		return app.console.BookSlot(app.ctx, id)

	case "free":
		id, _, err := parseID(rest, "slot")
		if err != nil {
			return err
		}
		return app.console.FreeSlot(app.ctx, id)

	default:
		return fmt.Errorf("unknown slots action %q", action)
	}
}

func slotParams(fs *flag.FlagSet, rest []string) (api.SlotParams, error) {
	staff := fs.Int64("staff", 0, "staff id")
	date := fs.String("date", "", "date, e.g. 2026-09-01")
	start := fs.String("start", "", "start time, e.g. 10:00")
	end := fs.String("end", "", "end time, e.g. 10:30")
	if err := fs.Parse(rest); err != nil {
		return api.SlotParams{}, err
	}
	return api.SlotParams{
		StaffID:   int64Arg(fs, "staff", staff),
		Date:      strArg(fs, "date", date),
		StartTime: strArg(fs, "start", start),
		EndTime:   strArg(fs, "end", end),
	}, nil
}
