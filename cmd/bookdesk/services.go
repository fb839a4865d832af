package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/shopspring/decimal"
)

func servicesCommand(app *App, args []string) error {
	if len(args) == 0 || wantsHelp(args) {
		return fmt.Errorf("usage: bookdesk services <list|add|update|delete|by-duration>")
	}
	action, rest := args[0], args[1:]

	switch action {
	case "list":
		return app.console.ListServices(app.ctx)

	case "add":
		fs := newFlagSet("services add")
		params, err := serviceParams(fs, rest)
		if err != nil {
			return err
		}
		return app.console.AddService(app.ctx, params)

	case "update":
		id, rest, err := parseID(rest, "service")
		if err != nil {
			return err
		}
		fs := newFlagSet("services update")
		params, err := serviceParams(fs, rest)
		if err != nil {
			return err
		}
		return app.console.UpdateService(app.ctx, id, params)

	case "delete":
		id, _, err := parseID(rest, "service")
		if err != nil {
			return err
		}
		return app.console.DeleteService(app.ctx, id)

	case "by-duration":
		if len(rest) == 0 {
			return fmt.Errorf("usage: bookdesk services by-duration <minutes>")
		}
		minutes, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("invalid duration %q", rest[0])
		}
		return app.console.ListServicesByDuration(app.ctx, minutes)

	default:
		return fmt.Errorf("unknown services action %q", action)
	}
}

func serviceParams(fs *flag.FlagSet, rest []string) (api.ServiceParams, error) {
	name := fs.String("name", "", "service name")
	description := fs.String("description", "", "description")
	duration := fs.Int("duration", 0, "duration in minutes")
	price := fs.String("price", "", "price, e.g. 25.00")
	if err := fs.Parse(rest); err != nil {
		return api.ServiceParams{}, err
	}

	params := api.ServiceParams{
		ServiceName: strArg(fs, "name", name),
		Description: strArg(fs, "description", description),
		Duration:    intArg(fs, "duration", duration),
	}
	if changed(fs, "price") {
		d, err := decimal.NewFromString(*price)
		if err != nil {
			return api.ServiceParams{}, fmt.Errorf("invalid price %q: %w", *price, err)
		}
		params.Price = &d
	}
	return params, nil
}
