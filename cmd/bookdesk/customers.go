package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bookdesk/bookdesk/internal/api"
)

func customersCommand(app *App, args []string) error {
	if len(args) == 0 || wantsHelp(args) {
		return fmt.Errorf("usage: bookdesk customers <list|search|add|update|delete>")
	}
	action, rest := args[0], args[1:]

	switch action {
	case "list":
		fs := newFlagSet("customers list")
		query := fs.String("query", "", "local substring filter on name/phone/email")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return app.console.ListCustomers(app.ctx, *query)

	case "search":
		if len(rest) == 0 {
			return fmt.Errorf("usage: bookdesk customers search <query>")
		}
		return app.console.SearchCustomers(app.ctx, strings.Join(rest, " "))

	case "add":
		fs := newFlagSet("customers add")
		params, err := customerParams(fs, rest)
		if err != nil {
			return err
		}
		return app.console.AddCustomer(app.ctx, params)

	case "update":
		id, rest, err := parseID(rest, "customer")
		if err != nil {
			return err
		}
		fs := newFlagSet("customers update")
		params, err := customerParams(fs, rest)
		if err != nil {
			return err
		}
		return app.console.UpdateCustomer(app.ctx, id, params)

	case "delete":
		id, _, err := parseID(rest, "customer")
		if err != nil {
			return err
		}
		return app.console.DeleteCustomer(app.ctx, id)

	default:
		return fmt.Errorf("unknown customers action %q", action)
	}
}

func customerParams(fs *flag.FlagSet, rest []string) (api.CustomerParams, error) {
	name := fs.String("name", "", "customer name")
	phone := fs.String("phone", "", "phone number")
	email := fs.String("email", "", "email address")
	if err := fs.Parse(rest); err != nil {
		return api.CustomerParams{}, err
	}
	return api.CustomerParams{
		Name:        strArg(fs, "name", name),
		PhoneNumber: strArg(fs, "phone", phone),
		Email:       strArg(fs, "email", email),
	}, nil
}
