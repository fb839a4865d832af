package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bookdesk/bookdesk/internal/console"
	"github.com/bookdesk/bookdesk/internal/session"
)

func callsCommand(app *App, args []string) error {
	if len(args) == 0 || wantsHelp(args) {
		return fmt.Errorf("usage: bookdesk calls <list|load>")
	}
	action, rest := args[0], args[1:]

	switch action {
	case "list":
		fs := newFlagSet("calls list")
		status := fs.String("status", "all", "filter by call status (case-insensitive)")
		search := fs.String("search", "", "substring filter over call id, phone, transcript")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return app.console.ListCallLogs(console.CallLogFilter{
			Status: *status,
			Query:  *search,
		})

	case "load":
		if len(rest) == 0 {
			return fmt.Errorf("usage: bookdesk calls load <file.json>")
		}
		if err := app.console.LoadCallLogs(rest[0]); err != nil {
			return err
		}
		return app.console.ListCallLogs(console.CallLogFilter{})

	default:
		return fmt.Errorf("unknown calls action %q", action)
	}
}

func vapiCommand(app *App, args []string) error {
	if len(args) == 0 || wantsHelp(args) {
		return fmt.Errorf("usage: bookdesk vapi <status|watch>")
	}
	switch args[0] {
	case "status":
		return app.console.VapiStatus(app.ctx, app.poller)
	case "watch":
		app.logger.Info("watching vapi health", "interval", app.cfg.HealthPollInterval)
		return app.console.WatchVapi(app.ctx, app.poller)
	default:
		return fmt.Errorf("unknown vapi action %q", args[0])
	}
}

func dashboardCommand(app *App, args []string) error {
	if wantsHelp(args) {
		return fmt.Errorf("usage: bookdesk dashboard")
	}
	return app.console.Dashboard(app.ctx, app.poller)
}

func exportCommand(app *App, args []string) error {
	fs := newFlagSet("export")
	out := fs.String("out", "appointments.xlsx", "output path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return app.console.ExportAppointments(app.ctx, *out)
}

func loginCommand(app *App, args []string) error {
	fs := newFlagSet("login")
	stdin := fs.Bool("stdin", false, "read the token from stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var token string
	if *stdin {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			token = strings.TrimSpace(scanner.Text())
		}
	} else if fs.NArg() > 0 {
		token = fs.Arg(0)
	}
	if token == "" {
		return fmt.Errorf("usage: bookdesk login <token> | bookdesk login --stdin")
	}

	if err := app.tokens.Save(token); err != nil {
		return err
	}
	fmt.Println("token saved")
	return nil
}

func logoutCommand(app *App, _ []string) error {
	if err := app.tokens.Clear(); err != nil {
		return err
	}
	fmt.Println("token removed")
	return nil
}

func whoamiCommand(app *App, _ []string) error {
	claims, err := app.tokens.Inspect()
	if err != nil {
		if errors.Is(err, session.ErrNoToken) {
			fmt.Println("not logged in")
			return nil
		}
		return err
	}
	if claims.Email != "" {
		fmt.Printf("email:   %s\n", claims.Email)
	}
	if claims.Subject != "" {
		fmt.Printf("subject: %s\n", claims.Subject)
	}
	if !claims.IssuedAt.IsZero() {
		fmt.Printf("issued:  %s\n", claims.IssuedAt.Format(time.RFC3339))
	}
	if !claims.ExpiresAt.IsZero() {
		fmt.Printf("expires: %s\n", claims.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}
