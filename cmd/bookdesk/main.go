package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/config"
	"github.com/bookdesk/bookdesk/internal/console"
	"github.com/bookdesk/bookdesk/internal/otelx"
	"github.com/bookdesk/bookdesk/internal/runtime"
	"github.com/bookdesk/bookdesk/internal/session"
	"github.com/bookdesk/bookdesk/internal/store"
)

// Version information (set via ldflags during build)
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := runtime.NewLogger("bookdesk")

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv("bookdesk"))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	tokens := session.NewTokenFile(cfg.TokenPath)
	client := api.NewClient(cfg.APIBaseURL, tokens, logger, api.Options{
		Timeout: cfg.RequestTimeout,
	})
	st := store.New(client, logger)
	con := console.New(st, client, logger, os.Stdout)
	poller := console.NewHealthPoller(client, st, cfg.HealthPollInterval)

	app := &App{
		ctx:     ctx,
		cfg:     cfg,
		logger:  logger,
		console: con,
		poller:  poller,
		tokens:  tokens,
	}

	registry := NewCommandRegistry(app, version)
	registerCommands(registry)

	return registry.Execute(os.Args[1:])
}

func registerCommands(r *CommandRegistry) {
	r.Register(&Command{
		Name:        "appointments",
		Description: "List and manage appointments",
		Usage:       "bookdesk appointments <list|get|add|update|status|delete|by-customer|by-staff> [flags]",
		Examples: []string{
			"bookdesk appointments list --status CONFIRMED",
			"bookdesk appointments add --customer 1 --service 2 --staff 3 --date 2026-09-01T10:00:00Z",
			"bookdesk appointments status 42 CANCELLED",
			"bookdesk appointments by-staff 3",
		},
		Run: appointmentsCommand,
	})

	r.Register(&Command{
		Name:        "services",
		Description: "List and manage services",
		Usage:       "bookdesk services <list|add|update|delete|by-duration> [flags]",
		Examples: []string{
			"bookdesk services list",
			"bookdesk services add --name Haircut --duration 30 --price 25.00",
			"bookdesk services by-duration 30",
		},
		Run: servicesCommand,
	})

	r.Register(&Command{
		Name:        "staff",
		Description: "List and manage staff and their weekly schedules",
		Usage:       "bookdesk staff <list|add|update|delete|schedules|add-schedule> [flags]",
		Examples: []string{
			"bookdesk staff add --name \"Dana R\" --role stylist",
			"bookdesk staff schedules 3",
			"bookdesk staff add-schedule 3 --day Monday --start 09:00 --end 17:00",
		},
		Run: staffCommand,
	})

	r.Register(&Command{
		Name:        "customers",
		Description: "List, search and manage customers",
		Usage:       "bookdesk customers <list|search|add|update|delete> [flags]",
		Examples: []string{
			"bookdesk customers list --query jane",
			"bookdesk customers search jane",
			"bookdesk customers add --name Jane --phone +15550100",
		},
		Run: customersCommand,
	})

	r.Register(&Command{
		Name:        "slots",
		Description: "List, create, book and free time slots",
		Usage:       "bookdesk slots <list|available|by-staff|add|update|delete|book|free> [flags]",
		Examples: []string{
			"bookdesk slots list --staff 3 --date 2026-09-01",
			"bookdesk slots available --staff 3",
			"bookdesk slots book 7",
		},
		Run: slotsCommand,
	})

	r.Register(&Command{
		Name:        "calls",
		Description: "Inspect voice-call logs",
		Usage:       "bookdesk calls <list|load> [flags]",
		Examples: []string{
			"bookdesk calls load dump.json",
			"bookdesk calls list --status failed --search +1555",
		},
		Run: callsCommand,
	})

	r.Register(&Command{
		Name:        "vapi",
		Description: "Voice-call integration status",
		Usage:       "bookdesk vapi <status|watch>",
		Examples: []string{
			"bookdesk vapi status",
			"bookdesk vapi watch",
		},
		Run: vapiCommand,
	})

	r.Register(&Command{
		Name:        "dashboard",
		Description: "Summary counts across all collections",
		Usage:       "bookdesk dashboard",
		Run:         dashboardCommand,
	})

	r.Register(&Command{
		Name:        "export",
		Description: "Export appointments to an xlsx workbook",
		Usage:       "bookdesk export [--out appointments.xlsx]",
		Run:         exportCommand,
	})

	r.Register(&Command{
		Name:        "login",
		Description: "Save the API bearer token",
		Usage:       "bookdesk login <token> | bookdesk login --stdin",
		Run:         loginCommand,
	})

	r.Register(&Command{
		Name:        "logout",
		Description: "Remove the saved API bearer token",
		Usage:       "bookdesk logout",
		Run:         logoutCommand,
	})

	r.Register(&Command{
		Name:        "whoami",
		Description: "Show the saved session's (unverified) claims",
		Usage:       "bookdesk whoami",
		Run:         whoamiCommand,
	})
}
