package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/bookdesk/bookdesk/internal/config"
	"github.com/bookdesk/bookdesk/internal/console"
	"github.com/bookdesk/bookdesk/internal/session"
)

// App bundles everything a command needs.
type App struct {
	ctx     context.Context
	cfg     config.Config
	logger  *slog.Logger
	console *console.Console
	poller  *console.HealthPoller
	tokens  *session.TokenFile
}

// Command is one CLI verb.
type Command struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Run         func(app *App, args []string) error
}

func (c *Command) NewFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(c.Name, flag.ExitOnError)
	fs.Usage = func() { c.PrintUsage() }
	return fs
}

func (c *Command) PrintUsage() {
	fmt.Fprintf(os.Stderr, "%s\n\n", c.Description)
	fmt.Fprintf(os.Stderr, "USAGE:\n    %s\n\n", c.Usage)
	if len(c.Examples) > 0 {
		fmt.Fprintf(os.Stderr, "EXAMPLES:\n")
		for _, example := range c.Examples {
			fmt.Fprintf(os.Stderr, "    %s\n", example)
		}
	}
}

type CommandRegistry struct {
	commands map[string]*Command
	app      *App
	version  string
}

func NewCommandRegistry(app *App, version string) *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]*Command),
		app:      app,
		version:  version,
	}
}

func (r *CommandRegistry) Register(c *Command) {
	r.commands[c.Name] = c
}

func (r *CommandRegistry) Execute(args []string) error {
	if len(args) == 0 {
		r.PrintUsage()
		return nil
	}

	switch args[0] {
	case "help", "-h", "--help":
		r.PrintUsage()
		return nil
	case "version", "--version":
		fmt.Printf("bookdesk %s\n", r.version)
		return nil
	}

	cmd, ok := r.commands[args[0]]
	if !ok {
		r.PrintUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
	return cmd.Run(r.app, args[1:])
}

func (r *CommandRegistry) PrintUsage() {
	fmt.Fprintf(os.Stderr, "bookdesk - operator console for the booking API\n\n")
	fmt.Fprintf(os.Stderr, "USAGE:\n    bookdesk <command> [arguments]\n\nCOMMANDS:\n")
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "    %-14s%s\n", name, r.commands[name].Description)
	}
	fmt.Fprintf(os.Stderr, "\nRun 'bookdesk <command> help' for command details.\n")
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ExitOnError)
}

// wantsHelp reports whether the user asked for usage of a subcommand.
func wantsHelp(args []string) bool {
	return len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help")
}

func parseID(args []string, what string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%s id required", what)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid %s id %q", what, args[0])
	}
	return id, args[1:], nil
}

// changed reports whether a flag was explicitly set, so unset flags become
// omitted fields rather than zero values.
func changed(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func strArg(fs *flag.FlagSet, name string, v *string) *string {
	if changed(fs, name) {
		return v
	}
	return nil
}

func intArg(fs *flag.FlagSet, name string, v *int) *int {
	if changed(fs, name) {
		return v
	}
	return nil
}

func int64Arg(fs *flag.FlagSet, name string, v *int64) *int64 {
	if changed(fs, name) {
		return v
	}
	return nil
}

func boolArg(fs *flag.FlagSet, name string, v *bool) *bool {
	if changed(fs, name) {
		return v
	}
	return nil
}
