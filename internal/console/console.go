// Package console is the presentation layer: per-entity controllers that
// fetch their collection on first use, re-expose store state and mutators,
// filter locally over already-fetched data, and render tables.
package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"text/tabwriter"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/store"
)

type Console struct {
	store  *store.Store
	client *api.Client
	logger *slog.Logger
	out    io.Writer

	appointmentsOnce sync.Once
	servicesOnce     sync.Once
	staffOnce        sync.Once
	customersOnce    sync.Once
	slotsOnce        sync.Once
}

func New(st *store.Store, client *api.Client, logger *slog.Logger, out io.Writer) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{
		store:  st,
		client: client,
		logger: logger,
		out:    out,
	}
}

func (c *Console) Store() *store.Store { return c.store }

func (c *Console) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// renderStatus surfaces the ambient error slot under a rendered list, the
// way the pages showed a persistent error banner.
func (c *Console) renderStatus(st store.Status) {
	if st.Err != "" {
		c.printf("error: %s\n", st.Err)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func ensure(once *sync.Once, ctx context.Context, fetch func(context.Context) error) {
	once.Do(func() {
		// Fetch errors land in the store's error slot; rendering shows them.
		_ = fetch(ctx)
	})
}
