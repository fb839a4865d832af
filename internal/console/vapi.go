package console

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
	"github.com/bookdesk/bookdesk/internal/store"
)

// HealthPoller probes the voice-call integration's health endpoint on an
// interval and keeps a connected/disconnected flag. Cancelling the poller's
// context aborts any in-flight probe, and a probe that was cancelled
// mid-flight never touches the flag.
type HealthPoller struct {
	vapi     api.VapiAPI
	store    *store.Store
	interval time.Duration

	mu          sync.Mutex
	connected   bool
	lastChecked time.Time
}

func NewHealthPoller(client *api.Client, st *store.Store, interval time.Duration) *HealthPoller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &HealthPoller{
		vapi:     client.Vapi(),
		store:    st,
		interval: interval,
	}
}

// Run probes once immediately, then on every tick until ctx is cancelled.
func (p *HealthPoller) Run(ctx context.Context) {
	p.Check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}

// Check performs a single probe. The probe inherits ctx, so cancelling the
// poller cancels the request itself; a result arriving after cancellation is
// dropped.
func (p *HealthPoller) Check(ctx context.Context) {
	p.store.SetLoading(true)
	defer p.store.SetLoading(false)

	ok, err := p.vapi.Health(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		p.setConnected(false)
		p.store.SetError(err.Error())
		return
	}
	p.setConnected(ok)
	p.store.SetError("")
}

func (p *HealthPoller) setConnected(v bool) {
	p.mu.Lock()
	p.connected = v
	p.lastChecked = time.Now()
	p.mu.Unlock()
}

func (p *HealthPoller) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connected
}

func (p *HealthPoller) LastChecked() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastChecked
}

// VapiStatus renders the current connectivity of the voice-call integration
// from a one-shot probe.
func (c *Console) VapiStatus(ctx context.Context, poller *HealthPoller) error {
	poller.Check(ctx)
	if poller.Connected() {
		c.printf("vapi: connected\n")
	} else {
		c.printf("vapi: disconnected\n")
	}
	c.renderStatus(c.store.SharedStatus())
	return nil
}

// WatchVapi keeps the poller running and prints every status flip until the
// context is cancelled.
func (c *Console) WatchVapi(ctx context.Context, poller *HealthPoller) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		poller.Run(ctx)
	}()

	last := ""
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			<-done
			return nil
		case <-ticker.C:
			state := "disconnected"
			if poller.Connected() {
				state = "connected"
			}
			if state != last {
				c.printf("%s vapi: %s\n", time.Now().Format(time.RFC3339), state)
				last = state
			}
		}
	}
}

// ListCallLogs renders the store's call logs, filtered locally. Call logs
// are append-only and server-authored; the console never mutates them.
func (c *Console) ListCallLogs(filter CallLogFilter) error {
	list := FilterCallLogs(c.store.CallLogs(), filter)
	w := c.table()
	fmt.Fprintln(w, "ID\tCALL\tPHONE\tSTATUS\tCOST\tAPPT")
	for _, l := range list {
		cost := "-"
		if l.Cost != nil {
			cost = l.Cost.StringFixed(2)
		}
		appt := "-"
		if l.AppointmentID != 0 {
			appt = fmt.Sprintf("%d", l.AppointmentID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			l.CallLogID, l.CallID, orDash(l.PhoneNumber), l.Status, cost, appt)
	}
	w.Flush()
	c.printf("%d call log(s)\n", len(list))
	return nil
}

// LoadCallLogs reads a JSON array of call logs (e.g. a webhook dump) into
// the store, replacing the current set.
func (c *Console) LoadCallLogs(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read call logs: %w", err)
	}
	var logs []model.CallLog
	if err := json.Unmarshal(raw, &logs); err != nil {
		return fmt.Errorf("decode call logs: %w", err)
	}
	c.store.SetCallLogs(logs)
	c.printf("loaded %d call log(s)\n", len(logs))
	return nil
}
