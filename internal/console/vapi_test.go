package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/store"
)

func newTestConsole(t *testing.T, handler http.Handler) (*Console, *api.Client, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.NewClient(srv.URL, api.StaticToken(""), logger, api.Options{})
	st := store.New(client, logger)
	var out bytes.Buffer
	return New(st, client, logger, &out), client, &out
}

func TestHealthPoller_ConnectedOnOK(t *testing.T) {
	con, client, _ := newTestConsole(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))

	p := NewHealthPoller(client, con.Store(), time.Minute)
	p.Check(context.Background())
	if !p.Connected() {
		t.Fatal("expected connected after ok response")
	}
	if st := con.Store().SharedStatus(); st.Err != "" {
		t.Fatalf("expected cleared shared error, got %q", st.Err)
	}
}

func TestHealthPoller_DisconnectedOnFailure(t *testing.T) {
	con, client, _ := newTestConsole(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))

	p := NewHealthPoller(client, con.Store(), time.Minute)
	p.Check(context.Background())
	if p.Connected() {
		t.Fatal("expected disconnected after failure")
	}
	if st := con.Store().SharedStatus(); st.Err == "" {
		t.Fatal("expected shared error to be recorded")
	}
}

func TestHealthPoller_DisconnectedOnNonOKStatusBody(t *testing.T) {
	con, client, _ := newTestConsole(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"degraded"}`))
	}))

	p := NewHealthPoller(client, con.Store(), time.Minute)
	p.Check(context.Background())
	if p.Connected() {
		t.Fatal(`anything but {"status":"ok"} counts as down`)
	}
}

func TestHealthPoller_CancelledProbeIsDropped(t *testing.T) {
	release := make(chan struct{})
	con, client, _ := newTestConsole(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))

	p := NewHealthPoller(client, con.Store(), time.Minute)
	p.setConnected(true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Check(ctx)
	}()

	// Cancel while the probe is in flight, then let the handler finish.
	time.Sleep(20 * time.Millisecond)
	cancel()
	close(release)
	<-done

	// The cancelled probe must not have flipped the flag to disconnected.
	if !p.Connected() {
		t.Fatal("late result of a cancelled probe must be dropped")
	}
}

func TestHealthPoller_RunStopsOnCancel(t *testing.T) {
	var calls atomic.Int64
	con, client, _ := newTestConsole(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))

	p := NewHealthPoller(client, con.Store(), 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on cancellation")
	}

	if calls.Load() < 2 {
		t.Fatalf("expected repeated probes, got %d", calls.Load())
	}
	settled := calls.Load()
	time.Sleep(30 * time.Millisecond)
	if calls.Load() != settled {
		t.Fatal("probes continued after cancellation")
	}
}
