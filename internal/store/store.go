// Package store mirrors the API's collections in memory so the console can
// render without a round trip per keystroke. The server is always the source
// of truth: every mutation goes out over the wire first and the local copy is
// reconciled from the response. Last response wins; there is no conflict
// resolution and no history.
package store

import (
	"log/slog"
	"slices"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
)

// Status is the loading/error pair tracked per entity family.
type Status struct {
	Loading bool
	Err     string
}

type flags struct {
	loading bool
	err     string
}

// Store is constructed once at startup and handed to the console layer.
// All access is mutex-guarded; snapshot accessors return copies.
type Store struct {
	client *api.Client
	logger *slog.Logger
	tracer trace.Tracer

	mu sync.Mutex

	appointments      []model.Appointment
	appointmentsFlags flags

	services      []model.Service
	servicesFlags flags

	staff      []model.Staff
	staffFlags flags

	customers      []model.Customer
	customersFlags flags

	// Slots and the voice-call health check share one loading/error pair;
	// their network calls live in the console controllers.
	slots    []model.Slot
	callLogs []model.CallLog
	shared   flags
}

func New(client *api.Client, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client: client,
		logger: logger,
		tracer: otel.Tracer("bookdesk/store"),
	}
}

func (s *Store) begin(f *flags) {
	s.mu.Lock()
	f.loading = true
	f.err = ""
	s.mu.Unlock()
}

func (s *Store) end(f *flags) {
	s.mu.Lock()
	f.loading = false
	s.mu.Unlock()
}

func (s *Store) fail(f *flags, err error) {
	s.mu.Lock()
	f.err = err.Error()
	s.mu.Unlock()
}

// Shared pair, used by the slots and voice-call controllers.

func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	s.shared.loading = v
	s.mu.Unlock()
}

// SetError records msg in the shared error slot; "" clears it.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	s.shared.err = msg
	s.mu.Unlock()
}

func (s *Store) SharedStatus() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{Loading: s.shared.loading, Err: s.shared.err}
}

// Slots are reconciled by their controller; the store only holds the result.

func (s *Store) Slots() []model.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.slots)
}

func (s *Store) SetSlots(slots []model.Slot) {
	if slots == nil {
		slots = []model.Slot{}
	}
	s.mu.Lock()
	s.slots = slots
	s.mu.Unlock()
}

func (s *Store) AddSlot(slot model.Slot) {
	s.mu.Lock()
	s.slots = append(s.slots, slot)
	s.mu.Unlock()
}

// UpsertSlot replaces the slot with the same id in place. Unknown ids are a
// no-op; the next full fetch will pick the slot up.
func (s *Store) UpsertSlot(id int64, slot model.Slot) {
	s.mu.Lock()
	s.slots = upsertByID(s.slots, id, slotID, slot)
	s.mu.Unlock()
}

func (s *Store) RemoveSlot(id int64) {
	s.mu.Lock()
	s.slots = removeByID(s.slots, id, slotID)
	s.mu.Unlock()
}

// Call logs are append-only, server-authored records; newest first.

func (s *Store) CallLogs() []model.CallLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.callLogs)
}

func (s *Store) SetCallLogs(logs []model.CallLog) {
	if logs == nil {
		logs = []model.CallLog{}
	}
	s.mu.Lock()
	s.callLogs = logs
	s.mu.Unlock()
}

func (s *Store) AddCallLog(log model.CallLog) {
	s.mu.Lock()
	s.callLogs = append([]model.CallLog{log}, s.callLogs...)
	s.mu.Unlock()
}

func slotID(s model.Slot) int64               { return s.SlotID }
func appointmentID(a model.Appointment) int64 { return a.AppointmentID }
func serviceID(s model.Service) int64         { return s.ServiceID }
func staffID(s model.Staff) int64             { return s.StaffID }
func customerID(c model.Customer) int64       { return c.CustomerID }

// upsertByID replaces the element whose id matches, preserving order. An
// unknown id is a documented no-op (the caller never inserts here).
func upsertByID[T any](list []T, id int64, idOf func(T) int64, v T) []T {
	for i := range list {
		if idOf(list[i]) == id {
			list[i] = v
			return list
		}
	}
	return list
}

// removeByID filters the element out, preserving the order of the rest.
// Removing an unknown id leaves the list unchanged.
func removeByID[T any](list []T, id int64, idOf func(T) int64) []T {
	out := make([]T, 0, len(list))
	for _, e := range list {
		if idOf(e) != id {
			out = append(out, e)
		}
	}
	return out
}

func findByID[T any](list []T, id int64, idOf func(T) int64) (T, bool) {
	for _, e := range list {
		if idOf(e) == id {
			return e, true
		}
	}
	var zero T
	return zero, false
}
