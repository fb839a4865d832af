package store

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
)

func newTestStore(t *testing.T, handler http.Handler) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.NewClient(srv.URL, api.StaticToken(""), logger, api.Options{})
	return New(client, logger)
}

func TestFetchAppointments_ReplacesCollection(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"appointmentId":1,"status":"PENDING"},{"appointmentId":2,"status":"CONFIRMED"}]`))
	}))

	if err := s.FetchAppointments(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	list, st := s.Appointments()
	if len(list) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(list))
	}
	if st.Loading {
		t.Fatal("loading flag should be cleared after fetch")
	}
	if st.Err != "" {
		t.Fatalf("unexpected error state %q", st.Err)
	}
}

func TestFetchAppointments_NonArrayYieldsEmpty(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"not a list"}`))
	}))

	if err := s.FetchAppointments(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	list, st := s.Appointments()
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty collection, got %#v", list)
	}
	if st.Err != "" {
		t.Fatalf("malformed shape must not be an error, got %q", st.Err)
	}
}

func TestFetchAppointments_FailureKeepsPrevious(t *testing.T) {
	fail := false
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[{"appointmentId":1},{"appointmentId":2}]`))
	}))

	if err := s.FetchAppointments(context.Background()); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}

	fail = true
	if err := s.FetchAppointments(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}
	list, st := s.Appointments()
	if len(list) != 2 {
		t.Fatalf("previous collection must be kept on failure, got %d elements", len(list))
	}
	if st.Err == "" {
		t.Fatal("error slot must record the failure")
	}
	if st.Loading {
		t.Fatal("loading flag must be cleared even on failure")
	}
}

func TestAddCustomer_AppendsServerRepresentation(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"customerId":1,"name":"Ada"}]`))
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"customerId":7,"name":"Jane"}`))
		}
	}))

	if err := s.FetchCustomers(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	name := "Jane"
	created, err := s.AddCustomer(context.Background(), api.CustomerParams{Name: &name})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.CustomerID != 7 {
		t.Fatalf("expected server-assigned id 7, got %d", created.CustomerID)
	}
	list, _ := s.Customers()
	if len(list) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(list))
	}
	last := list[len(list)-1]
	if last.CustomerID != 7 || last.Name != "Jane" {
		t.Fatalf("expected appended server representation, got %+v", last)
	}
}

func TestAddCustomer_FailureLeavesCollectionAndPropagates(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"customerId":1,"name":"Ada"}]`))
		case http.MethodPost:
			http.Error(w, "validation failed", http.StatusUnprocessableEntity)
		}
	}))

	if err := s.FetchCustomers(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	name := "Jane"
	if _, err := s.AddCustomer(context.Background(), api.CustomerParams{Name: &name}); err == nil {
		t.Fatal("expected add error to propagate")
	}
	list, st := s.Customers()
	if len(list) != 1 {
		t.Fatalf("failed add must not change the collection, got %d elements", len(list))
	}
	if st.Err == "" {
		t.Fatal("error slot must be recorded on failed add")
	}
}

func TestUpdateService_MergesByID(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[
				{"serviceId":1,"serviceName":"Cut","duration":30,"price":"20"},
				{"serviceId":2,"serviceName":"Color","duration":60,"price":"55"},
				{"serviceId":3,"serviceName":"Blowout","duration":45,"price":"35"}
			]`))
		case http.MethodPut:
			// Partial response: the server only echoes what changed.
			_, _ = w.Write([]byte(`{"serviceId":2,"duration":75}`))
		}
	}))

	if err := s.FetchServices(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	minutes := 75
	updated, err := s.UpdateService(context.Background(), 2, api.ServiceParams{Duration: &minutes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Duration != 75 {
		t.Fatalf("expected merged duration, got %d", updated.Duration)
	}
	if updated.ServiceName != "Color" {
		t.Fatalf("fields absent from the response must keep prior values, got %q", updated.ServiceName)
	}

	list, _ := s.Services()
	if len(list) != 3 {
		t.Fatalf("update must not change collection length, got %d", len(list))
	}
	if list[0].ServiceName != "Cut" || list[2].ServiceName != "Blowout" {
		t.Fatalf("other elements must be untouched, got %+v", list)
	}
	if list[1].Duration != 75 || list[1].ServiceName != "Color" {
		t.Fatalf("expected merged element in place, got %+v", list[1])
	}
}

func TestUpdateAppointment_UnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"appointmentId":1,"status":"PENDING"}]`))
		case http.MethodPut:
			_, _ = w.Write([]byte(`{"appointmentId":999,"status":"CONFIRMED"}`))
		}
	}))

	if err := s.FetchAppointments(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	status := model.StatusConfirmed
	if _, err := s.UpdateAppointment(context.Background(), 999, api.AppointmentParams{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, _ := s.Appointments()
	if len(list) != 1 || list[0].AppointmentID != 1 {
		t.Fatalf("unknown id must not alter the collection, got %+v", list)
	}
}

func TestDeleteAppointment_RemovesPreservingOrder(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"appointmentId":1},{"appointmentId":42},{"appointmentId":99}]`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	if err := s.FetchAppointments(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if err := s.DeleteAppointment(context.Background(), 42); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ := s.Appointments()
	if len(list) != 2 {
		t.Fatalf("expected 2 appointments after delete, got %d", len(list))
	}
	if list[0].AppointmentID != 1 || list[1].AppointmentID != 99 {
		t.Fatalf("expected [1 99] in order, got %+v", list)
	}

	// Deleting an id that is not cached is a no-op locally.
	if err := s.DeleteAppointment(context.Background(), 12345); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	list, _ = s.Appointments()
	if len(list) != 2 {
		t.Fatalf("unknown id delete must keep length, got %d", len(list))
	}
}

func TestDeleteAppointment_FailurePropagatesAndKeepsElement(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"appointmentId":1}]`))
		case http.MethodDelete:
			http.Error(w, "conflict", http.StatusConflict)
		}
	}))

	if err := s.FetchAppointments(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if err := s.DeleteAppointment(context.Background(), 1); err == nil {
		t.Fatal("expected delete error to propagate")
	}
	list, st := s.Appointments()
	if len(list) != 1 {
		t.Fatalf("failed delete must keep the element, got %d", len(list))
	}
	if st.Err == "" {
		t.Fatal("error slot must be recorded on failed delete")
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	var gotPath string
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"appointmentId":5,"status":"PENDING","appointmentDate":"2026-09-01"}]`))
		case http.MethodPatch:
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"appointmentId":5,"status":"CANCELLED"}`))
		}
	}))

	if err := s.FetchAppointments(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	updated, err := s.UpdateAppointmentStatus(context.Background(), 5, model.StatusCancelled)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if gotPath != "/appointments/5/status" {
		t.Fatalf("expected PATCH /appointments/5/status, got %s", gotPath)
	}
	if updated.Status != model.StatusCancelled {
		t.Fatalf("expected CANCELLED, got %q", updated.Status)
	}
	if updated.AppointmentDate != "2026-09-01" {
		t.Fatalf("merge must keep prior fields, got %+v", updated)
	}
}

func TestSlots_LocalMutations(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	s.SetSlots([]model.Slot{
		{SlotID: 1, StaffID: 10},
		{SlotID: 2, StaffID: 10},
	})
	s.AddSlot(model.Slot{SlotID: 3, StaffID: 11})
	if got := s.Slots(); len(got) != 3 || got[2].SlotID != 3 {
		t.Fatalf("expected appended slot, got %+v", got)
	}

	s.UpsertSlot(2, model.Slot{SlotID: 2, StaffID: 10, IsBooked: true})
	got := s.Slots()
	if !got[1].IsBooked {
		t.Fatalf("expected slot 2 booked, got %+v", got[1])
	}
	if got[0].IsBooked || got[2].IsBooked {
		t.Fatalf("other slots must be unchanged, got %+v", got)
	}

	// Unknown id: no insert, no panic.
	s.UpsertSlot(77, model.Slot{SlotID: 77})
	if got := s.Slots(); len(got) != 3 {
		t.Fatalf("upsert of unknown id must not insert, got %d slots", len(got))
	}

	s.RemoveSlot(1)
	got = s.Slots()
	if len(got) != 2 || got[0].SlotID != 2 || got[1].SlotID != 3 {
		t.Fatalf("expected [2 3] after remove, got %+v", got)
	}
}

func TestCallLogs_PrependNewestFirst(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	s.SetCallLogs([]model.CallLog{{CallLogID: 1, CallID: "a"}})
	s.AddCallLog(model.CallLog{CallLogID: 2, CallID: "b"})
	got := s.CallLogs()
	if len(got) != 2 {
		t.Fatalf("expected 2 call logs, got %d", len(got))
	}
	if got[0].CallLogID != 2 || got[1].CallLogID != 1 {
		t.Fatalf("expected newest first, got %+v", got)
	}
}

func TestSharedStatus(t *testing.T) {
	s := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	s.SetLoading(true)
	s.SetError("vapi unreachable")
	st := s.SharedStatus()
	if !st.Loading || st.Err != "vapi unreachable" {
		t.Fatalf("unexpected shared status %+v", st)
	}
	s.SetLoading(false)
	s.SetError("")
	st = s.SharedStatus()
	if st.Loading || st.Err != "" {
		t.Fatalf("expected cleared shared status, got %+v", st)
	}
}
