package console

import (
	"testing"

	"github.com/bookdesk/bookdesk/internal/model"
)

func TestFilterAppointmentsByStatus(t *testing.T) {
	list := []model.Appointment{
		{AppointmentID: 1, Status: model.StatusPending},
		{AppointmentID: 2, Status: model.StatusConfirmed},
		{AppointmentID: 3, Status: model.StatusPending},
	}

	got := FilterAppointmentsByStatus(list, model.StatusPending)
	if len(got) != 2 || got[0].AppointmentID != 1 || got[1].AppointmentID != 3 {
		t.Fatalf("expected pending [1 3], got %+v", got)
	}

	if got := FilterAppointmentsByStatus(list, ""); len(got) != 3 {
		t.Fatalf("empty filter must keep all, got %d", len(got))
	}
	if got := FilterAppointmentsByStatus(list, "all"); len(got) != 3 {
		t.Fatalf("'all' must keep all, got %d", len(got))
	}
	if got := FilterAppointmentsByStatus(list, model.StatusCompleted); len(got) != 0 {
		t.Fatalf("expected no completed, got %+v", got)
	}
}

func TestFilterSlots(t *testing.T) {
	list := []model.Slot{
		{SlotID: 1, StaffID: 10, Date: "2026-09-01", IsBooked: false},
		{SlotID: 2, StaffID: 11, Date: "2026-09-01", IsBooked: true},
		{SlotID: 3, StaffID: 10, Date: "2026-09-02", IsBooked: true},
	}

	got := FilterSlots(list, SlotFilter{StaffID: 10})
	if len(got) != 2 || got[0].SlotID != 1 || got[1].SlotID != 3 {
		t.Fatalf("staff filter: expected [1 3], got %+v", got)
	}

	got = FilterSlots(list, SlotFilter{DatePrefix: "2026-09-01"})
	if len(got) != 2 || got[0].SlotID != 1 || got[1].SlotID != 2 {
		t.Fatalf("date filter: expected [1 2], got %+v", got)
	}

	got = FilterSlots(list, SlotFilter{StaffID: 10, OnlyFree: true})
	if len(got) != 1 || got[0].SlotID != 1 {
		t.Fatalf("free filter: expected [1], got %+v", got)
	}

	got = FilterSlots(list, SlotFilter{OnlyBooked: true})
	if len(got) != 2 {
		t.Fatalf("booked filter: expected 2, got %+v", got)
	}
}

func TestFilterCallLogs_StatusCaseInsensitive(t *testing.T) {
	list := []model.CallLog{
		{CallLogID: 1, CallID: "call-a", Status: "completed"},
		{CallLogID: 2, CallID: "call-b", Status: "failed"},
		{CallLogID: 3, CallID: "call-c", Status: "in-progress"},
	}

	got := FilterCallLogs(list, CallLogFilter{Status: "failed"})
	if len(got) != 1 || got[0].CallLogID != 2 {
		t.Fatalf("expected only the failed entry, got %+v", got)
	}

	// Server vocabulary is free-form; "Completed" and "completed" must match.
	got = FilterCallLogs(list, CallLogFilter{Status: "Completed"})
	if len(got) != 1 || got[0].CallLogID != 1 {
		t.Fatalf("expected case-insensitive status match, got %+v", got)
	}

	got = FilterCallLogs(list, CallLogFilter{Status: "all"})
	if len(got) != 3 {
		t.Fatalf("'all' must keep everything, got %d", len(got))
	}

	// Status filter applies regardless of the free-text query.
	got = FilterCallLogs(list, CallLogFilter{Status: "failed", Query: "call"})
	if len(got) != 1 || got[0].CallLogID != 2 {
		t.Fatalf("status+query: expected only failed, got %+v", got)
	}
}

func TestFilterCallLogs_Query(t *testing.T) {
	list := []model.CallLog{
		{CallLogID: 1, CallID: "CALL-100", PhoneNumber: "+15550100", Status: "completed"},
		{CallLogID: 2, CallID: "call-200", Transcript: "Please reschedule my haircut", Status: "completed"},
	}

	if got := FilterCallLogs(list, CallLogFilter{Query: "call-1"}); len(got) != 1 || got[0].CallLogID != 1 {
		t.Fatalf("call id match should be case-insensitive, got %+v", got)
	}
	if got := FilterCallLogs(list, CallLogFilter{Query: "+1555"}); len(got) != 1 || got[0].CallLogID != 1 {
		t.Fatalf("phone match failed, got %+v", got)
	}
	if got := FilterCallLogs(list, CallLogFilter{Query: "RESCHEDULE"}); len(got) != 1 || got[0].CallLogID != 2 {
		t.Fatalf("transcript match should be case-insensitive, got %+v", got)
	}
	if got := FilterCallLogs(list, CallLogFilter{Query: "nothing"}); len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestSearchCustomersLocal(t *testing.T) {
	list := []model.Customer{
		{CustomerID: 1, Name: "Jane Fox", PhoneNumber: "+15550100", Email: "jane@example.com"},
		{CustomerID: 2, Name: "Omar", Email: "omar@example.com"},
	}

	if got := SearchCustomersLocal(list, "jane"); len(got) != 1 || got[0].CustomerID != 1 {
		t.Fatalf("name search failed, got %+v", got)
	}
	if got := SearchCustomersLocal(list, "+15550"); len(got) != 1 || got[0].CustomerID != 1 {
		t.Fatalf("phone search failed, got %+v", got)
	}
	if got := SearchCustomersLocal(list, "EXAMPLE.COM"); len(got) != 2 {
		t.Fatalf("email search should match both, got %+v", got)
	}
	if got := SearchCustomersLocal(list, ""); len(got) != 2 {
		t.Fatalf("empty query keeps all, got %+v", got)
	}
}
