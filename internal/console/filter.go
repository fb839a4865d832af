package console

import (
	"strconv"
	"strings"

	"github.com/bookdesk/bookdesk/internal/model"
)

// Local, synchronous filters over already-fetched collections. The server is
// never consulted here.

// FilterAppointmentsByStatus keeps appointments whose status equals status.
// Empty or "all" keeps everything.
func FilterAppointmentsByStatus(list []model.Appointment, status string) []model.Appointment {
	if status == "" || strings.EqualFold(status, "all") {
		return list
	}
	out := make([]model.Appointment, 0, len(list))
	for _, a := range list {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

type SlotFilter struct {
	StaffID    int64  // 0 matches any staff
	DatePrefix string // "" matches any date; otherwise prefix match on the date string
	OnlyFree   bool
	OnlyBooked bool
}

func FilterSlots(list []model.Slot, f SlotFilter) []model.Slot {
	out := make([]model.Slot, 0, len(list))
	for _, s := range list {
		if f.StaffID != 0 && s.StaffID != f.StaffID {
			continue
		}
		if f.DatePrefix != "" && !strings.HasPrefix(s.Date, f.DatePrefix) {
			continue
		}
		if f.OnlyFree && s.IsBooked {
			continue
		}
		if f.OnlyBooked && !s.IsBooked {
			continue
		}
		out = append(out, s)
	}
	return out
}

type CallLogFilter struct {
	Status string // "" or "all" matches any; comparison is case-insensitive
	Query  string // substring over call id, phone number, transcript
}

func FilterCallLogs(list []model.CallLog, f CallLogFilter) []model.CallLog {
	out := make([]model.CallLog, 0, len(list))
	for _, l := range list {
		if !matchesCallStatus(l, f.Status) {
			continue
		}
		if !matchesCallQuery(l, f.Query) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesCallStatus(l model.CallLog, status string) bool {
	if status == "" || strings.EqualFold(status, "all") {
		return true
	}
	return strings.EqualFold(l.Status, status)
}

func matchesCallQuery(l model.CallLog, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(l.CallID), q) {
		return true
	}
	if l.PhoneNumber != "" && strings.Contains(l.PhoneNumber, query) {
		return true
	}
	if l.Transcript != "" && strings.Contains(strings.ToLower(l.Transcript), q) {
		return true
	}
	if l.AppointmentID != 0 && strings.Contains(strconv.FormatInt(l.AppointmentID, 10), query) {
		return true
	}
	return false
}

// SearchCustomersLocal is the client-side search over the fetched list;
// the /customers/search endpoint is the server-side variant.
func SearchCustomersLocal(list []model.Customer, query string) []model.Customer {
	if query == "" {
		return list
	}
	q := strings.ToLower(query)
	out := make([]model.Customer, 0, len(list))
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(c.PhoneNumber, query) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}
	return out
}
