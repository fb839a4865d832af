package store

import (
	"context"
	"slices"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
)

func (s *Store) Appointments() ([]model.Appointment, Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.appointments), Status{Loading: s.appointmentsFlags.loading, Err: s.appointmentsFlags.err}
}

// FetchAppointments replaces the collection from the server. On failure the
// previous collection is kept and the error is recorded; the returned error
// is the same message, for callers that want to react immediately.
func (s *Store) FetchAppointments(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "store.fetch_appointments")
	defer span.End()

	s.begin(&s.appointmentsFlags)
	defer s.end(&s.appointmentsFlags)

	items, err := s.client.Appointments().List(ctx)
	if err != nil {
		s.logger.Error("fetch appointments failed", "err", err)
		s.fail(&s.appointmentsFlags, err)
		return err
	}
	s.mu.Lock()
	s.appointments = items
	s.mu.Unlock()
	return nil
}

func (s *Store) AddAppointment(ctx context.Context, params api.AppointmentParams) (model.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "store.add_appointment")
	defer span.End()

	s.begin(&s.appointmentsFlags)
	defer s.end(&s.appointmentsFlags)

	created, err := s.client.Appointments().Create(ctx, params)
	if err != nil {
		s.fail(&s.appointmentsFlags, err)
		return model.Appointment{}, err
	}
	s.mu.Lock()
	s.appointments = append(s.appointments, created)
	s.mu.Unlock()
	return created, nil
}

// UpdateAppointment merges the server response onto the cached element: the
// response is decoded onto a copy of the current value, so fields the server
// omits keep their prior values. An id not cached locally still issues the
// request, but the reconcile is a no-op.
func (s *Store) UpdateAppointment(ctx context.Context, id int64, params api.AppointmentParams) (model.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "store.update_appointment")
	defer span.End()

	s.begin(&s.appointmentsFlags)
	defer s.end(&s.appointmentsFlags)

	s.mu.Lock()
	base, _ := findByID(s.appointments, id, appointmentID)
	s.mu.Unlock()

	if err := s.client.Appointments().Update(ctx, id, params, &base); err != nil {
		s.fail(&s.appointmentsFlags, err)
		return model.Appointment{}, err
	}
	s.mu.Lock()
	s.appointments = upsertByID(s.appointments, id, appointmentID, base)
	s.mu.Unlock()
	return base, nil
}

// UpdateAppointmentStatus is the PATCH /{id}/status action; reconciliation
// matches UpdateAppointment.
func (s *Store) UpdateAppointmentStatus(ctx context.Context, id int64, status string) (model.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "store.update_appointment_status")
	defer span.End()

	s.begin(&s.appointmentsFlags)
	defer s.end(&s.appointmentsFlags)

	s.mu.Lock()
	base, _ := findByID(s.appointments, id, appointmentID)
	s.mu.Unlock()

	if err := s.client.Appointments().UpdateStatus(ctx, id, status, &base); err != nil {
		s.fail(&s.appointmentsFlags, err)
		return model.Appointment{}, err
	}
	s.mu.Lock()
	s.appointments = upsertByID(s.appointments, id, appointmentID, base)
	s.mu.Unlock()
	return base, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "store.delete_appointment")
	defer span.End()

	s.begin(&s.appointmentsFlags)
	defer s.end(&s.appointmentsFlags)

	if err := s.client.Appointments().Delete(ctx, id); err != nil {
		s.fail(&s.appointmentsFlags, err)
		return err
	}
	s.mu.Lock()
	s.appointments = removeByID(s.appointments, id, appointmentID)
	s.mu.Unlock()
	return nil
}
