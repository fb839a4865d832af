package store

import (
	"context"
	"slices"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
)

func (s *Store) Staff() ([]model.Staff, Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.staff), Status{Loading: s.staffFlags.loading, Err: s.staffFlags.err}
}

func (s *Store) FetchStaff(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "store.fetch_staff")
	defer span.End()

	s.begin(&s.staffFlags)
	defer s.end(&s.staffFlags)

	items, err := s.client.Staff().List(ctx)
	if err != nil {
		s.logger.Error("fetch staff failed", "err", err)
		s.fail(&s.staffFlags, err)
		return err
	}
	s.mu.Lock()
	s.staff = items
	s.mu.Unlock()
	return nil
}

func (s *Store) AddStaff(ctx context.Context, params api.StaffParams) (model.Staff, error) {
	ctx, span := s.tracer.Start(ctx, "store.add_staff")
	defer span.End()

	s.begin(&s.staffFlags)
	defer s.end(&s.staffFlags)

	created, err := s.client.Staff().Create(ctx, params)
	if err != nil {
		s.fail(&s.staffFlags, err)
		return model.Staff{}, err
	}
	s.mu.Lock()
	s.staff = append(s.staff, created)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateStaff(ctx context.Context, id int64, params api.StaffParams) (model.Staff, error) {
	ctx, span := s.tracer.Start(ctx, "store.update_staff")
	defer span.End()

	s.begin(&s.staffFlags)
	defer s.end(&s.staffFlags)

	s.mu.Lock()
	base, _ := findByID(s.staff, id, staffID)
	s.mu.Unlock()

	if err := s.client.Staff().Update(ctx, id, params, &base); err != nil {
		s.fail(&s.staffFlags, err)
		return model.Staff{}, err
	}
	s.mu.Lock()
	s.staff = upsertByID(s.staff, id, staffID, base)
	s.mu.Unlock()
	return base, nil
}

func (s *Store) DeleteStaff(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "store.delete_staff")
	defer span.End()

	s.begin(&s.staffFlags)
	defer s.end(&s.staffFlags)

	if err := s.client.Staff().Delete(ctx, id); err != nil {
		s.fail(&s.staffFlags, err)
		return err
	}
	s.mu.Lock()
	s.staff = removeByID(s.staff, id, staffID)
	s.mu.Unlock()
	return nil
}
