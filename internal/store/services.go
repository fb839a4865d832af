package store

import (
	"context"
	"slices"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
)

func (s *Store) Services() ([]model.Service, Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.services), Status{Loading: s.servicesFlags.loading, Err: s.servicesFlags.err}
}

func (s *Store) FetchServices(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "store.fetch_services")
	defer span.End()

	s.begin(&s.servicesFlags)
	defer s.end(&s.servicesFlags)

	items, err := s.client.Services().List(ctx)
	if err != nil {
		s.logger.Error("fetch services failed", "err", err)
		s.fail(&s.servicesFlags, err)
		return err
	}
	s.mu.Lock()
	s.services = items
	s.mu.Unlock()
	return nil
}

func (s *Store) AddService(ctx context.Context, params api.ServiceParams) (model.Service, error) {
	ctx, span := s.tracer.Start(ctx, "store.add_service")
	defer span.End()

	s.begin(&s.servicesFlags)
	defer s.end(&s.servicesFlags)

	created, err := s.client.Services().Create(ctx, params)
	if err != nil {
		s.fail(&s.servicesFlags, err)
		return model.Service{}, err
	}
	s.mu.Lock()
	s.services = append(s.services, created)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateService(ctx context.Context, id int64, params api.ServiceParams) (model.Service, error) {
	ctx, span := s.tracer.Start(ctx, "store.update_service")
	defer span.End()

	s.begin(&s.servicesFlags)
	defer s.end(&s.servicesFlags)

	s.mu.Lock()
	base, _ := findByID(s.services, id, serviceID)
	s.mu.Unlock()

	if err := s.client.Services().Update(ctx, id, params, &base); err != nil {
		s.fail(&s.servicesFlags, err)
		return model.Service{}, err
	}
	s.mu.Lock()
	s.services = upsertByID(s.services, id, serviceID, base)
	s.mu.Unlock()
	return base, nil
}

func (s *Store) DeleteService(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "store.delete_service")
	defer span.End()

	s.begin(&s.servicesFlags)
	defer s.end(&s.servicesFlags)

	if err := s.client.Services().Delete(ctx, id); err != nil {
		s.fail(&s.servicesFlags, err)
		return err
	}
	s.mu.Lock()
	s.services = removeByID(s.services, id, serviceID)
	s.mu.Unlock()
	return nil
}
