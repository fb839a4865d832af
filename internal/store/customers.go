package store

import (
	"context"
	"slices"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
)

func (s *Store) Customers() ([]model.Customer, Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.customers), Status{Loading: s.customersFlags.loading, Err: s.customersFlags.err}
}

func (s *Store) FetchCustomers(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "store.fetch_customers")
	defer span.End()

	s.begin(&s.customersFlags)
	defer s.end(&s.customersFlags)

	items, err := s.client.Customers().List(ctx)
	if err != nil {
		s.logger.Error("fetch customers failed", "err", err)
		s.fail(&s.customersFlags, err)
		return err
	}
	s.mu.Lock()
	s.customers = items
	s.mu.Unlock()
	return nil
}

func (s *Store) AddCustomer(ctx context.Context, params api.CustomerParams) (model.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "store.add_customer")
	defer span.End()

	s.begin(&s.customersFlags)
	defer s.end(&s.customersFlags)

	created, err := s.client.Customers().Create(ctx, params)
	if err != nil {
		s.fail(&s.customersFlags, err)
		return model.Customer{}, err
	}
	s.mu.Lock()
	s.customers = append(s.customers, created)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, id int64, params api.CustomerParams) (model.Customer, error) {
	ctx, span := s.tracer.Start(ctx, "store.update_customer")
	defer span.End()

	s.begin(&s.customersFlags)
	defer s.end(&s.customersFlags)

	s.mu.Lock()
	base, _ := findByID(s.customers, id, customerID)
	s.mu.Unlock()

	if err := s.client.Customers().Update(ctx, id, params, &base); err != nil {
		s.fail(&s.customersFlags, err)
		return model.Customer{}, err
	}
	s.mu.Lock()
	s.customers = upsertByID(s.customers, id, customerID, base)
	s.mu.Unlock()
	return base, nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "store.delete_customer")
	defer span.End()

	s.begin(&s.customersFlags)
	defer s.end(&s.customersFlags)

	if err := s.client.Customers().Delete(ctx, id); err != nil {
		s.fail(&s.customersFlags, err)
		return err
	}
	s.mu.Lock()
	s.customers = removeByID(s.customers, id, customerID)
	s.mu.Unlock()
	return nil
}
