package console

import (
	"context"
	"fmt"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
)

func (c *Console) ensureServices(ctx context.Context) {
	ensure(&c.servicesOnce, ctx, c.store.FetchServices)
}

func (c *Console) ListServices(ctx context.Context) error {
	c.ensureServices(ctx)
	list, st := c.store.Services()
	c.renderServices(list)
	c.renderStatus(st)
	return nil
}

// ListServicesByDuration hits the server-side duration filter.
func (c *Console) ListServicesByDuration(ctx context.Context, minutes int) error {
	list, err := c.client.Services().ListByDuration(ctx, minutes)
	if err != nil {
		return err
	}
	c.renderServices(list)
	return nil
}

func (c *Console) AddService(ctx context.Context, params api.ServiceParams) error {
	created, err := c.store.AddService(ctx, params)
	if err != nil {
		return fmt.Errorf("add service: %w", err)
	}
	c.printf("created service %d\n", created.ServiceID)
	return nil
}

func (c *Console) UpdateService(ctx context.Context, id int64, params api.ServiceParams) error {
	updated, err := c.store.UpdateService(ctx, id, params)
	if err != nil {
		return fmt.Errorf("update service %d: %w", id, err)
	}
	c.renderServices([]model.Service{updated})
	return nil
}

func (c *Console) DeleteService(ctx context.Context, id int64) error {
	if err := c.store.DeleteService(ctx, id); err != nil {
		return fmt.Errorf("delete service %d: %w", id, err)
	}
	c.printf("deleted service %d\n", id)
	return nil
}

func (c *Console) renderServices(list []model.Service) {
	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tDURATION\tPRICE\tDESCRIPTION")
	for _, s := range list {
		fmt.Fprintf(w, "%d\t%s\t%dm\t%s\t%s\n",
			s.ServiceID, s.ServiceName, s.Duration, s.Price.StringFixed(2), orDash(s.Description))
	}
	w.Flush()
	c.printf("%d service(s)\n", len(list))
}
