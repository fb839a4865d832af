package console

import (
	"context"
	"fmt"

	"github.com/bookdesk/bookdesk/internal/api"
	"github.com/bookdesk/bookdesk/internal/model"
)

func (c *Console) ensureCustomers(ctx context.Context) {
	ensure(&c.customersOnce, ctx, c.store.FetchCustomers)
}

// ListCustomers renders the mirrored collection, narrowed by the local
// search query when one is given.
func (c *Console) ListCustomers(ctx context.Context, query string) error {
	c.ensureCustomers(ctx)
	list, st := c.store.Customers()
	c.renderCustomers(SearchCustomersLocal(list, query))
	c.renderStatus(st)
	return nil
}

// SearchCustomers uses the server-side search endpoint instead of the local
// filter.
func (c *Console) SearchCustomers(ctx context.Context, query string) error {
	list, err := c.client.Customers().Search(ctx, query)
	if err != nil {
		return err
	}
	c.renderCustomers(list)
	return nil
}

func (c *Console) AddCustomer(ctx context.Context, params api.CustomerParams) error {
	created, err := c.store.AddCustomer(ctx, params)
	if err != nil {
		return fmt.Errorf("add customer: %w", err)
	}
	c.printf("created customer %d\n", created.CustomerID)
	return nil
}

func (c *Console) UpdateCustomer(ctx context.Context, id int64, params api.CustomerParams) error {
	updated, err := c.store.UpdateCustomer(ctx, id, params)
	if err != nil {
		return fmt.Errorf("update customer %d: %w", id, err)
	}
	c.renderCustomers([]model.Customer{updated})
	return nil
}

func (c *Console) DeleteCustomer(ctx context.Context, id int64) error {
	if err := c.store.DeleteCustomer(ctx, id); err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	c.printf("deleted customer %d\n", id)
	return nil
}

func (c *Console) renderCustomers(list []model.Customer) {
	w := c.table()
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL")
	for _, cu := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			cu.CustomerID, cu.Name, orDash(cu.PhoneNumber), orDash(cu.Email))
	}
	w.Flush()
	c.printf("%d customer(s)\n", len(list))
}
