package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bookdesk/bookdesk/internal/model"
)

type CustomersAPI struct {
	c *Client
}

type CustomerParams struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Email       *string `json:"email,omitempty"`
}

func (c CustomersAPI) List(ctx context.Context) ([]model.Customer, error) {
	return listOf[model.Customer](ctx, c.c, "/customers", nil)
}

func (c CustomersAPI) Get(ctx context.Context, id int64) (model.Customer, error) {
	var out model.Customer
	err := c.c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, nil, &out)
	return out, err
}

func (c CustomersAPI) Create(ctx context.Context, params CustomerParams) (model.Customer, error) {
	var out model.Customer
	err := c.c.do(ctx, http.MethodPost, "/customers", nil, params, &out)
	return out, err
}

func (c CustomersAPI) Update(ctx context.Context, id int64, params CustomerParams, into *model.Customer) error {
	return c.c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), nil, params, into)
}

func (c CustomersAPI) Delete(ctx context.Context, id int64) error {
	return c.c.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil, nil)
}

func (c CustomersAPI) Search(ctx context.Context, query string) ([]model.Customer, error) {
	q := url.Values{"query": []string{query}}
	return listOf[model.Customer](ctx, c.c, "/customers/search", q)
}
