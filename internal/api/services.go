package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bookdesk/bookdesk/internal/model"
	"github.com/shopspring/decimal"
)

type ServicesAPI struct {
	c *Client
}

type ServiceParams struct {
	ServiceName *string          `json:"serviceName,omitempty"`
	Description *string          `json:"description,omitempty"`
	Duration    *int             `json:"duration,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

func (s ServicesAPI) List(ctx context.Context) ([]model.Service, error) {
	return listOf[model.Service](ctx, s.c, "/services", nil)
}

func (s ServicesAPI) Get(ctx context.Context, id int64) (model.Service, error) {
	var out model.Service
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/services/%d", id), nil, nil, &out)
	return out, err
}

func (s ServicesAPI) Create(ctx context.Context, params ServiceParams) (model.Service, error) {
	var out model.Service
	err := s.c.do(ctx, http.MethodPost, "/services", nil, params, &out)
	return out, err
}

func (s ServicesAPI) Update(ctx context.Context, id int64, params ServiceParams, into *model.Service) error {
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/services/%d", id), nil, params, into)
}

func (s ServicesAPI) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/services/%d", id), nil, nil, nil)
}

func (s ServicesAPI) ListByDuration(ctx context.Context, minutes int) ([]model.Service, error) {
	q := url.Values{"duration": []string{strconv.Itoa(minutes)}}
	return listOf[model.Service](ctx, s.c, "/services/duration", q)
}
