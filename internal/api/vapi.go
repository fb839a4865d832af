package api

import (
	"context"
	"net/http"
	"strings"
)

// VapiAPI covers the voice-call integration surface the console can reach.
// Webhooks are delivered to the API server, never to this client.
type VapiAPI struct {
	c *Client
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health reports whether the voice-call integration is up. Any response
// other than {"status":"ok"} counts as down.
func (v VapiAPI) Health(ctx context.Context) (bool, error) {
	var out healthResponse
	if err := v.c.do(ctx, http.MethodGet, "/vapi/health", nil, nil, &out); err != nil {
		return false, err
	}
	return strings.EqualFold(out.Status, "ok"), nil
}
