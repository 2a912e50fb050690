// Package reststore implements the data access contract as table-scoped
// REST calls against a PostgREST-style endpoint.
//
// Each table is exposed under /rest/v1/<table> with snake_case columns.
// Row absence is detected through empty result sets, not status codes;
// everything else (unreachable backend, unexpected status, malformed body)
// surfaces as a *store.TransportError.
package reststore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

const restPath = "/rest/v1/"

// Prefer header values understood by the endpoint.
const (
	preferRepresentation = "return=representation"
	preferUpsert         = "resolution=merge-duplicates,return=representation"
	preferExactCount     = "count=exact"
)

// Client is a thin PostgREST transport shared by the entity stores.
// It imposes no timeout of its own; callers bound requests through ctx.
type Client struct {
	baseURL    string
	serviceKey string
	httpc      *http.Client
}

// NewClient creates a REST-table client for the given service root.
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpc:      &http.Client{},
	}
}

// do performs one table-scoped call. body is marshalled as JSON when not
// nil; the response is decoded into out when not nil.
func (c *Client) do(ctx context.Context, method, table string, query url.Values, prefer string, body, out any) error {
	op := fmt.Sprintf("%s %s", method, table)

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return store.NewTransportError(op, err)
		}

		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + restPath + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return store.NewTransportError(op, err)
	}

	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return store.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return store.NewTransportError(op,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return store.NewTransportError(op, err)
	}

	return nil
}

// count performs an exact count over table using the Content-Range header.
func (c *Client) count(ctx context.Context, table string, query url.Values) (int64, error) {
	op := fmt.Sprintf("COUNT %s", table)

	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}

	q.Set("select", "id")
	q.Set("limit", "1")

	endpoint := c.baseURL + restPath + table + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, store.NewTransportError(op, err)
	}

	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Prefer", preferExactCount)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, store.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return 0, store.NewTransportError(op, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	// Content-Range: 0-0/42
	_, total, ok := strings.Cut(resp.Header.Get("Content-Range"), "/")
	if !ok {
		return 0, store.NewTransportError(op, fmt.Errorf("missing Content-Range header"))
	}

	n, err := strconv.ParseInt(total, 10, 64)
	if err != nil {
		return 0, store.NewTransportError(op, err)
	}

	return n, nil
}

func eq(value string) string {
	return "eq." + value
}
