// Package client implements the HTTP client for the remote sales service.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"resty.dev/v3"

	"salesdash/internal/sales"
)

// ErrNotFound is returned when the service reports a missing record.
var ErrNotFound = errors.New("not found")

// APIError is an error body reported by the sales service.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Client talks to the remote sales service.
type Client struct {
	http *resty.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	return &Client{http: c}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	c.http.Close()
	return nil
}

// Ping verifies server reachability.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.http.R().SetContext(ctx).Get("/ping")
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("ping: %w", &APIError{StatusCode: res.StatusCode()})
	}
	return nil
}

// ListSales fetches one page of sales.
func (c *Client) ListSales(ctx context.Context, req sales.PageRequest) (sales.Page, error) {
	var page sales.Page
	var apiErr APIError
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":          strconv.Itoa(req.Page),
			"limit":         strconv.Itoa(req.Limit),
			"sortField":     string(req.SortField),
			"sortDirection": string(req.SortDirection),
		}).
		SetResult(&page).
		SetError(&apiErr).
		Get("/sales")
	if err != nil {
		return sales.Page{}, fmt.Errorf("list sales: %w", err)
	}
	if err := check(res, &apiErr); err != nil {
		return sales.Page{}, fmt.Errorf("list sales: %w", err)
	}
	if page.Data == nil {
		page.Data = []sales.Sale{}
	}
	return page, nil
}

// CreateSale persists a candidate and returns the created record with its
// server-assigned id.
func (c *Client) CreateSale(ctx context.Context, candidate sales.Candidate) (sales.Sale, error) {
	var created sales.Sale
	var apiErr APIError
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(candidate).
		SetResult(&created).
		SetError(&apiErr).
		Post("/sales")
	if err != nil {
		return sales.Sale{}, fmt.Errorf("create sale: %w", err)
	}
	if err := check(res, &apiErr); err != nil {
		return sales.Sale{}, fmt.Errorf("create sale: %w", err)
	}
	return created, nil
}

// UpdateSale replaces the fields of the sale with the given id.
func (c *Client) UpdateSale(ctx context.Context, id string, candidate sales.Candidate) (sales.Sale, error) {
	var updated sales.Sale
	var apiErr APIError
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(candidate).
		SetResult(&updated).
		SetError(&apiErr).
		Put(fmt.Sprintf("/sales/%s", id))
	if err != nil {
		return sales.Sale{}, fmt.Errorf("update sale: %w", err)
	}
	if err := check(res, &apiErr); err != nil {
		return sales.Sale{}, fmt.Errorf("update sale: %w", err)
	}
	return updated, nil
}

// DeleteSale deletes the sale with the given id and returns the echoed id.
func (c *Client) DeleteSale(ctx context.Context, id string) (string, error) {
	var deleted struct {
		ID string `json:"id"`
	}
	var apiErr APIError
	res, err := c.http.R().
		SetContext(ctx).
		SetResult(&deleted).
		SetError(&apiErr).
		Delete(fmt.Sprintf("/sales/%s", id))
	if err != nil {
		return "", fmt.Errorf("delete sale: %w", err)
	}
	if err := check(res, &apiErr); err != nil {
		return "", fmt.Errorf("delete sale: %w", err)
	}
	return deleted.ID, nil
}

// BulkCreateSales persists a batch of candidates. The service treats the
// batch as all-or-nothing.
func (c *Client) BulkCreateSales(ctx context.Context, candidates []sales.Candidate) ([]sales.Sale, error) {
	var created []sales.Sale
	var apiErr APIError
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(candidates).
		SetResult(&created).
		SetError(&apiErr).
		Post("/sales/bulk")
	if err != nil {
		return nil, fmt.Errorf("bulk create sales: %w", err)
	}
	if err := check(res, &apiErr); err != nil {
		return nil, fmt.Errorf("bulk create sales: %w", err)
	}
	return created, nil
}

// check converts a non-2xx response into an error, mapping 404 onto the
// ErrNotFound sentinel.
func check(res *resty.Response, apiErr *APIError) error {
	if !res.IsError() {
		return nil
	}
	apiErr.StatusCode = res.StatusCode()
	if res.StatusCode() == http.StatusNotFound {
		if apiErr.Message != "" {
			return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Message)
		}
		return ErrNotFound
	}
	return apiErr
}
