// Package api is the HTTP client for the store-management backend. It
// exposes one generic request function plus per-resource method groups
// that build paths and bodies and delegate to it. Every call is a single
// attempt: no retry, no backoff; errors are logged and surfaced to the
// caller unmodified.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Config holds the client's connection settings.
type Config struct {
	// BaseURL is the base URL of the backend, e.g. "http://localhost:3000/api".
	BaseURL string

	// Timeout is the per-request timeout. Default: 30s.
	Timeout time.Duration

	// Headers are additional headers sent with every request.
	Headers map[string]string
}

// Client is the backend API client. The zero value is not usable; create
// one with NewClient.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	headers    map[string]string
	log        *zap.Logger

	Products   *ProductsService
	Categories *CategoriesService
	Customers  *CustomersService
	Orders     *OrdersService
	Inventory  *InventoryService
}

// NewClient creates a client for the given backend. A nil logger disables
// logging.
func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    base,
		headers:    headers,
		log:        log,
	}
	c.Products = &ProductsService{c}
	c.Categories = &CategoriesService{c}
	c.Customers = &CustomersService{c}
	c.Orders = &OrdersService{c}
	c.Inventory = &InventoryService{c}
	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// do executes one request. The body, when non-nil, is JSON-encoded; the
// response body is decoded into out when out is non-nil. A non-2xx status
// yields a *HTTPError, any network or decode failure a *TransportError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	u, err := c.buildURL(path)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("encoding request body: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("request failed", zap.String("op", op), zap.Error(err))
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("reading response failed", zap.String("op", op), zap.Error(err))
		return &TransportError{Op: op, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := &HTTPError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
		c.log.Error("request rejected", zap.String("op", op), zap.Int("status", resp.StatusCode))
		return httpErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			c.log.Error("decoding response failed", zap.String("op", op), zap.Error(err))
			return &TransportError{Op: op, Err: fmt.Errorf("decoding response body: %w", err)}
		}
	}
	return nil
}

func (c *Client) buildURL(path string) (*url.URL, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u, err := url.Parse(strings.TrimSuffix(c.baseURL.String(), "/") + path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	return u, nil
}
