// Package brightsites implements domain.OrderGateway against the
// BrightSites storefront API.
package brightsites

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ordersweep/ordersweep/internal/domain"
)

const (
	platformHost   = "mybrightsites.com"
	apiPath        = "/api/v2.6.1/orders"
	requestTimeout = 30 * time.Second
)

// Client talks to one BrightSites platform host. Each store's backend
// lives at https://{subdomain}.mybrightsites.com; a base URL override
// routes every store to a fixed host instead (tests).
type Client struct {
	http    *http.Client
	log     domain.Logger
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL routes all requests to base instead of the per-store
// platform host.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a gateway with the standard 30-second request timeout.
func New(log domain.Logger, opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: requestTimeout},
		log:  log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listResponse struct {
	Orders []domain.Order `json:"orders"`
}

// ListOrders fetches the store's orders created inside the window.
// Any transport or HTTP-status failure is returned to the caller,
// which treats it as "no orders this round".
func (c *Client) ListOrders(ctx context.Context, store domain.Store, window domain.TimeWindow) ([]domain.Order, error) {
	reqURL := c.ordersURL(store, "")
	q := url.Values{
		"token":           {store.APIKey},
		"created_at_from": {window.FromParam()},
		"created_at_to":   {window.ToParam()},
	}
	full := reqURL + "?" + q.Encode()

	c.log.Info(fmt.Sprintf("Sending GET request to %s with params: created_at_from=%s created_at_to=%s",
		loggedURL(reqURL), window.FromParam(), window.ToParam()))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return nil, fmt.Errorf("building orders request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading orders response: %w", err)
	}

	c.log.Info(fmt.Sprintf("Response from %s: %d - %s", loggedURL(reqURL), resp.StatusCode, body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("orders request returned %s", resp.Status)
	}

	var decoded listResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding orders response: %w", err)
	}
	return decoded.Orders, nil
}

// MarkInProgress transitions one order to in_progress via PUT. The
// API key travels both as the token query parameter and as a bearer
// token, matching what the platform expects.
func (c *Client) MarkInProgress(ctx context.Context, store domain.Store, id domain.OrderID) error {
	reqURL := c.ordersURL(store, string(id))
	full := reqURL + "?" + url.Values{"token": {store.APIKey}}.Encode()

	payload := map[string]any{"order": map[string]string{"status": domain.StatusInProgress}}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding update payload: %w", err)
	}

	c.log.Info(fmt.Sprintf("Sending PUT request to %s with data: %s", loggedURL(reqURL), body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, full, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building update request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+store.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("updating order %s: %w", id, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading update response: %w", err)
	}

	c.log.Info(fmt.Sprintf("Response from %s: %d - %s", loggedURL(reqURL), resp.StatusCode, respBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("update for order %s returned %s", id, resp.Status)
	}
	return nil
}

func (c *Client) ordersURL(store domain.Store, orderID string) string {
	base := c.baseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.%s", store.Subdomain, platformHost)
	}
	if orderID == "" {
		return base + apiPath
	}
	return base + apiPath + "/" + orderID
}

// loggedURL keeps API keys out of the run log, which is the one
// artifact operators ship around.
func loggedURL(reqURL string) string {
	return reqURL + "?token=REDACTED"
}
