// Package cartapi contains the HTTP client for the storefront's cart API.
package cartapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"cartbridge/config"
	"cartbridge/internal/domain/entity"
	"cartbridge/internal/domain/service"

	"github.com/pkg/errors"
)

// client implements service.CartAPIClient against the REST cart API. All
// calls run under the configured timeout; a hung upstream call can never
// leave the engine's loading flag stuck.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the cart API client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) service.CartAPIClient {
	return &client{
		baseURL: strings.TrimRight(cfg.CartAPI.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.CartAPI.Timeout,
		},
		logger: logger,
	}
}

// FetchCart retrieves the current backend cart. A 404 means the user has
// no cart yet and is reported as an absent cart, not an error.
func (c *client) FetchCart(ctx context.Context) (*entity.BackendCart, error) {
	resp, err := c.do(ctx, http.MethodGet, "/cart", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var cart entity.BackendCart
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		return nil, errors.Wrap(err, "failed to decode backend cart")
	}

	return &cart, nil
}

// AddItem adds or increments one item server-side.
func (c *client) AddItem(ctx context.Context, payload *service.CartItemPayload) error {
	resp, err := c.do(ctx, http.MethodPost, "/cart/items", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// UpdateItem applies a partial update to one item.
func (c *client) UpdateItem(ctx context.Context, itemID string, patch *service.CartItemPatch) error {
	resp, err := c.do(ctx, http.MethodPatch, "/cart/items/"+itemID, patch)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// RemoveItem deletes one item.
func (c *client) RemoveItem(ctx context.Context, itemID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/cart/items/"+itemID, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// ClearCart empties the backend cart.
func (c *client) ClearCart(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodDelete, "/cart/clear", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// MergeItems submits a whole guest cart in one bulk call.
func (c *client) MergeItems(ctx context.Context, payloads []*service.CartItemPayload) error {
	resp, err := c.do(ctx, http.MethodPost, "/cart/merge", payloads)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// do builds and executes one request, forwarding the caller's bearer
// token from the context.
func (c *client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := service.AuthTokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("cart api request",
		slog.String("method", method),
		slog.String("path", path),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "cart api %s %s failed", method, path)
	}

	return resp, nil
}

// checkStatus reports non-success statuses as errors, reading a snippet
// of the body for context.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	return errors.Errorf("cart api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
}
