package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sakura-sushi/backend/internal/models"
)

// Client is a thin HTTP client for the sushi bar API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// OrderConfirmation is the creation envelope returned by the API.
type OrderConfirmation struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Order   models.OrderProjection `json:"order"`
}

// Menu fetches the full product list.
func (c *Client) Menu(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/menu", nil)
	if err != nil {
		return nil, fmt.Errorf("create menu request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch menu: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch menu: unexpected status %d", resp.StatusCode)
	}

	var items []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return items, nil
}

// MenuItem fetches a single product by id.
func (c *Client) MenuItem(ctx context.Context, id int64) (*models.Product, error) {
	url := fmt.Sprintf("%s/api/menu/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create menu item request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch menu item: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch menu item %d: unexpected status %d", id, resp.StatusCode)
	}

	var item models.Product
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("decode menu item: %w", err)
	}
	return &item, nil
}

// SubmitOrder posts the order once. Any non-201 response is an error; the
// caller decides what to do with the still-populated cart.
func (c *Client) SubmitOrder(ctx context.Context, order models.CreateOrderRequest) (*OrderConfirmation, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("serialize order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("order rejected (status %d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("order rejected: unexpected status %d", resp.StatusCode)
	}

	var conf OrderConfirmation
	if err := json.NewDecoder(resp.Body).Decode(&conf); err != nil {
		return nil, fmt.Errorf("decode order confirmation: %w", err)
	}
	return &conf, nil
}
