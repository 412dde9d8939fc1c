// internal/shopapi/client.go
package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/order"
	"github.com/your-org/storefront-gateway/internal/pkg/validate"
)

// Client is the typed HTTP client over the remote commerce API. It carries
// no retry or invalidation logic; every response passes the validation gate
// before it is returned to a caller.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	gate       *validate.Gate
	logger     *logrus.Logger
}

// NewClient creates a new commerce API client
func NewClient(cfg *config.Config, gate *validate.Gate, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Shop.BaseURL, "/"),
		apiKey:  cfg.Shop.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Shop.Timeout,
		},
		gate:   gate,
		logger: logger,
	}
}

// GetCatalog retrieves the full catalog snapshot
func (c *Client) GetCatalog(ctx context.Context) (*CatalogResponse, error) {
	var resp CatalogResponse
	if err := c.do(ctx, http.MethodGet, "/catalog", nil, "", nil, "CatalogResponse", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetItemsAvailability retrieves the ids of currently available items
func (c *Client) GetItemsAvailability(ctx context.Context) (*AvailabilityResponse, error) {
	var resp AvailabilityResponse
	if err := c.do(ctx, http.MethodGet, "/catalog/availability", nil, "", nil, "AvailabilityResponse", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCartItems retrieves the user's remote cart
func (c *Client) GetCartItems(ctx context.Context, sessionToken string) (*CartResponse, error) {
	var resp CartResponse
	if err := c.do(ctx, http.MethodGet, "/cart/items", nil, sessionToken, nil, "CartResponse", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFavoriteItems retrieves the user's favorite item ids
func (c *Client) GetFavoriteItems(ctx context.Context, sessionToken string) (*FavoritesResponse, error) {
	var resp FavoritesResponse
	if err := c.do(ctx, http.MethodGet, "/favorites/items", nil, sessionToken, nil, "FavoritesResponse", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Checkout moves the given cart items into the user's checkout selection.
// A 409 from the remote API signals that quantities were adjusted against
// availability; detect it with IsConflict.
func (c *Client) Checkout(ctx context.Context, sessionToken string, req *CheckoutRequest) error {
	return c.do(ctx, http.MethodPost, "/cart/checkout", nil, sessionToken, req, "", nil)
}

// GetCheckoutItems retrieves the user's current checkout selection
func (c *Client) GetCheckoutItems(ctx context.Context, sessionToken string) (*CheckoutItemsResponse, error) {
	var resp CheckoutItemsResponse
	if err := c.do(ctx, http.MethodGet, "/order/checkout-items", nil, sessionToken, nil, "CheckoutItemsResponse", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateOrder submits the composed order and returns the payment redirect
func (c *Client) CreateOrder(ctx context.Context, sessionToken string, payload *order.CreateOrderPayload) (*CreateOrderResponse, error) {
	var resp CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, "/order", nil, sessionToken, payload, "CreateOrderResponse", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSavedDelivery retrieves the user's saved delivery profile; the
// response carries a nil delivery when none was ever saved.
func (c *Client) GetSavedDelivery(ctx context.Context, sessionToken string) (*SavedDeliveryResponse, error) {
	var resp SavedDeliveryResponse
	if err := c.do(ctx, http.MethodGet, "/profile/saved-delivery", nil, sessionToken, nil, "SavedDeliveryResponse", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOrderList retrieves the user's order history
func (c *Client) GetOrderList(ctx context.Context, sessionToken string) (*OrderListResponse, error) {
	var resp OrderListResponse
	if err := c.do(ctx, http.MethodGet, "/profile/order-list", nil, sessionToken, nil, "OrderListResponse", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOrder retrieves a single order from the user's history
func (c *Client) GetOrder(ctx context.Context, sessionToken, id string) (*OrderResponse, error) {
	params := url.Values{"id": {id}}
	var resp OrderResponse
	if err := c.do(ctx, http.MethodGet, "/profile/order", params, sessionToken, nil, "OrderResponse", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do executes one request against the remote commerce API: encode the body,
// forward the session token, check the status, decode into out and run the
// validation gate. out and schema may be empty for fire-and-forget calls.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, sessionToken string, body any, schema string, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	if sessionToken != "" {
		req.Header.Set("Authorization", "Bearer "+sessionToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("shop API %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Endpoint:   fmt.Sprintf("%s %s", method, path),
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return c.gate.Struct(schema, out)
}
