// internal/authflow/client.go
package authflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/your-org/storefront-gateway/internal/config"
)

// FlowType names a self-service flow of the identity provider
type FlowType string

const (
	FlowLogin        FlowType = "login"
	FlowRegistration FlowType = "registration"
	FlowRecovery     FlowType = "recovery"
)

// Valid reports whether t is a known flow type
func (t FlowType) Valid() bool {
	switch t {
	case FlowLogin, FlowRegistration, FlowRecovery:
		return true
	}
	return false
}

// CreateFlowOptions tunes browser flow creation
type CreateFlowOptions struct {
	Refresh        bool
	AAL            string // e.g. "aal1", "aal2"
	ReturnTo       string
	LoginChallenge string
}

// Session is the identity provider's view of the caller's session. It is
// the explicit session object handed to handlers; composition functions
// never read ambient auth state.
type Session struct {
	Active   bool     `json:"active"`
	Identity Identity `json:"identity"`
}

// Identity is the authenticated identity behind a session
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Client is a thin pass-through client over the identity provider's
// self-service flow API. Flow objects are opaque JSON: the gateway relays
// them between the storefront and the provider without interpreting the
// form fields inside.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new identity provider client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Auth.ProviderBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Auth.Timeout,
		},
	}
}

// CreateFlow initializes a new browser flow of the given type
func (c *Client) CreateFlow(ctx context.Context, flowType FlowType, opts CreateFlowOptions) (json.RawMessage, error) {
	params := url.Values{}
	if opts.Refresh {
		params.Set("refresh", "true")
	}
	if opts.AAL != "" {
		params.Set("aal", opts.AAL)
	}
	if opts.ReturnTo != "" {
		params.Set("return_to", opts.ReturnTo)
	}
	if opts.LoginChallenge != "" {
		params.Set("login_challenge", opts.LoginChallenge)
	}

	path := fmt.Sprintf("/self-service/%s/browser", flowType)
	return c.do(ctx, http.MethodGet, path, params, "", nil)
}

// GetFlow fetches an existing flow by id, e.g. after a redirect back
func (c *Client) GetFlow(ctx context.Context, flowType FlowType, flowID, sessionToken string) (json.RawMessage, error) {
	params := url.Values{"id": {flowID}}
	path := fmt.Sprintf("/self-service/%s/flows", flowType)
	return c.do(ctx, http.MethodGet, path, params, sessionToken, nil)
}

// SubmitFlow submits the user's form body for a flow. The body is relayed
// untouched; the provider validates it.
func (c *Client) SubmitFlow(ctx context.Context, flowType FlowType, flowID string, body json.RawMessage) (json.RawMessage, error) {
	params := url.Values{"flow": {flowID}}
	path := fmt.Sprintf("/self-service/%s", flowType)
	return c.do(ctx, http.MethodPost, path, params, "", body)
}

// WhoAmI resolves a session token into the provider's session object
func (c *Client) WhoAmI(ctx context.Context, sessionToken string) (*Session, error) {
	raw, err := c.do(ctx, http.MethodGet, "/sessions/whoami", nil, sessionToken, nil)
	if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode whoami response: %w", err)
	}
	return &session, nil
}

// FlowError reports a non-2xx response from the identity provider. The raw
// body is preserved: provider error payloads carry the UI messages the
// storefront renders.
type FlowError struct {
	StatusCode int
	Body       json.RawMessage
}

// Error implements the error interface
func (e *FlowError) Error() string {
	return fmt.Sprintf("identity provider returned %d", e.StatusCode)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, sessionToken string, body json.RawMessage) (json.RawMessage, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		req.Header.Set("X-Session-Token", sessionToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FlowError{StatusCode: resp.StatusCode, Body: raw}
	}

	return raw, nil
}
