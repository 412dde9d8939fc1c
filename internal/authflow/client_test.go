// internal/authflow/client_test.go
package authflow

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-gateway/internal/config"
)

func testFlowClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Auth.ProviderBaseURL = server.URL
	cfg.Auth.Timeout = 5 * time.Second

	return NewClient(cfg)
}

func TestFlowType_Valid(t *testing.T) {
	assert.True(t, FlowLogin.Valid())
	assert.True(t, FlowRegistration.Valid())
	assert.True(t, FlowRecovery.Valid())
	assert.False(t, FlowType("settings").Valid())
	assert.False(t, FlowType("").Valid())
}

func TestClient_CreateFlow(t *testing.T) {
	t.Run("hits the browser endpoint for the flow type", func(t *testing.T) {
		client := testFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/self-service/login/browser", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("refresh"))
			assert.Equal(t, "aal2", r.URL.Query().Get("aal"))
			io.WriteString(w, `{"id":"flow-1","ui":{"nodes":[]}}`)
		}))

		raw, err := client.CreateFlow(context.Background(), FlowLogin, CreateFlowOptions{
			Refresh: true,
			AAL:     "aal2",
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"flow-1","ui":{"nodes":[]}}`, string(raw))
	})

	t.Run("relays the provider body verbatim", func(t *testing.T) {
		body := `{"id":"flow-2","ui":{"nodes":[{"type":"input","attributes":{"name":"identifier"}}]}}`
		client := testFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, body)
		}))

		raw, err := client.CreateFlow(context.Background(), FlowRegistration, CreateFlowOptions{})
		require.NoError(t, err)
		// The flow object is opaque: no field is reshaped or dropped
		assert.JSONEq(t, body, string(raw))
	})
}

func TestClient_GetFlow(t *testing.T) {
	client := testFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/self-service/recovery/flows", r.URL.Path)
		assert.Equal(t, "flow-9", r.URL.Query().Get("id"))
		assert.Equal(t, "sess-token", r.Header.Get("X-Session-Token"))
		io.WriteString(w, `{"id":"flow-9"}`)
	}))

	raw, err := client.GetFlow(context.Background(), FlowRecovery, "flow-9", "sess-token")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"flow-9"}`, string(raw))
}

func TestClient_SubmitFlow(t *testing.T) {
	t.Run("posts the form body untouched", func(t *testing.T) {
		client := testFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/self-service/login", r.URL.Path)
			assert.Equal(t, "flow-1", r.URL.Query().Get("flow"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			sent, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"method":"password","identifier":"ada@example.com","password":"hunter2"}`, string(sent))

			io.WriteString(w, `{"session":{"active":true}}`)
		}))

		raw, err := client.SubmitFlow(context.Background(), FlowLogin, "flow-1",
			[]byte(`{"method":"password","identifier":"ada@example.com","password":"hunter2"}`))
		require.NoError(t, err)
		assert.Contains(t, string(raw), "session")
	})

	t.Run("provider rejection preserves the error payload", func(t *testing.T) {
		client := testFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"ui":{"messages":[{"text":"wrong credentials"}]}}`)
		}))

		_, err := client.SubmitFlow(context.Background(), FlowLogin, "flow-1", []byte(`{}`))
		require.Error(t, err)

		var flowErr *FlowError
		require.True(t, errors.As(err, &flowErr))
		assert.Equal(t, http.StatusBadRequest, flowErr.StatusCode)
		assert.Contains(t, string(flowErr.Body), "wrong credentials")
	})
}

func TestClient_WhoAmI(t *testing.T) {
	t.Run("resolves an active session", func(t *testing.T) {
		client := testFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sessions/whoami", r.URL.Path)
			assert.Equal(t, "sess-token", r.Header.Get("X-Session-Token"))
			io.WriteString(w, `{"active":true,"identity":{"id":"ident-1","email":"ada@example.com"}}`)
		}))

		session, err := client.WhoAmI(context.Background(), "sess-token")
		require.NoError(t, err)
		assert.True(t, session.Active)
		assert.Equal(t, "ident-1", session.Identity.ID)
		assert.Equal(t, "ada@example.com", session.Identity.Email)
	})

	t.Run("expired session yields a flow error", func(t *testing.T) {
		client := testFlowClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"error":{"code":401}}`)
		}))

		_, err := client.WhoAmI(context.Background(), "stale")
		require.Error(t, err)

		var flowErr *FlowError
		require.True(t, errors.As(err, &flowErr))
		assert.Equal(t, http.StatusUnauthorized, flowErr.StatusCode)
	})
}
