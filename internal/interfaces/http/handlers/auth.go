// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/authflow"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
)

// AuthHandler passes identity-provider self-service flows through to the
// storefront. Flow objects are opaque JSON in both directions; the handler
// only routes them and maps transport failures.
type AuthHandler struct {
	flows  *authflow.Client
	config *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(flows *authflow.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		flows:  flows,
		config: cfg,
	}
}

// CreateFlow handles GET /auth/flows/:type/new
func (h *AuthHandler) CreateFlow(c *gin.Context) {
	flowType, ok := h.flowType(c)
	if !ok {
		return
	}

	opts := authflow.CreateFlowOptions{
		Refresh:        c.Query("refresh") == "true",
		AAL:            c.Query("aal"),
		ReturnTo:       c.Query("return_to"),
		LoginChallenge: c.Query("login_challenge"),
	}

	raw, err := h.flows.CreateFlow(c.Request.Context(), flowType, opts)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// GetFlow handles GET /auth/flows/:type
func (h *AuthHandler) GetFlow(c *gin.Context) {
	flowType, ok := h.flowType(c)
	if !ok {
		return
	}

	flowID := c.Query("id")
	if flowID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Flow id is required",
		})
		return
	}

	token, _ := middleware.GetSessionTokenFromContext(c)

	raw, err := h.flows.GetFlow(c.Request.Context(), flowType, flowID, token)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// SubmitFlow handles POST /auth/flows/:type
func (h *AuthHandler) SubmitFlow(c *gin.Context) {
	flowType, ok := h.flowType(c)
	if !ok {
		return
	}

	flowID := c.Query("flow")
	if flowID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Flow id is required",
		})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	raw, err := h.flows.SubmitFlow(c.Request.Context(), flowType, flowID, body)
	if err != nil {
		h.respondFlowError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// WhoAmI handles GET /auth/whoami
func (h *AuthHandler) WhoAmI(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "No active session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": session,
	})
}

func (h *AuthHandler) flowType(c *gin.Context) (authflow.FlowType, bool) {
	flowType := authflow.FlowType(c.Param("type"))
	if !flowType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown flow type",
		})
		return "", false
	}
	return flowType, true
}

// respondFlowError relays provider error payloads verbatim: they carry the
// form messages the storefront renders inside the flow UI.
func (h *AuthHandler) respondFlowError(c *gin.Context, err error) {
	var flowErr *authflow.FlowError
	if errors.As(err, &flowErr) {
		if len(flowErr.Body) > 0 {
			c.Data(flowErr.StatusCode, "application/json", flowErr.Body)
		} else {
			c.Status(flowErr.StatusCode)
		}
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{
		"error": "Identity provider request failed",
	})
}
