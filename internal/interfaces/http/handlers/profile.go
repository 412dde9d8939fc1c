// internal/interfaces/http/handlers/profile.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/shopapi"
)

// ProfileHandler handles the user's order history and saved delivery
type ProfileHandler struct {
	shop   *shopapi.Client
	config *config.Config
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(shop *shopapi.Client, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{
		shop:   shop,
		config: cfg,
	}
}

// GetOrderList handles GET /profile/orders
func (h *ProfileHandler) GetOrderList(c *gin.Context) {
	token, _ := middleware.GetSessionTokenFromContext(c)

	orders, err := h.shop.GetOrderList(c.Request.Context(), token)
	if err != nil {
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": orders,
	})
}

// GetOrder handles GET /profile/orders/:id
func (h *ProfileHandler) GetOrder(c *gin.Context) {
	token, _ := middleware.GetSessionTokenFromContext(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Order id is required",
		})
		return
	}

	resp, err := h.shop.GetOrder(c.Request.Context(), token, id)
	if err != nil {
		if shopapi.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resp,
	})
}

// GetSavedDelivery handles GET /profile/delivery
func (h *ProfileHandler) GetSavedDelivery(c *gin.Context) {
	token, _ := middleware.GetSessionTokenFromContext(c)

	saved, err := h.shop.GetSavedDelivery(c.Request.Context(), token)
	if err != nil {
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": saved,
	})
}
