// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/catalog"
	"github.com/your-org/storefront-gateway/internal/domain/order"
	"github.com/your-org/storefront-gateway/internal/infrastructure/cache"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/shopapi"
)

// OrderHandler handles checkout composition and order creation
type OrderHandler struct {
	shop      *shopapi.Client
	snapshots *cache.SnapshotCache
	config    *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(shop *shopapi.Client, snapshots *cache.SnapshotCache, cfg *config.Config) *OrderHandler {
	return &OrderHandler{
		shop:      shop,
		snapshots: snapshots,
		config:    cfg,
	}
}

// CreateOrderRequest is the order submission from the storefront
type CreateOrderRequest struct {
	CreditIDs    []string        `json:"creditIds"`
	Delivery     *order.Delivery `json:"delivery"`
	SaveDelivery bool            `json:"saveDelivery"`
}

// GetCheckout handles GET /order/checkout
//
// Composes the checkout view: order items joined with the catalog, the
// credit/non-credit split, packaging units for the delivery widget, the
// preorder designation and totals. Repeatable credit_id query parameters
// preview totals under a credit selection.
func (h *OrderHandler) GetCheckout(c *gin.Context) {
	token, _ := middleware.GetSessionTokenFromContext(c)
	ctx := c.Request.Context()

	checkoutResp, err := h.shop.GetCheckoutItems(ctx, token)
	if err != nil {
		respondShopError(c, err)
		return
	}

	catalogResp, err := h.snapshots.Catalog(ctx)
	if err != nil {
		respondShopError(c, err)
		return
	}

	items, err := order.ComposeItems(checkoutResp.Items, catalogResp.Items)
	if err != nil {
		respondShopError(c, err)
		return
	}

	creditIDs := catalog.NewIDSet(c.QueryArray("credit_id"))
	totals := order.ComputeTotals(items, creditIDs)
	creditAvailable, creditUnavailable := order.SplitByCredit(items)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items":             items,
			"creditAvailable":   creditAvailable,
			"creditUnavailable": creditUnavailable,
			"packages":          order.Packages(items),
			"preorder":          order.Preorder(items),
			"totals":            totals,
		},
	})
}

// CreateOrder handles POST /order
//
// Rebuilds the order server-side from the remote checkout selection, never
// trusting client-computed totals, then submits it and returns the payment
// redirect URL.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	token, _ := middleware.GetSessionTokenFromContext(c)
	ctx := c.Request.Context()

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	checkoutResp, err := h.shop.GetCheckoutItems(ctx, token)
	if err != nil {
		respondShopError(c, err)
		return
	}

	if len(checkoutResp.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Checkout selection is empty",
		})
		return
	}

	catalogResp, err := h.snapshots.Catalog(ctx)
	if err != nil {
		respondShopError(c, err)
		return
	}

	items, err := order.ComposeItems(checkoutResp.Items, catalogResp.Items)
	if err != nil {
		respondShopError(c, err)
		return
	}

	payload, err := order.BuildPayload(items, req.CreditIDs, req.Delivery, req.SaveDelivery)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid order submission",
			"details": err.Error(),
		})
		return
	}

	created, err := h.shop.CreateOrder(ctx, token, &payload)
	if err != nil {
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order created successfully",
		"data": gin.H{
			"paymentUrl": created.PaymentURL,
		},
	})
}
