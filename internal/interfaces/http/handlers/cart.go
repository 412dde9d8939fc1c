// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/cart"
	"github.com/your-org/storefront-gateway/internal/domain/catalog"
	"github.com/your-org/storefront-gateway/internal/infrastructure/cache"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-gateway/internal/shopapi"
)

// CartHandler handles the composed cart view and checkout submission
type CartHandler struct {
	shop      *shopapi.Client
	snapshots *cache.SnapshotCache
	config    *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(shop *shopapi.Client, snapshots *cache.SnapshotCache, cfg *config.Config) *CartHandler {
	return &CartHandler{
		shop:      shop,
		snapshots: snapshots,
		config:    cfg,
	}
}

// GetCart handles GET /cart
//
// The response carries the composed section list. An empty cart yields an
// empty section list with count zero; the client distinguishes loading
// from empty with its own flags, not the structure shape.
func (h *CartHandler) GetCart(c *gin.Context) {
	token, _ := middleware.GetSessionTokenFromContext(c)
	ctx := c.Request.Context()

	catalogResp, err := h.snapshots.Catalog(ctx)
	if err != nil {
		respondShopError(c, err)
		return
	}

	availability, err := h.snapshots.Availability(ctx)
	if err != nil {
		respondShopError(c, err)
		return
	}

	cartResp, err := h.shop.GetCartItems(ctx, token)
	if err != nil {
		respondShopError(c, err)
		return
	}

	composed := cart.FormCart(catalogResp.Items, cartResp.Items, catalog.NewIDSet(availability.Items))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"cart":  composed,
			"count": len(cartResp.Items),
		},
	})
}

// Checkout handles POST /cart/checkout
//
// Moves the submitted cart items into the remote checkout selection. The
// remote availability conflict is recoverable: the handler surfaces a
// corrective notice and the client returns the user to the cart.
func (h *CartHandler) Checkout(c *gin.Context) {
	token, _ := middleware.GetSessionTokenFromContext(c)

	var req shopapi.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.shop.Checkout(c.Request.Context(), token, &req); err != nil {
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Items moved to checkout",
	})
}

// GetFavorites handles GET /cart/favorites
func (h *CartHandler) GetFavorites(c *gin.Context) {
	token, _ := middleware.GetSessionTokenFromContext(c)

	favorites, err := h.shop.GetFavoriteItems(c.Request.Context(), token)
	if err != nil {
		respondShopError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": favorites,
	})
}
