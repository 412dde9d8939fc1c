// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/domain/order"
	"github.com/your-org/storefront-gateway/internal/pkg/validate"
	"github.com/your-org/storefront-gateway/internal/shopapi"
)

// respondShopError maps a remote commerce API failure onto the gateway's
// response taxonomy: malformed upstream shapes and transport failures are
// 502, the availability business-rule conflict is a recoverable 409 with a
// corrective notice, a missing catalog reference is a hard 404.
func respondShopError(c *gin.Context, err error) {
	var validationErr *validate.Error
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "Upstream returned malformed data",
			"schema": validationErr.Schema,
		})
		return
	}

	var notFoundErr *order.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Catalog item not found",
			"item_id": notFoundErr.ItemID,
		})
		return
	}

	if shopapi.IsConflict(err) {
		c.JSON(http.StatusConflict, gin.H{
			"error":      "Some items exceed current availability",
			"corrective": true,
			"message":    "Your order contained items whose requested quantity is out of stock. Cart quantities were adjusted.",
		})
		return
	}

	var statusErr *shopapi.StatusError
	if errors.As(err, &statusErr) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Upstream request failed",
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
