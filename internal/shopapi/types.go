// internal/shopapi/types.go
package shopapi

import (
	"time"

	"github.com/your-org/storefront-gateway/internal/domain/cart"
	"github.com/your-org/storefront-gateway/internal/domain/catalog"
	"github.com/your-org/storefront-gateway/internal/domain/order"
)

// CatalogResponse is the full catalog snapshot for the session
type CatalogResponse struct {
	Items []catalog.Item `json:"items" validate:"dive"`
}

// AvailabilityResponse lists the ids of items currently in stock
type AvailabilityResponse struct {
	Items []string `json:"items" validate:"dive,required"`
}

// CartResponse is the user's remote cart contents
type CartResponse struct {
	Items []cart.UserItem `json:"items" validate:"dive"`
}

// FavoritesResponse lists the user's favorite item ids
type FavoritesResponse struct {
	Items []string `json:"items" validate:"dive,required"`
}

// CheckoutItemsResponse is the current checkout selection
type CheckoutItemsResponse struct {
	Items []order.CheckoutItem `json:"items" validate:"dive"`
}

// CheckoutRequest moves cart items into the checkout selection
type CheckoutRequest struct {
	Items []cart.UserItem `json:"items" binding:"required,min=1,dive"`
}

// CreateOrderResponse carries the payment redirect for a created order
type CreateOrderResponse struct {
	PaymentURL string `json:"paymentUrl" validate:"required,url"`
}

// SavedDeliveryResponse is the user's saved delivery profile; Delivery is
// nil when the user has never saved one.
type SavedDeliveryResponse struct {
	Delivery *order.Delivery `json:"delivery"`
}

// ProfileOrder is one order in the user's order history
type ProfileOrder struct {
	ID         string               `json:"id" validate:"required"`
	Status     string               `json:"status" validate:"required"`
	CreatedAt  time.Time            `json:"createdAt"`
	Items      []order.CheckoutItem `json:"items" validate:"dive"`
	TotalPrice int64                `json:"totalPrice" validate:"gte=0"`
}

// OrderListResponse is the user's order history
type OrderListResponse struct {
	Items []ProfileOrder `json:"items" validate:"dive"`
}

// OrderResponse is a single order from the user's history
type OrderResponse struct {
	Order ProfileOrder `json:"order"`
}
