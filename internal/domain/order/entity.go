// internal/domain/order/entity.go
package order

import (
	"fmt"

	"github.com/your-org/storefront-gateway/internal/domain/catalog"
)

// CheckoutItem is an item id plus quantity selected for the current order
// attempt, as returned by the remote checkout selection endpoint.
type CheckoutItem struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

// Item is a catalog item merged with its checkout quantity. Derived per
// checkout session, never persisted.
type Item struct {
	catalog.Item
	Quantity int `json:"quantity"`
}

// LineTotal returns the item's contribution to the order total under the
// given credit selection: credit-opted items contribute the first
// installment sum per unit, others the unit price.
func (i Item) LineTotal(creditIDs catalog.IDSet) int64 {
	if creditIDs.Has(i.ID) {
		return i.FirstInstallment() * int64(i.Quantity)
	}
	return i.Price * int64(i.Quantity)
}

// Totals is the aggregate pricing of an order under a credit selection
type Totals struct {
	TotalPrice    int64 `json:"totalPrice"`
	TotalDiscount int64 `json:"totalDiscount"`
}

// NotFoundError reports a checkout line referencing a catalog id that is
// absent from the catalog snapshot. This is a hard referential
// inconsistency: composition fails loudly instead of silently dropping the
// line, since a dropped line would corrupt the displayed total.
type NotFoundError struct {
	ItemID string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("catalog item %q referenced by checkout not found", e.ItemID)
}
