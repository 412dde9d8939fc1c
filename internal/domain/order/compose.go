// internal/domain/order/compose.go
package order

import "github.com/your-org/storefront-gateway/internal/domain/catalog"

// ComposeItems joins the checkout-selected items with the catalog snapshot.
// A checkout line whose id is absent from the catalog yields a
// *NotFoundError; lines are never dropped silently.
func ComposeItems(checkout []CheckoutItem, catalogItems []catalog.Item) ([]Item, error) {
	index := make(map[string]catalog.Item, len(catalogItems))
	for _, item := range catalogItems {
		index[item.ID] = item
	}

	items := make([]Item, 0, len(checkout))
	for _, line := range checkout {
		catalogItem, ok := index[line.ID]
		if !ok {
			return nil, &NotFoundError{ItemID: line.ID}
		}
		items = append(items, Item{Item: catalogItem, Quantity: line.Quantity})
	}

	return items, nil
}

// ComputeTotals sums the effective per-item line totals under the current
// credit selection. TotalDiscount sums (discount or 0) x quantity over all
// items regardless of credit membership; views render it only when positive.
func ComputeTotals(items []Item, creditIDs catalog.IDSet) Totals {
	var totals Totals
	for _, item := range items {
		totals.TotalPrice += item.LineTotal(creditIDs)
		totals.TotalDiscount += item.DiscountValue() * int64(item.Quantity)
	}
	return totals
}

// SplitByCredit partitions order items into credit-eligible (carrying
// credit info) and the rest, preserving order.
func SplitByCredit(items []Item) (creditAvailable, creditUnavailable []Item) {
	for _, item := range items {
		if item.CreditInfo != nil {
			creditAvailable = append(creditAvailable, item)
		} else {
			creditUnavailable = append(creditUnavailable, item)
		}
	}
	return creditAvailable, creditUnavailable
}

// Packages emits one packaging unit per unit of quantity for every item
// with physical properties. Items without physical properties (digital or
// preorder-only listings) contribute no entries.
func Packages(items []Item) []catalog.PhysicalProperties {
	var packages []catalog.PhysicalProperties
	for _, item := range items {
		props := item.Product.PhysicalProperties
		if props == nil {
			continue
		}
		for i := 0; i < item.Quantity; i++ {
			packages = append(packages, *props)
		}
	}
	return packages
}

// Preorder returns the preorder designation of the order: the first item's
// preorder, or nil for a stock order. The remote API never mixes preorder
// and stock items in one checkout selection.
func Preorder(items []Item) *catalog.Preorder {
	if len(items) == 0 {
		return nil
	}
	return items[0].Item.Preorder
}
