// internal/domain/cart/compose.go
package cart

import "github.com/your-org/storefront-gateway/internal/domain/catalog"

// Stock section title for items purchasable from current stock
const stockSectionTitle = "In stock"

// FormCart joins the catalog snapshot, the user's cart entries and the set
// of currently available item ids into display-ready sections.
//
// The sections partition exactly the items present in both the catalog and
// the cart: stock items first, then one section per preorder in catalog
// order. An item missing from the availability set is still shown (so the
// view can render out-of-stock messaging); checkout eligibility is enforced
// at submission time, not here.
//
// When catalog or cart data is missing the result is an empty section list,
// never an error: callers distinguish "loading" from "empty" with explicit
// loading flags, not structure shape.
func FormCart(catalogItems []catalog.Item, userCart []UserItem, available catalog.IDSet) Cart {
	if len(catalogItems) == 0 || len(userCart) == 0 {
		return Cart{Sections: []Section{}}
	}

	quantities := make(map[string]int, len(userCart))
	for _, entry := range userCart {
		quantities[entry.ID] = entry.Quantity
	}

	var stock Section
	stock.Title = stockSectionTitle

	var preorderSections []Section
	preorderIndex := make(map[string]int)

	for _, item := range catalogItems {
		quantity, inCart := quantities[item.ID]
		if !inCart {
			continue
		}

		line := Item{
			Item:      item,
			Quantity:  quantity,
			Available: available.Has(item.ID),
		}

		if item.Preorder == nil {
			stock.Items = append(stock.Items, line)
			continue
		}

		idx, ok := preorderIndex[item.Preorder.ID]
		if !ok {
			idx = len(preorderSections)
			preorderIndex[item.Preorder.ID] = idx
			preorder := *item.Preorder
			preorderSections = append(preorderSections, Section{
				Title:    preorder.Title,
				Preorder: &preorder,
			})
		}
		preorderSections[idx].Items = append(preorderSections[idx].Items, line)
	}

	sections := make([]Section, 0, len(preorderSections)+1)
	if len(stock.Items) > 0 {
		sections = append(sections, stock)
	}
	sections = append(sections, preorderSections...)

	return Cart{Sections: sections}
}
