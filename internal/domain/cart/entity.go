// internal/domain/cart/entity.go
package cart

import "github.com/your-org/storefront-gateway/internal/domain/catalog"

// UserItem is a single entry of the user's remote cart: an item id plus the
// quantity selected. The remote cart store owns it; the gateway only mirrors
// it for the duration of a request.
type UserItem struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

// Item is a display-ready cart line: the catalog snapshot joined with the
// user's quantity and the availability flag.
type Item struct {
	catalog.Item
	Quantity  int  `json:"quantity"`
	Available bool `json:"available"`
}

// Section is a named grouping of cart items sharing a display category.
// Sections are derived, never persisted, and recomputed whenever catalog,
// cart or availability data changes.
type Section struct {
	Title    string            `json:"title"`
	Preorder *catalog.Preorder `json:"preorder,omitempty"`
	Items    []Item            `json:"items"`
}

// Cart is the composed cart view: an ordered list of sections
type Cart struct {
	Sections []Section `json:"sections"`
}

// ItemIDs returns the ids of every item across all sections, in order
func (c Cart) ItemIDs() []string {
	var ids []string
	for _, section := range c.Sections {
		for _, item := range section.Items {
			ids = append(ids, item.ID)
		}
	}
	return ids
}
