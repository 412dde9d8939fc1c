// internal/domain/catalog/entity.go
package catalog

import "time"

// Item represents a purchasable catalog listing. Items are immutable
// per-session snapshots fetched from the remote commerce API and shared
// read-only by the cart, search and order views.
type Item struct {
	ID              string      `json:"id" validate:"required"`
	Product         Product     `json:"product" validate:"required"`
	Price           int64       `json:"price" validate:"gte=0"` // Price in minor currency units
	Discount        *int64      `json:"discount,omitempty"`
	Preorder        *Preorder   `json:"preorder,omitempty"`
	CreditInfo      *CreditInfo `json:"creditInfo,omitempty"`
	VariationIndex  *int        `json:"variationIndex,omitempty"`
	PublicationLink string      `json:"publicationLink"`
	Popularity      int         `json:"popularity"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Product holds the listing's product reference
type Product struct {
	Title              string              `json:"title" validate:"required"`
	Images             []Image             `json:"images" validate:"dive"`
	Tags               []string            `json:"tags,omitempty"`
	FilterGroups       []FilterGroup       `json:"filterGroups,omitempty" validate:"dive"`
	PhysicalProperties *PhysicalProperties `json:"physicalProperties,omitempty"`
}

// Image represents product media
type Image struct {
	URL string `json:"url" validate:"required"`
}

// PhysicalProperties describes one packaging unit of a physical product.
// Items without physical properties (digital or preorder-only listings)
// contribute no packaging units to delivery.
type PhysicalProperties struct {
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
	Length float64 `json:"length" validate:"gt=0"`
	Weight float64 `json:"weight" validate:"gt=0"` // Weight in grams
}

// Preorder marks an item purchasable ahead of physical stock arrival
type Preorder struct {
	ID              string  `json:"id" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	ExpectedArrival *string `json:"expectedArrival,omitempty"`
}

// CreditInfo describes the installment plan attached to an item
type CreditInfo struct {
	Payments []CreditPayment `json:"payments" validate:"min=1,dive"`
}

// CreditPayment is a single installment of a credit plan
type CreditPayment struct {
	Sum      int64  `json:"sum" validate:"gte=0"` // Amount in minor currency units
	Deadline string `json:"deadline"`
}

// FilterGroup is a facet attached to an item's product, e.g. "Brand"
type FilterGroup struct {
	ID     string        `json:"id" validate:"required"`
	Title  string        `json:"title" validate:"required"`
	Values []FilterValue `json:"values" validate:"dive"`
}

// FilterValue is a single selectable facet value
type FilterValue struct {
	ID    string `json:"id" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// FirstInstallment returns the first installment sum of the item's credit
// plan, or 0 when the item carries no credit info.
func (i *Item) FirstInstallment() int64 {
	if i.CreditInfo == nil || len(i.CreditInfo.Payments) == 0 {
		return 0
	}
	return i.CreditInfo.Payments[0].Sum
}

// DiscountValue returns the item discount, treating absent as zero
func (i *Item) DiscountValue() int64 {
	if i.Discount == nil {
		return 0
	}
	return *i.Discount
}

// IDSet is a read-only membership set of item ids
type IDSet map[string]struct{}

// NewIDSet builds an IDSet from a list of ids
func NewIDSet(ids []string) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Has reports whether id is in the set
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}
