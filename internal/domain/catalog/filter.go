// internal/domain/catalog/filter.go
package catalog

// PriceRange is an inclusive price interval in minor currency units
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Selection carries the user's current filter choices. It lives only for
// the duration of a request and is applied on top of a Filters taxonomy.
type Selection struct {
	Checked       map[string][]string `json:"checked,omitempty"` // group id -> checked value ids
	PriceRange    *PriceRange         `json:"priceRange,omitempty"`
	AvailableOnly bool                `json:"availableOnly,omitempty"`
	PreorderID    *string             `json:"preorderId,omitempty"`
}

// Filters derives a facet taxonomy from a slice of search-matched items and
// evaluates the user's selection against single items. Sorting is not filter
// state: Reset clears the selection and leaves sorting untouched.
type Filters struct {
	FilterGroupList []FilterGroup
	PreorderList    []Preorder
	PriceBounds     PriceRange

	available IDSet

	checked       map[string]IDSet
	priceRange    *PriceRange
	availableOnly bool
	preorderID    *string
}

// NewFilters computes the filter taxonomy for items
func NewFilters(items []Item, available IDSet) *Filters {
	f := &Filters{
		available: available,
		checked:   make(map[string]IDSet),
	}

	groupIndex := make(map[string]int)
	seenValues := make(map[string]IDSet)
	seenPreorders := make(map[string]struct{})

	for i, item := range items {
		if i == 0 {
			f.PriceBounds = PriceRange{Min: item.Price, Max: item.Price}
		} else {
			if item.Price < f.PriceBounds.Min {
				f.PriceBounds.Min = item.Price
			}
			if item.Price > f.PriceBounds.Max {
				f.PriceBounds.Max = item.Price
			}
		}

		if item.Preorder != nil {
			if _, ok := seenPreorders[item.Preorder.ID]; !ok {
				seenPreorders[item.Preorder.ID] = struct{}{}
				f.PreorderList = append(f.PreorderList, *item.Preorder)
			}
		}

		for _, group := range item.Product.FilterGroups {
			idx, ok := groupIndex[group.ID]
			if !ok {
				idx = len(f.FilterGroupList)
				groupIndex[group.ID] = idx
				f.FilterGroupList = append(f.FilterGroupList, FilterGroup{ID: group.ID, Title: group.Title})
				seenValues[group.ID] = make(IDSet)
			}
			for _, value := range group.Values {
				if !seenValues[group.ID].Has(value.ID) {
					seenValues[group.ID][value.ID] = struct{}{}
					f.FilterGroupList[idx].Values = append(f.FilterGroupList[idx].Values, value)
				}
			}
		}
	}

	return f
}

// Apply replaces the current selection wholesale
func (f *Filters) Apply(sel Selection) {
	f.Reset()
	for groupID, valueIDs := range sel.Checked {
		for _, valueID := range valueIDs {
			f.ToggleFilter(groupID, valueID)
		}
	}
	f.priceRange = sel.PriceRange
	f.availableOnly = sel.AvailableOnly
	f.preorderID = sel.PreorderID
}

// ToggleFilter checks or unchecks a facet value
func (f *Filters) ToggleFilter(groupID, valueID string) {
	set, ok := f.checked[groupID]
	if !ok {
		set = make(IDSet)
		f.checked[groupID] = set
	}
	if set.Has(valueID) {
		delete(set, valueID)
		if len(set) == 0 {
			delete(f.checked, groupID)
		}
		return
	}
	set[valueID] = struct{}{}
}

// Checked reports whether a facet value is currently selected
func (f *Filters) Checked(groupID, valueID string) bool {
	return f.checked[groupID].Has(valueID)
}

// ToggleAvailability flips the in-stock-only toggle
func (f *Filters) ToggleAvailability() {
	f.availableOnly = !f.availableOnly
}

// SetPreorderID selects a preorder to filter by; nil clears the selection
func (f *Filters) SetPreorderID(id *string) {
	f.preorderID = id
}

// SetPriceRange restricts items to an inclusive price interval
func (f *Filters) SetPriceRange(min, max int64) {
	f.priceRange = &PriceRange{Min: min, Max: max}
}

// Reset clears every filter selection back to "no filter applied"
func (f *Filters) Reset() {
	f.checked = make(map[string]IDSet)
	f.priceRange = nil
	f.availableOnly = false
	f.preorderID = nil
}

// Predicate returns the filter function evaluating the current selection
// against a single item.
func (f *Filters) Predicate() func(Item) bool {
	// Snapshot the selection so the closure stays pure with respect to
	// later mutations of f.
	checked := make(map[string]IDSet, len(f.checked))
	for groupID, set := range f.checked {
		copied := make(IDSet, len(set))
		for id := range set {
			copied[id] = struct{}{}
		}
		checked[groupID] = copied
	}
	priceRange := f.priceRange
	availableOnly := f.availableOnly
	preorderID := f.preorderID
	available := f.available

	return func(item Item) bool {
		if availableOnly && !available.Has(item.ID) {
			return false
		}

		if preorderID != nil {
			if item.Preorder == nil || item.Preorder.ID != *preorderID {
				return false
			}
		}

		if priceRange != nil {
			if item.Price < priceRange.Min || item.Price > priceRange.Max {
				return false
			}
		}

		for groupID, wanted := range checked {
			if !itemHasAnyValue(item, groupID, wanted) {
				return false
			}
		}

		return true
	}
}

func itemHasAnyValue(item Item, groupID string, wanted IDSet) bool {
	for _, group := range item.Product.FilterGroups {
		if group.ID != groupID {
			continue
		}
		for _, value := range group.Values {
			if wanted.Has(value.ID) {
				return true
			}
		}
	}
	return false
}
