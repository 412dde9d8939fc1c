// internal/domain/catalog/sort.go
package catalog

import "sort"

// Sorting selects the order in which a filtered item list is rendered
type Sorting string

const (
	SortPopular   Sorting = "popular"
	SortNew       Sorting = "new"
	SortOld       Sorting = "old"
	SortExpensive Sorting = "expensive"
	SortCheap     Sorting = "cheap"
)

// Valid reports whether s is a known sort key
func (s Sorting) Valid() bool {
	switch s {
	case SortPopular, SortNew, SortOld, SortExpensive, SortCheap:
		return true
	}
	return false
}

// SortItems returns items ordered by the given sort key. Sorting is stable:
// ties keep the input (catalog) order. The input slice is not modified.
func SortItems(items []Item, sorting Sorting) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)

	switch sorting {
	case SortPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Popularity > sorted[j].Popularity
		})
	case SortNew:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	case SortOld:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		})
	case SortExpensive:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case SortCheap:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	}

	return sorted
}

// ItemsToRender applies the filter predicate and then the sort key, yielding
// the list a catalog view renders. The result is always a subset of items.
func ItemsToRender(items []Item, predicate func(Item) bool, sorting Sorting) []Item {
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if predicate == nil || predicate(item) {
			filtered = append(filtered, item)
		}
	}
	return SortItems(filtered, sorting)
}
