// internal/domain/catalog/search.go
package catalog

import "strings"

// MatchQuery reports whether an item matches a free-text search query.
// Matching is case-insensitive over the product title and tags; an empty
// query matches everything.
func MatchQuery(item Item, query string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(item.Product.Title), query) {
		return true
	}

	for _, tag := range item.Product.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

// SearchItems returns the subset of items matching query, in catalog order
func SearchItems(items []Item, query string) []Item {
	matched := make([]Item, 0, len(items))
	for _, item := range items {
		if MatchQuery(item, query) {
			matched = append(matched, item)
		}
	}
	return matched
}
