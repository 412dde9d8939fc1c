// internal/domain/cart/compose_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-gateway/internal/domain/catalog"
)

func cartCatalog() []catalog.Item {
	drop := catalog.Preorder{ID: "spring-drop", Title: "Spring Drop"}
	batch := catalog.Preorder{ID: "summer-batch", Title: "Summer Batch"}

	return []catalog.Item{
		{ID: "guitar", Price: 50000, Product: catalog.Product{Title: "Guitar"}},
		{ID: "drum", Price: 30000, Product: catalog.Product{Title: "Drum"}, Preorder: &drop},
		{ID: "bass", Price: 70000, Product: catalog.Product{Title: "Bass"}},
		{ID: "synth", Price: 90000, Product: catalog.Product{Title: "Synth"}, Preorder: &batch},
		{ID: "amp", Price: 20000, Product: catalog.Product{Title: "Amp"}, Preorder: &drop},
	}
}

func TestFormCart(t *testing.T) {
	items := cartCatalog()

	t.Run("partitions into stock then preorder sections", func(t *testing.T) {
		userCart := []UserItem{
			{ID: "drum", Quantity: 1},
			{ID: "guitar", Quantity: 2},
			{ID: "synth", Quantity: 1},
			{ID: "amp", Quantity: 3},
		}
		available := catalog.NewIDSet([]string{"guitar", "drum", "synth", "amp"})

		result := FormCart(items, userCart, available)

		require.Len(t, result.Sections, 3)

		assert.Equal(t, "In stock", result.Sections[0].Title)
		assert.Nil(t, result.Sections[0].Preorder)
		require.Len(t, result.Sections[0].Items, 1)
		assert.Equal(t, "guitar", result.Sections[0].Items[0].ID)
		assert.Equal(t, 2, result.Sections[0].Items[0].Quantity)

		// Preorder sections follow catalog order of first appearance
		assert.Equal(t, "Spring Drop", result.Sections[1].Title)
		require.NotNil(t, result.Sections[1].Preorder)
		assert.Equal(t, []string{"drum", "amp"}, sectionIDs(result.Sections[1]))

		assert.Equal(t, "Summer Batch", result.Sections[2].Title)
		assert.Equal(t, []string{"synth"}, sectionIDs(result.Sections[2]))
	})

	t.Run("sections contain exactly the catalog-cart intersection", func(t *testing.T) {
		userCart := []UserItem{
			{ID: "guitar", Quantity: 1},
			{ID: "vanished", Quantity: 2}, // no longer in the catalog
		}

		result := FormCart(items, userCart, nil)

		assert.Equal(t, []string{"guitar"}, result.ItemIDs())
	})

	t.Run("unavailable items stay visible and flagged", func(t *testing.T) {
		userCart := []UserItem{
			{ID: "guitar", Quantity: 1},
			{ID: "bass", Quantity: 1},
		}
		available := catalog.NewIDSet([]string{"guitar"})

		result := FormCart(items, userCart, available)

		require.Len(t, result.Sections, 1)
		require.Len(t, result.Sections[0].Items, 2)
		assert.True(t, result.Sections[0].Items[0].Available)
		assert.False(t, result.Sections[0].Items[1].Available)
	})

	t.Run("stock section omitted when no stock items in cart", func(t *testing.T) {
		userCart := []UserItem{{ID: "drum", Quantity: 1}}

		result := FormCart(items, userCart, nil)

		require.Len(t, result.Sections, 1)
		assert.Equal(t, "Spring Drop", result.Sections[0].Title)
	})

	t.Run("missing catalog yields empty sections", func(t *testing.T) {
		result := FormCart(nil, []UserItem{{ID: "guitar", Quantity: 1}}, nil)
		require.NotNil(t, result.Sections)
		assert.Empty(t, result.Sections)
	})

	t.Run("empty cart yields empty sections", func(t *testing.T) {
		result := FormCart(items, nil, nil)
		require.NotNil(t, result.Sections)
		assert.Empty(t, result.Sections)
	})
}

func sectionIDs(s Section) []string {
	out := make([]string, len(s.Items))
	for i, item := range s.Items {
		out[i] = item.ID
	}
	return out
}
