// internal/domain/order/compose_test.go
package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-gateway/internal/domain/catalog"
)

func orderCatalog() []catalog.Item {
	discount := int64(1000)

	return []catalog.Item{
		{
			ID:    "guitar",
			Price: 10000,
			CreditInfo: &catalog.CreditInfo{
				Payments: []catalog.CreditPayment{
					{Sum: 6000, Deadline: "2025-04-01"},
					{Sum: 4000, Deadline: "2025-05-01"},
				},
			},
			Product: catalog.Product{
				Title:              "Guitar",
				PhysicalProperties: &catalog.PhysicalProperties{Width: 40, Height: 110, Length: 15, Weight: 4500},
			},
		},
		{
			ID:       "strings",
			Price:    5000,
			Discount: &discount,
			Product: catalog.Product{
				Title:              "Strings",
				PhysicalProperties: &catalog.PhysicalProperties{Width: 12, Height: 12, Length: 2, Weight: 80},
			},
		},
		{
			ID:      "ebook",
			Price:   2000,
			Product: catalog.Product{Title: "Songbook (digital)"},
		},
	}
}

func TestComposeItems(t *testing.T) {
	catalogItems := orderCatalog()

	t.Run("joins checkout lines with the catalog", func(t *testing.T) {
		items, err := ComposeItems([]CheckoutItem{
			{ID: "strings", Quantity: 3},
			{ID: "guitar", Quantity: 1},
		}, catalogItems)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "strings", items[0].ID)
		assert.Equal(t, 3, items[0].Quantity)
		assert.Equal(t, int64(5000), items[0].Price)
		assert.Equal(t, "guitar", items[1].ID)
	})

	t.Run("missing catalog reference fails loudly", func(t *testing.T) {
		items, err := ComposeItems([]CheckoutItem{
			{ID: "guitar", Quantity: 1},
			{ID: "vanished", Quantity: 1},
		}, catalogItems)

		require.Error(t, err)
		assert.Nil(t, items)

		var notFound *NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "vanished", notFound.ItemID)
	})

	t.Run("empty checkout composes to empty", func(t *testing.T) {
		items, err := ComposeItems(nil, catalogItems)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestComputeTotals(t *testing.T) {
	catalogItems := orderCatalog()

	compose := func(t *testing.T, lines ...CheckoutItem) []Item {
		t.Helper()
		items, err := ComposeItems(lines, catalogItems)
		require.NoError(t, err)
		return items
	}

	t.Run("no credit selection sums price times quantity", func(t *testing.T) {
		// guitar 10000x2 + strings 5000x1
		items := compose(t, CheckoutItem{ID: "guitar", Quantity: 2}, CheckoutItem{ID: "strings", Quantity: 1})

		totals := ComputeTotals(items, nil)
		assert.Equal(t, int64(25000), totals.TotalPrice)
	})

	t.Run("credit-opted item contributes first installment per unit", func(t *testing.T) {
		items := compose(t, CheckoutItem{ID: "guitar", Quantity: 1}, CheckoutItem{ID: "strings", Quantity: 1})

		totals := ComputeTotals(items, catalog.NewIDSet([]string{"guitar"}))
		// 6000x1 + 5000x1
		assert.Equal(t, int64(11000), totals.TotalPrice)
	})

	t.Run("credit pricing scales with quantity", func(t *testing.T) {
		items := compose(t, CheckoutItem{ID: "guitar", Quantity: 2}, CheckoutItem{ID: "strings", Quantity: 1})

		totals := ComputeTotals(items, catalog.NewIDSet([]string{"guitar"}))
		// 6000x2 + 5000x1
		assert.Equal(t, int64(17000), totals.TotalPrice)
	})

	t.Run("credit toggle leaves other items untouched", func(t *testing.T) {
		items := compose(t, CheckoutItem{ID: "guitar", Quantity: 1}, CheckoutItem{ID: "strings", Quantity: 2})

		without := ComputeTotals(items, nil)
		with := ComputeTotals(items, catalog.NewIDSet([]string{"guitar"}))

		// Only the guitar line moved: 10000 -> 6000
		assert.Equal(t, without.TotalPrice-4000, with.TotalPrice)
	})

	t.Run("discount totals ignore credit membership", func(t *testing.T) {
		items := compose(t, CheckoutItem{ID: "strings", Quantity: 2}, CheckoutItem{ID: "guitar", Quantity: 1})

		totals := ComputeTotals(items, catalog.NewIDSet([]string{"strings"}))
		assert.Equal(t, int64(2000), totals.TotalDiscount)
	})
}

func TestSplitByCredit(t *testing.T) {
	items, err := ComposeItems([]CheckoutItem{
		{ID: "guitar", Quantity: 1},
		{ID: "strings", Quantity: 1},
		{ID: "ebook", Quantity: 1},
	}, orderCatalog())
	require.NoError(t, err)

	creditAvailable, creditUnavailable := SplitByCredit(items)

	require.Len(t, creditAvailable, 1)
	assert.Equal(t, "guitar", creditAvailable[0].ID)

	require.Len(t, creditUnavailable, 2)
	assert.Equal(t, "strings", creditUnavailable[0].ID)
	assert.Equal(t, "ebook", creditUnavailable[1].ID)
}

func TestPackages(t *testing.T) {
	catalogItems := orderCatalog()

	t.Run("one entry per quantity unit", func(t *testing.T) {
		items, err := ComposeItems([]CheckoutItem{
			{ID: "guitar", Quantity: 2},
			{ID: "strings", Quantity: 3},
		}, catalogItems)
		require.NoError(t, err)

		packages := Packages(items)
		require.Len(t, packages, 5)
		assert.Equal(t, float64(4500), packages[0].Weight)
		assert.Equal(t, float64(4500), packages[1].Weight)
		assert.Equal(t, float64(80), packages[2].Weight)
	})

	t.Run("items without physical properties contribute nothing", func(t *testing.T) {
		items, err := ComposeItems([]CheckoutItem{{ID: "ebook", Quantity: 4}}, catalogItems)
		require.NoError(t, err)

		assert.Empty(t, Packages(items))
	})
}

func TestPreorder(t *testing.T) {
	t.Run("stock order has no preorder", func(t *testing.T) {
		items, err := ComposeItems([]CheckoutItem{{ID: "guitar", Quantity: 1}}, orderCatalog())
		require.NoError(t, err)
		assert.Nil(t, Preorder(items))
	})

	t.Run("preorder order reports the shared preorder", func(t *testing.T) {
		drop := catalog.Preorder{ID: "spring-drop", Title: "Spring Drop"}
		items := []Item{
			{Item: catalog.Item{ID: "drum", Preorder: &drop}, Quantity: 1},
			{Item: catalog.Item{ID: "amp", Preorder: &drop}, Quantity: 2},
		}

		got := Preorder(items)
		require.NotNil(t, got)
		assert.Equal(t, "spring-drop", got.ID)
	})

	t.Run("empty order", func(t *testing.T) {
		assert.Nil(t, Preorder(nil))
	})
}
