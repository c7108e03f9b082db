package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	products := All()
	assert.Len(t, products, 8)
	assert.Equal(t, "Buddy the Bear", products[0].Name)
	assert.Equal(t, "Learning Blocks", products[7].Name)
}

func TestGet(t *testing.T) {
	p, ok := Get(4)
	assert.True(t, ok)
	assert.Equal(t, "Robot Friend", p.Name)
	assert.Equal(t, "109.99", p.Price.StringFixed(2))

	_, ok = Get(99)
	assert.False(t, ok)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"All", "Toys", "Educational", "Electronics", "Accessories"}, Categories())
}

func TestFilter(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		assert.Len(t, Filter("", ""), 8)
		assert.Len(t, Filter("All", ""), 8)
	})

	t.Run("By Category", func(t *testing.T) {
		toys := Filter("Toys", "")
		assert.Len(t, toys, 3)
		for _, p := range toys {
			assert.Equal(t, "Toys", p.Category)
		}
	})

	t.Run("By Query", func(t *testing.T) {
		got := Filter("", "elephant")
		assert.Len(t, got, 1)
		assert.Equal(t, "Smart Elephant", got[0].Name)

		// Brand and category are searched too.
		assert.NotEmpty(t, Filter("", "tech toys"))
		assert.NotEmpty(t, Filter("", "educational"))
	})

	t.Run("Category And Query", func(t *testing.T) {
		got := Filter("Educational", "space")
		assert.Len(t, got, 1)
		assert.Equal(t, "Space Buddy", got[0].Name)

		assert.Empty(t, Filter("Toys", "space"))
	})

	t.Run("No Match", func(t *testing.T) {
		assert.Empty(t, Filter("", "no-such-product"))
	})
}

// The discount badge and the price delta are independent representations
// of the same markdown. Totals only ever use the price delta; this pins
// the seeded data to the points where both representations agree so a
// future edit that breaks one of them shows up here.
func TestSeededDiscountConsistency(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	for _, p := range All() {
		if p.OriginalPrice == nil {
			assert.Zero(t, p.Discount, "product %d has a badge but no original price", p.ID)
			continue
		}
		delta := p.OriginalPrice.Sub(p.Price)
		assert.True(t, delta.IsPositive(), "product %d original price below unit price", p.ID)

		pct := delta.Div(*p.OriginalPrice).Mul(hundred).Round(0).IntPart()
		assert.Equal(t, int64(p.Discount), pct, "product %d badge disagrees with price delta", p.ID)
	}
}
