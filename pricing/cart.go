// Package pricing owns the session cart and its derived totals. All
// money arithmetic runs on decimals; amounts are rendered to two decimal
// places only at the response boundary.
package pricing

import (
	"github.com/shopspring/decimal"

	"storefront-service/models"
)

var (
	// Flat shipping rate applied whenever the cart is non-empty. There is
	// no free-shipping threshold in the fee itself; the $100 eligibility
	// flag on the summary is display data only.
	flatShippingFee       = decimal.RequireFromString("5.99")
	freeShippingThreshold = decimal.NewFromInt(100)
)

// Cart is an ordered collection of line items keyed by product ID.
// It is session-scoped and not safe for concurrent use; each request
// works on its own instance rebuilt from the session store.
type Cart struct {
	lines []models.CartLine
	index map[int]int
}

// NewCart builds a cart from stored lines, preserving their order.
func NewCart(lines ...models.CartLine) *Cart {
	c := &Cart{
		lines: make([]models.CartLine, 0, len(lines)),
		index: make(map[int]int, len(lines)),
	}
	for _, l := range lines {
		c.AddLine(l)
	}
	return c
}

// AddLine appends a line. The caller guarantees the product ID is not
// already present; the engine does not enforce uniqueness.
func (c *Cart) AddLine(line models.CartLine) {
	c.index[line.ProductID] = len(c.lines)
	c.lines = append(c.lines, line)
}

// Line returns the line for the given product ID.
func (c *Cart) Line(id int) (models.CartLine, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.CartLine{}, false
	}
	return c.lines[i], true
}

// UpdateQuantity replaces a line's quantity. Quantities below 1 are
// silently rejected rather than clamped; unknown IDs are a no-op.
func (c *Cart) UpdateQuantity(id, quantity int) {
	if quantity < 1 {
		return
	}
	i, ok := c.index[id]
	if !ok {
		return
	}
	c.lines[i].Quantity = quantity
}

// RemoveLine deletes a line. Removing an absent ID is a no-op, so the
// operation is idempotent.
func (c *Cart) RemoveLine(id int) {
	i, ok := c.index[id]
	if !ok {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].ProductID] = j
	}
}

// Lines returns the lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// TotalSavings sums (originalPrice - unitPrice) * quantity over lines
// that carry an original price. The delta is not clamped: bad catalog
// data with unitPrice above originalPrice passes through as negative.
func (c *Cart) TotalSavings() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		if l.OriginalPrice == nil {
			continue
		}
		delta := l.OriginalPrice.Sub(l.UnitPrice)
		total = total.Add(delta.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// ShippingFee is the flat rate for any non-empty cart, zero otherwise.
func (c *Cart) ShippingFee() decimal.Decimal {
	if c.Subtotal().IsPositive() {
		return flatShippingFee
	}
	return decimal.Zero
}

// GrandTotal is subtotal plus shipping. Savings are informational: the
// discount already lives inside the unit price, so subtracting them here
// would double-count.
func (c *Cart) GrandTotal() decimal.Decimal {
	return c.Subtotal().Add(c.ShippingFee())
}

// Summary renders the derived totals for display.
func (c *Cart) Summary() models.CartSummary {
	subtotal := c.Subtotal()
	return models.CartSummary{
		Subtotal:             subtotal.StringFixed(2),
		Savings:              c.TotalSavings().StringFixed(2),
		Shipping:             c.ShippingFee().StringFixed(2),
		Total:                c.GrandTotal().StringFixed(2),
		FreeShippingEligible: subtotal.GreaterThanOrEqual(freeShippingThreshold),
	}
}
