// Package cart implements the in-memory shopping cart: an insertion-ordered
// sequence of product lines with quantity and total computation.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/shopeasy/storefront/internal/client/models"
)

// Line pairs a product with the quantity in the cart. A cart never holds
// two lines for the same product id, and never a line with quantity < 1.
type Line struct {
	Product  models.Product
	Quantity int
}

// Subtotal is price multiplied by quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an insertion-ordered collection of lines. It is not safe for
// concurrent use; all mutation happens on the single event goroutine.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) find(productID int) int {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// Add puts one unit of the product into the cart. If a line for the product
// already exists its quantity is incremented, otherwise a new line is
// appended.
func (c *Cart) Add(p models.Product) {
	if i := c.find(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// SetQuantity sets the quantity of an existing line, preserving its
// position. A quantity of 0 (or less) removes the line. Unknown product ids
// are ignored.
func (c *Cart) SetQuantity(productID int, quantity int) {
	i := c.find(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	c.lines[i].Quantity = quantity
}

// Remove drops the line for the product id. No-op if absent.
func (c *Cart) Remove(productID int) {
	if i := c.find(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len reports the number of lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// ItemCount is the sum of quantities across all lines (the cart badge).
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// TotalDecimal is the exact sum of price * quantity across all lines.
func (c *Cart) TotalDecimal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Total formats the cart total with exactly two decimal places.
func (c *Cart) Total() string {
	return c.TotalDecimal().StringFixed(2)
}

// Items snapshots the cart as order items for submission.
func (c *Cart) Items() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.OrderItem{Product: l.Product, Quantity: l.Quantity})
	}
	return items
}
