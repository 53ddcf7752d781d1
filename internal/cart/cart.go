package cart

import (
	"github.com/lgpharma/herbal-shop-backend/internal/catalog"
)

// Line is a product snapshot plus the quantity of it held in the cart.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds at most one line per product id, in insertion order.
// Quantity never drops below 1; removal is an explicit operation.
type Cart struct {
	lines []Line
}

// Add inserts a new line with quantity 1, or increments the existing
// line for the same product.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// UpdateQuantity applies a delta to a line's quantity, clamped at 1.
// Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id string, delta int) {
	for i := range c.lines {
		if c.lines[i].Product.ID == id {
			q := c.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.lines[i].Quantity = q
			return
		}
	}
}

// Remove deletes the line for the product id if present.
func (c *Cart) Remove(id string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Used after an order completes.
func (c *Cart) Clear() {
	c.lines = nil
}

// Contains reports whether the cart holds a line for the product id.
func (c *Cart) Contains(id string) bool {
	for _, l := range c.lines {
		if l.Product.ID == id {
			return true
		}
	}
	return false
}

// Subtotal is the sum of price times quantity over all lines.
func (c *Cart) Subtotal() int {
	total := 0
	for _, l := range c.lines {
		total += l.Product.Price * l.Quantity
	}
	return total
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
