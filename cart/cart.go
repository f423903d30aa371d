// Package cart implements the shopping cart aggregator: quantity-keyed
// line items with display fields snapshotted at add time.
package cart

import "faithshop/models"

// Cart holds at most one line per product id, in insertion order.
// A Cart is not safe for concurrent use; Store serialises access.
type Cart struct {
	lines []models.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add merges qty into an existing line for the product or appends a new
// line snapshotting name, price and image. qty below 1 is treated as 1.
func (c *Cart) Add(p models.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	id := p.ID.Hex()
	for i := range c.lines {
		if c.lines[i].ProductID == id {
			c.lines[i].Quantity += qty
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ProductID: id,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Quantity:  qty,
	})
}

// Remove drops the line for the product id. Removing an absent id is a
// no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites the line's quantity; zero or less removes the
// line. Setting an absent id is a no-op.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Total sums price*quantity over all lines using snapshotted prices.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count sums all quantities, for the cart-size badge.
func (c *Cart) Count() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Lines returns a copy of the line items in insertion order.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
