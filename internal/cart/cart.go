// Package cart implements the visitor shopping cart: an ordered list of
// line items keyed by product identifier, with derived totals.
package cart

// Item is the payload added from a listing view. Quantity is managed by
// the cart itself.
type Item struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image,omitempty"`
}

// Line is one row of the cart. Quantity is always >= 1 while the line
// exists; a quantity update that would reach 0 removes the line instead.
type Line struct {
	Item
	Quantity int64 `json:"quantity"`
}

// Cart preserves insertion order of first-seen product identifiers.
// All mutations are synchronous and either fully apply or leave the
// cart unchanged. The zero value is not usable; call New.
type Cart struct {
	lines []Line
	index map[string]int
}

func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add appends a new line with quantity 1, or increments the quantity of
// the existing line with the same product identifier.
func (c *Cart) Add(item Item) {
	if i, ok := c.index[item.ProductID]; ok {
		c.lines[i].Quantity++
		return
	}
	c.index[item.ProductID] = len(c.lines)
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
}

// SetQuantity sets the line's quantity to exactly n. n <= 0 removes the
// line. Unknown product identifiers are a no-op.
func (c *Cart) SetQuantity(productID string, n int64) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	if n <= 0 {
		c.removeAt(i)
		return
	}
	c.lines[i].Quantity = n
}

// Remove drops the line if present; no-op otherwise.
func (c *Cart) Remove(productID string) {
	if i, ok := c.index[productID]; ok {
		c.removeAt(i)
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[string]int)
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int64 {
	var n int64
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the sum of unit price times quantity over all lines.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) removeAt(i int) {
	delete(c.index, c.lines[i].ProductID)
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].ProductID] = j
	}
}
