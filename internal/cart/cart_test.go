package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(id string, price float64) Item {
	return Item{ProductID: id, Name: "product " + id, UnitPrice: price}
}

func TestCart_Add_NewLineStartsAtOne(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))

	lines := c.Lines()
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, int64(1), lines[0].Quantity)
	assert.Equal(t, "p1", lines[0].ProductID)
}

func TestCart_Add_SameProductIncrements(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))
	c.Add(item("p1", 100))
	c.Add(item("p1", 100))

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(3), c.Lines()[0].Quantity)
	assert.Equal(t, int64(3), c.TotalItems())
}

func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))
	c.Add(item("p2", 50))
	c.Add(item("p3", 25))
	c.Add(item("p2", 50)) // increment must not reorder

	lines := c.Lines()
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{lines[0].ProductID, lines[1].ProductID, lines[2].ProductID})
}

func TestCart_SetQuantity_Exact(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))

	c.SetQuantity("p1", 7)
	assert.Equal(t, int64(7), c.Lines()[0].Quantity)
}

func TestCart_SetQuantity_ZeroRemovesLine(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))
	c.Add(item("p2", 50))

	c.SetQuantity("p1", 0)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "p2", c.Lines()[0].ProductID)
}

func TestCart_SetQuantity_NegativeRemovesLine(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))

	c.SetQuantity("p1", -3)
	assert.Equal(t, 0, c.Len())
}

func TestCart_SetQuantity_UnknownProductNoop(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))

	c.SetQuantity("missing", 5)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(1), c.TotalItems())
}

func TestCart_Remove(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))
	c.Add(item("p2", 50))
	c.Add(item("p3", 25))

	c.Remove("p2")
	lines := c.Lines()
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "p3", lines[1].ProductID)

	// index stays consistent after the middle removal
	c.SetQuantity("p3", 4)
	assert.Equal(t, int64(4), c.Lines()[1].Quantity)
}

func TestCart_Remove_UnknownNoop(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))

	c.Remove("missing")
	assert.Equal(t, 1, c.Len())
}

func TestCart_Totals(t *testing.T) {
	c := New()
	c.Add(item("p1", 100)) // 1 x 100
	c.Add(item("p2", 50))
	c.SetQuantity("p2", 3) // 3 x 50

	assert.Equal(t, int64(4), c.TotalItems())
	assert.InDelta(t, 250.0, c.TotalPrice(), 1e-9)
}

func TestCart_Totals_EmptyCart(t *testing.T) {
	c := New()
	assert.Equal(t, int64(0), c.TotalItems())
	assert.Equal(t, 0.0, c.TotalPrice())
	assert.Equal(t, 0, c.Len())
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))
	c.Add(item("p2", 50))

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.TotalItems())

	// the cart stays usable after a clear
	c.Add(item("p1", 100))
	assert.Equal(t, 1, c.Len())
}

func TestCart_AddAfterRemove_StartsFresh(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))
	c.SetQuantity("p1", 5)
	c.Remove("p1")

	c.Add(item("p1", 100))
	assert.Equal(t, int64(1), c.Lines()[0].Quantity)
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	c := New()
	c.Add(item("p1", 100))

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, int64(1), c.Lines()[0].Quantity)
}
