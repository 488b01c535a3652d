package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/sportsstore-go/internal/catalog"
)

func product(id int64, name, price string) catalog.Product {
	return catalog.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

func TestAddItem_MergesSameProduct(t *testing.T) {
	kayak := product(1, "Kayak", "275.00")

	c := New()
	require.NoError(t, c.AddItem(kayak, 1))
	require.NoError(t, c.AddItem(kayak, 1))

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Quantity)
	require.True(t, c.Total().Equal(decimal.RequireFromString("550.00")), "total = %s", c.Total())
}

func TestAddItem_KeepsInsertionOrder(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(product(2, "Lifejacket", "48.95"), 1))
	require.NoError(t, c.AddItem(product(1, "Kayak", "275.00"), 3))
	require.NoError(t, c.AddItem(product(2, "Lifejacket", "48.95"), 2))

	lines := c.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, int64(2), lines[0].Product.ID)
	require.Equal(t, 3, lines[0].Quantity)
	require.Equal(t, int64(1), lines[1].Product.ID)
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	c := New()
	require.ErrorIs(t, c.AddItem(product(1, "Kayak", "275.00"), 0), ErrInvalidQuantity)
	require.ErrorIs(t, c.AddItem(product(1, "Kayak", "275.00"), -2), ErrInvalidQuantity)
	require.Empty(t, c.Lines())
}

func TestRemoveLine(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(product(1, "Kayak", "275.00"), 1))
	require.NoError(t, c.AddItem(product(3, "Soccer Ball", "19.50"), 2))

	c.RemoveLine(1)
	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, int64(3), lines[0].Product.ID)

	// removing an absent product changes nothing
	c.RemoveLine(42)
	require.Equal(t, lines, c.Lines())
}

func TestTotal_EmptyCartIsZero(t *testing.T) {
	c := New()
	require.True(t, c.Total().IsZero())
}

func TestTotal_SumsQuantityTimesPrice(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(product(1, "Kayak", "275.00"), 2))
	require.NoError(t, c.AddItem(product(2, "Lifejacket", "48.95"), 3))

	want := decimal.RequireFromString("696.85")
	require.True(t, c.Total().Equal(want), "total = %s, want %s", c.Total(), want)
}

func TestLines_ReturnsSnapshot(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(product(1, "Kayak", "275.00"), 1))

	lines := c.Lines()
	lines[0].Quantity = 99

	require.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestClear_IsIdempotent(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(product(1, "Kayak", "275.00"), 1))

	c.Clear()
	require.True(t, c.Empty())
	c.Clear()
	require.True(t, c.Empty())
}

func TestFromLines_DropsNonPositiveQuantities(t *testing.T) {
	c := FromLines([]Line{
		{Product: product(1, "Kayak", "275.00"), Quantity: 2},
		{Product: product(2, "Lifejacket", "48.95"), Quantity: 0},
	})

	lines := c.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, int64(1), lines[0].Product.ID)
}
