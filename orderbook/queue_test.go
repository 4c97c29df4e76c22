package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func level(price string) *priceLevel { return newPriceLevel(px(price)) }

func order(id uint64, qty int64, price string) *Order {
	return &Order{ID: id, Side: Buy, Price: px(price), Qty: qty}
}

func TestPriceLevelFIFO(t *testing.T) {
	lvl := level("100")
	lvl.pushBack(order(1, 5, "100"))
	lvl.pushBack(order(2, 3, "100"))
	lvl.pushBack(order(3, 2, "100"))

	assert.Equal(t, int64(10), lvl.totalQty)
	assert.Equal(t, 3, lvl.orderCount)

	var ids []uint64
	lvl.each(func(o *Order) bool {
		ids = append(ids, o.ID)
		return true
	})
	assert.Equal(t, []uint64{1, 2, 3}, ids)

	first := lvl.popFront()
	require.NotNil(t, first)
	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, int64(5), lvl.totalQty)
	assert.Equal(t, 2, lvl.orderCount)
}

func TestPriceLevelPushFront(t *testing.T) {
	lvl := level("100")
	lvl.pushBack(order(1, 5, "100"))
	lvl.pushFront(order(2, 1, "100"))

	front := lvl.popFront()
	require.NotNil(t, front)
	assert.Equal(t, uint64(2), front.ID)
	assert.Equal(t, int64(5), lvl.totalQty)
}

func TestPriceLevelPopByID(t *testing.T) {
	lvl := level("100")
	lvl.pushBack(order(1, 5, "100"))
	lvl.pushBack(order(2, 3, "100"))
	lvl.pushBack(order(3, 2, "100"))

	t.Run("middle", func(t *testing.T) {
		o := lvl.popByID(2)
		require.NotNil(t, o)
		assert.Equal(t, int64(7), lvl.totalQty)
		assert.Equal(t, 2, lvl.orderCount)
	})

	t.Run("missing", func(t *testing.T) {
		assert.Nil(t, lvl.popByID(99))
	})

	t.Run("tail then head empties the level", func(t *testing.T) {
		require.NotNil(t, lvl.popByID(3))
		require.NotNil(t, lvl.popByID(1))
		assert.True(t, lvl.empty())
		assert.Zero(t, lvl.totalQty)
		assert.Zero(t, lvl.orderCount)
	})
}

func TestPriceLevelPopFrontEmpty(t *testing.T) {
	assert.Nil(t, level("100").popFront())
}
