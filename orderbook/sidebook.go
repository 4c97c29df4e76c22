package orderbook

import (
	"github.com/google/btree"
	"github.com/shopspring/decimal"
)

const levelTreeDegree = 16

// sideBook is one half of the book: an ordered map from price to its FIFO
// level plus cached aggregates. The bid tree orders descending and the ask
// tree ascending, so Min is the most aggressive level on either side.
type sideBook struct {
	isBid  bool
	levels *btree.BTreeG[*priceLevel]

	best       decimal.Decimal
	hasBest    bool
	totalQty   int64
	totalFunds decimal.Decimal
	numOrders  int
}

func newSideBook(isBid bool) *sideBook {
	less := func(a, b *priceLevel) bool { return a.price.LessThan(b.price) }
	if isBid {
		less = func(a, b *priceLevel) bool { return a.price.GreaterThan(b.price) }
	}
	return &sideBook{
		isBid:      isBid,
		levels:     btree.NewG(levelTreeDegree, less),
		totalFunds: decimal.Zero,
	}
}

// better reports whether price a is more aggressive than b on this side.
func (sb *sideBook) better(a, b decimal.Decimal) bool {
	if sb.isBid {
		return a.GreaterThan(b)
	}
	return a.LessThan(b)
}

// inRange reports whether a level at price may match under the limit.
func (sb *sideBook) inRange(price, limit decimal.Decimal, hasLimit bool) bool {
	if !hasLimit {
		return true
	}
	if sb.isBid {
		return price.GreaterThanOrEqual(limit)
	}
	return price.LessThanOrEqual(limit)
}

func (sb *sideBook) findLevel(price decimal.Decimal) *priceLevel {
	lvl, ok := sb.levels.Get(&priceLevel{price: price})
	if !ok {
		return nil
	}
	return lvl
}

// front returns the most aggressive level, or nil when the side is empty.
func (sb *sideBook) front() *priceLevel {
	lvl, ok := sb.levels.Min()
	if !ok {
		return nil
	}
	return lvl
}

// insert adds a resting order, creating its level on first arrival at
// that price.
func (sb *sideBook) insert(o *Order) {
	lvl := sb.findLevel(o.Price)
	if lvl == nil {
		lvl = newPriceLevel(o.Price)
		sb.levels.ReplaceOrInsert(lvl)
	}
	lvl.pushBack(o)
	sb.numOrders++
	sb.totalQty += o.Qty
	sb.totalFunds = sb.totalFunds.Add(o.Notional())
	if !sb.hasBest || sb.better(o.Price, sb.best) {
		sb.best = o.Price
		sb.hasBest = true
	}
}

// pop removes the order with the given id from the level at price. The
// level is dropped when it empties and the best price refreshed.
func (sb *sideBook) pop(price decimal.Decimal, id uint64) *Order {
	lvl := sb.findLevel(price)
	if lvl == nil {
		return nil
	}
	o := lvl.popByID(id)
	if o == nil {
		return nil
	}
	sb.retire(o)
	if lvl.empty() {
		sb.levels.Delete(lvl)
		if sb.hasBest && lvl.price.Equal(sb.best) {
			sb.refreshBest()
		}
	}
	return o
}

// retire folds a fully removed order out of the side aggregates.
func (sb *sideBook) retire(o *Order) {
	sb.numOrders--
	sb.totalQty -= o.Qty
	sb.totalFunds = sb.totalFunds.Sub(o.Notional())
}

func (sb *sideBook) refreshBest() {
	if lvl := sb.front(); lvl != nil {
		sb.best, sb.hasBest = lvl.price, true
	} else {
		sb.best, sb.hasBest = decimal.Zero, false
	}
}

// sizeAvailable sums resting quantity within the limit, walking levels in
// priority order and stopping at the first level out of range. Without a
// limit it is the cached side total.
func (sb *sideBook) sizeAvailable(limit decimal.Decimal, hasLimit bool) int64 {
	if !hasLimit {
		return sb.totalQty
	}
	var avail int64
	sb.levels.Ascend(func(lvl *priceLevel) bool {
		if !sb.inRange(lvl.price, limit, true) {
			return false
		}
		avail += lvl.totalQty
		return true
	})
	return avail
}

// fundsAvailable is the notional analogue of sizeAvailable.
func (sb *sideBook) fundsAvailable(limit decimal.Decimal, hasLimit bool) decimal.Decimal {
	if !hasLimit {
		return sb.totalFunds
	}
	sum := decimal.Zero
	sb.levels.Ascend(func(lvl *priceLevel) bool {
		if !sb.inRange(lvl.price, limit, true) {
			return false
		}
		sum = sum.Add(lvl.notional())
		return true
	})
	return sum
}

// each visits every resting order in price-time priority; fn returning
// false stops the walk.
func (sb *sideBook) each(fn func(*Order) bool) {
	stopped := false
	sb.levels.Ascend(func(lvl *priceLevel) bool {
		lvl.each(func(o *Order) bool {
			if !fn(o) {
				stopped = true
			}
			return !stopped
		})
		return !stopped
	})
}
