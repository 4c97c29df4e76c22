package orderbook

import "github.com/shopspring/decimal"

// walkBySize consumes up to remaining shares from this side, best price
// first, FIFO within a level. limit bounds how deep the walk may price;
// hasLimit false walks the whole side. Matches come back in consumption
// order; split reports that the final match only partially consumed its
// resting order, which therefore stays at the front of its level.
func (sb *sideBook) walkBySize(remaining int64, limit decimal.Decimal, hasLimit bool, traits Traits) (matches []Order, left int64, split bool) {
	if traits.AllOrNone && sb.sizeAvailable(limit, hasLimit) < remaining {
		return nil, remaining, false
	}

	for remaining > 0 {
		lvl := sb.front()
		if lvl == nil || !sb.inRange(lvl.price, limit, hasLimit) {
			break
		}
		sb.levels.Delete(lvl)

		if lvl.totalQty <= remaining {
			// The whole level fits: drain it in arrival order and leave
			// the level deleted.
			remaining -= lvl.totalQty
			for o := lvl.popFront(); o != nil; o = lvl.popFront() {
				sb.retire(o)
				matches = append(matches, o.detached())
			}
			continue
		}

		// The level outlasts the incoming quantity: consume heads until
		// it runs out, splitting the last one.
		for remaining > 0 {
			o := lvl.popFront()
			if o.Qty <= remaining {
				remaining -= o.Qty
				sb.retire(o)
				matches = append(matches, o.detached())
				continue
			}
			fill := o.detached()
			fill.Qty = remaining
			o.Qty -= remaining
			lvl.pushFront(o)
			sb.totalQty -= remaining
			sb.totalFunds = sb.totalFunds.Sub(fill.Notional())
			matches = append(matches, fill)
			remaining = 0
			split = true
		}
		sb.levels.ReplaceOrInsert(lvl)
	}

	sb.refreshBest()
	return matches, remaining, split
}

// walkByFunds is walkBySize with the budget expressed in currency. A
// resting order is divisible only down to whole shares: when the budget
// cannot buy a single share at the front price the walk stops and the
// leftover funds are returned as-is.
func (sb *sideBook) walkByFunds(remaining decimal.Decimal, limit decimal.Decimal, hasLimit bool, traits Traits) (matches []Order, left decimal.Decimal, split bool) {
	if traits.AllOrNone && sb.fundsAvailable(limit, hasLimit).LessThan(remaining) {
		return nil, remaining, false
	}

	stalled := false
	for remaining.IsPositive() && !stalled {
		lvl := sb.front()
		if lvl == nil || !sb.inRange(lvl.price, limit, hasLimit) {
			break
		}
		sb.levels.Delete(lvl)

		if lvl.notional().LessThanOrEqual(remaining) {
			remaining = remaining.Sub(lvl.notional())
			for o := lvl.popFront(); o != nil; o = lvl.popFront() {
				sb.retire(o)
				matches = append(matches, o.detached())
			}
			continue
		}

		for remaining.IsPositive() {
			o := lvl.popFront()
			notional := o.Notional()
			if notional.LessThanOrEqual(remaining) {
				remaining = remaining.Sub(notional)
				sb.retire(o)
				matches = append(matches, o.detached())
				continue
			}
			shares := remaining.Div(o.Price).Floor().IntPart()
			if shares <= 0 {
				// Budget is below one share at this price.
				lvl.pushFront(o)
				stalled = true
				break
			}
			fill := o.detached()
			fill.Qty = shares
			o.Qty -= shares
			lvl.pushFront(o)
			sb.totalQty -= shares
			sb.totalFunds = sb.totalFunds.Sub(fill.Notional())
			matches = append(matches, fill)
			remaining = remaining.Sub(fill.Notional())
			split = true
			stalled = true
			break
		}
		sb.levels.ReplaceOrInsert(lvl)
	}

	sb.refreshBest()
	return matches, remaining, split
}
