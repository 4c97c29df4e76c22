package orderbook

import "github.com/shopspring/decimal"

// DepthView lists the top price levels of one side, best first, as
// parallel slices.
type DepthView struct {
	Prices  []decimal.Decimal
	Volumes []int64
	Orders  []int
}

// DepthInfo pairs the two side views.
type DepthInfo struct {
	Bids DepthView
	Asks DepthView
}

// BestBid returns the highest resting bid price; ok is false when the bid
// side is empty.
func (b *Book) BestBid() (decimal.Decimal, bool) {
	return b.bids.best, b.bids.hasBest
}

// BestAsk returns the lowest resting ask price; ok is false when the ask
// side is empty.
func (b *Book) BestAsk() (decimal.Decimal, bool) {
	return b.asks.best, b.asks.hasBest
}

// VolumeBidAsk returns the total resting quantity per side.
func (b *Book) VolumeBidAsk() (bid, ask int64) {
	return b.bids.totalQty, b.asks.totalQty
}

// NumOrdersBidAsk returns the number of resting orders per side.
func (b *Book) NumOrdersBidAsk() (bid, ask int) {
	return b.bids.numOrders, b.asks.numOrders
}

// VolumeFundsBidAsk returns the resting notional per side. The aggregate
// is advisory, not authoritative for settlement.
func (b *Book) VolumeFundsBidAsk() (bid, ask decimal.Decimal) {
	return b.bids.totalFunds, b.asks.totalFunds
}

// Depth reports up to maxDepth price levels per side, best first.
// maxDepth <= 0 means unbounded.
func (b *Book) Depth(maxDepth int) DepthInfo {
	return DepthInfo{
		Bids: depthView(b.bids, maxDepth),
		Asks: depthView(b.asks, maxDepth),
	}
}

func depthView(sb *sideBook, maxDepth int) DepthView {
	var v DepthView
	sb.levels.Ascend(func(lvl *priceLevel) bool {
		if maxDepth > 0 && len(v.Prices) >= maxDepth {
			return false
		}
		v.Prices = append(v.Prices, lvl.price)
		v.Volumes = append(v.Volumes, lvl.totalQty)
		v.Orders = append(v.Orders, lvl.orderCount)
		return true
	})
	return v
}

// Account returns the open orders of one account keyed by order id, or
// nil when the account has none. The values are detached copies taken at
// call time.
func (b *Book) Account(aid uint64) map[uint64]Order {
	acct := b.accounts[aid]
	if acct == nil {
		return nil
	}
	out := make(map[uint64]Order, len(acct))
	for id, o := range acct {
		out[id] = o.detached()
	}
	return out
}

// EachBid visits every resting bid in price-time priority; fn returning
// false stops the walk.
func (b *Book) EachBid(fn func(Order) bool) {
	b.bids.each(func(o *Order) bool { return fn(o.detached()) })
}

// EachAsk visits every resting ask in price-time priority.
func (b *Book) EachAsk(fn func(Order) bool) {
	b.asks.each(func(o *Order) bool { return fn(o.detached()) })
}

// BidOrders returns all resting bids in price-time priority.
func (b *Book) BidOrders() []Order {
	out := make([]Order, 0, b.bids.numOrders)
	b.EachBid(func(o Order) bool {
		out = append(out, o)
		return true
	})
	return out
}

// AskOrders returns all resting asks in price-time priority.
func (b *Book) AskOrders() []Order {
	out := make([]Order, 0, b.asks.numOrders)
	b.EachAsk(func(o Order) bool {
		out = append(out, o)
		return true
	})
	return out
}

// PlotTickMax is the bar scale hint for depth renderers.
func (b *Book) PlotTickMax() int { return b.plotTickMax }
