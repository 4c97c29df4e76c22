package orderbook

import "github.com/shopspring/decimal"

// priceLevel holds all resting orders at one price, oldest first, as an
// intrusive doubly linked list with cached aggregates.
type priceLevel struct {
	price decimal.Decimal
	head  *Order
	tail  *Order

	totalQty   int64
	orderCount int
}

func newPriceLevel(price decimal.Decimal) *priceLevel {
	return &priceLevel{price: price}
}

func (lvl *priceLevel) empty() bool { return lvl.head == nil }

// pushBack appends a newly arrived order.
func (lvl *priceLevel) pushBack(o *Order) {
	if lvl.tail != nil {
		lvl.tail.next = o
		o.prev = lvl.tail
	} else {
		lvl.head = o
	}
	lvl.tail = o
	lvl.totalQty += o.Qty
	lvl.orderCount++
}

// pushFront reinstates an order at the head. A split residual goes back
// through here so it keeps the arrival priority of its parent.
func (lvl *priceLevel) pushFront(o *Order) {
	if lvl.head != nil {
		lvl.head.prev = o
		o.next = lvl.head
	} else {
		lvl.tail = o
	}
	lvl.head = o
	lvl.totalQty += o.Qty
	lvl.orderCount++
}

// popFront removes and returns the oldest order, or nil when empty.
func (lvl *priceLevel) popFront() *Order {
	o := lvl.head
	if o == nil {
		return nil
	}
	lvl.head = o.next
	if lvl.head != nil {
		lvl.head.prev = nil
	} else {
		lvl.tail = nil
	}
	o.next, o.prev = nil, nil
	lvl.totalQty -= o.Qty
	lvl.orderCount--
	return o
}

// popByID unlinks the order with the given id, or returns nil if it is
// not queued here. Linear scan: depth at a single price stays small for
// typical instruments.
func (lvl *priceLevel) popByID(id uint64) *Order {
	for o := lvl.head; o != nil; o = o.next {
		if o.ID != id {
			continue
		}
		if o.prev != nil {
			o.prev.next = o.next
		} else {
			lvl.head = o.next
		}
		if o.next != nil {
			o.next.prev = o.prev
		} else {
			lvl.tail = o.prev
		}
		o.next, o.prev = nil, nil
		lvl.totalQty -= o.Qty
		lvl.orderCount--
		return o
	}
	return nil
}

// each visits orders oldest first; fn returning false stops the walk.
func (lvl *priceLevel) each(fn func(*Order) bool) {
	for o := lvl.head; o != nil; o = o.next {
		if !fn(o) {
			return
		}
	}
}

// notional returns price × totalQty.
func (lvl *priceLevel) notional() decimal.Decimal {
	return lvl.price.Mul(decimal.NewFromInt(lvl.totalQty))
}
