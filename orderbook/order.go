package orderbook

import "github.com/shopspring/decimal"

// Side is the direction of an order.
type Side uint8

const (
	// Buy orders rest on the bid side.
	Buy Side = iota
	// Sell orders rest on the ask side.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	}
	return "UNKNOWN"
}

// NoAccount marks an order that is not tracked in the account map.
const NoAccount uint64 = 0

// Order is one resting limit order. Orders handed out by Book operations
// (matches, cancels, account views) are detached value copies; holding or
// mutating them has no effect on the book.
type Order struct {
	ID      uint64
	Account uint64
	Side    Side
	Price   decimal.Decimal
	Qty     int64

	next *Order // FIFO links inside a price level
	prev *Order
}

// Notional returns Price × Qty.
func (o *Order) Notional() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(o.Qty))
}

// detached returns a value copy with the queue links stripped.
func (o *Order) detached() Order {
	c := *o
	c.next, c.prev = nil, nil
	return c
}
