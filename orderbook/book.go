package orderbook

import "github.com/shopspring/decimal"

// Book is a single-symbol limit order book with price-time priority.
// It is single-writer and deterministic: one goroutine owns the book and
// invokes its operations serially.
type Book struct {
	bids *sideBook
	asks *sideBook

	// accounts tracks live resting orders per account id.
	accounts map[uint64]map[uint64]*Order

	plotTickMax int
}

// Option configures a Book.
type Option func(*Book)

// WithPlotTickMax sets the bar scale hint consumed by depth renderers.
func WithPlotTickMax(n int) Option {
	return func(b *Book) { b.plotTickMax = n }
}

const defaultPlotTickMax = 25

// New constructs an empty book.
func New(opts ...Option) *Book {
	b := &Book{
		bids:        newSideBook(true),
		asks:        newSideBook(false),
		accounts:    make(map[uint64]map[uint64]*Order),
		plotTickMax: defaultPlotTickMax,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func validSide(s Side) bool { return s == Buy || s == Sell }

func (b *Book) side(s Side) *sideBook {
	if s == Buy {
		return b.bids
	}
	return b.asks
}

func (b *Book) opposite(s Side) *sideBook {
	if s == Buy {
		return b.asks
	}
	return b.bids
}

// crosses reports whether a limit at price would match the front of opp.
func crosses(side Side, price decimal.Decimal, opp *sideBook) bool {
	if !opp.hasBest {
		return false
	}
	if side == Buy {
		return price.GreaterThanOrEqual(opp.best)
	}
	return price.LessThanOrEqual(opp.best)
}

// SubmitLimitOrder places a limit order. A crossing order matches against
// the opposite side first when its traits allow it, and is refused with
// the full residual when they do not. The residual rests unless the order
// is immediate-or-cancel; the resting copy is returned alongside the
// matches. residual is what neither matched nor rested.
func (b *Book) SubmitLimitOrder(id uint64, side Side, price decimal.Decimal, qty int64, account uint64, traits Traits) (resting *Order, matches []Order, residual int64, err error) {
	switch {
	case !validSide(side):
		return nil, nil, qty, ErrInvalidSide
	case !price.IsPositive():
		return nil, nil, qty, ErrInvalidPrice
	case qty <= 0:
		return nil, nil, qty, ErrInvalidSize
	}

	residual = qty
	opp := b.opposite(side)
	if crosses(side, price, opp) {
		if !traits.AllowCross {
			return nil, nil, residual, nil
		}
		var split bool
		matches, residual, split = opp.walkBySize(qty, price, true, traits)
		b.retireAccounts(matches, split)
	}

	if traits.ImmediateOrCancel || residual == 0 {
		return nil, matches, residual, nil
	}

	// The residual rests only if it sits inside the spread on its own
	// side. An all-or-none walk that found too little liquidity leaves
	// the order still crossing, so it cannot rest.
	if crosses(side, price, opp) {
		return nil, matches, residual, nil
	}

	o := &Order{ID: id, Account: account, Side: side, Price: price, Qty: residual}
	b.side(side).insert(o)
	if account != NoAccount {
		acct := b.accounts[account]
		if acct == nil {
			acct = make(map[uint64]*Order)
			b.accounts[account] = acct
		}
		acct[id] = o
	}
	r := o.detached()
	return &r, matches, 0, nil
}

// SubmitMarketOrder consumes up to qty shares from the opposite side.
// Only the AllOrNone trait applies: there is nothing to rest and no cross
// check. An empty book returns empty matches and the full residual.
func (b *Book) SubmitMarketOrder(side Side, qty int64, traits Traits) (matches []Order, residual int64, err error) {
	switch {
	case !validSide(side):
		return nil, qty, ErrInvalidSide
	case qty <= 0:
		return nil, qty, ErrInvalidSize
	}
	var split bool
	matches, residual, split = b.opposite(side).walkBySize(qty, decimal.Zero, false, traits)
	b.retireAccounts(matches, split)
	return matches, residual, nil
}

// SubmitMarketOrderByFunds consumes liquidity until the given notional
// budget is spent, down to whole shares. Leftover funds that cannot buy a
// share at the front price come back unspent.
func (b *Book) SubmitMarketOrderByFunds(side Side, funds decimal.Decimal, traits Traits) (matches []Order, remaining decimal.Decimal, err error) {
	switch {
	case !validSide(side):
		return nil, funds, ErrInvalidSide
	case !funds.IsPositive():
		return nil, funds, ErrInvalidFunds
	}
	var split bool
	matches, remaining, split = b.opposite(side).walkByFunds(funds, decimal.Zero, false, traits)
	b.retireAccounts(matches, split)
	return matches, remaining, nil
}

// CancelOrder removes the resting order with the given id at (side,
// price) and returns it, or nil when no such order rests there.
// Cancelling twice is not an error. The account entry is cleaned up from
// the removed order itself; callers never pass the account id.
func (b *Book) CancelOrder(id uint64, side Side, price decimal.Decimal) *Order {
	if !validSide(side) {
		return nil
	}
	o := b.side(side).pop(price, id)
	if o == nil {
		return nil
	}
	b.dropAccount(o.Account, o.ID)
	r := o.detached()
	return &r
}

// Cancel is CancelOrder keyed by a previously returned order value.
func (b *Book) Cancel(o Order) *Order {
	return b.CancelOrder(o.ID, o.Side, o.Price)
}

func (b *Book) dropAccount(account, id uint64) {
	if account == NoAccount {
		return
	}
	acct := b.accounts[account]
	if acct == nil {
		return
	}
	delete(acct, id)
	if len(acct) == 0 {
		delete(b.accounts, account)
	}
}

// retireAccounts drops account entries for fully consumed matches. When
// the walk split its final match that order is still resting and keeps
// its entry.
func (b *Book) retireAccounts(matches []Order, split bool) {
	n := len(matches)
	if split {
		n--
	}
	for _, m := range matches[:n] {
		b.dropAccount(m.Account, m.ID)
	}
}
