package orderbook

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only hard failure the book reports; it never
// mutates state. Soft conditions (refused cross, missing order on cancel,
// thin liquidity) surface as ordinary return values, not errors.
var ErrInvalidArgument = errors.New("orderbook: invalid argument")

var (
	ErrInvalidPrice = fmt.Errorf("%w: price must be positive", ErrInvalidArgument)
	ErrInvalidSize  = fmt.Errorf("%w: size must be positive", ErrInvalidArgument)
	ErrInvalidFunds = fmt.Errorf("%w: funds must be positive", ErrInvalidArgument)
	ErrInvalidSide  = fmt.Errorf("%w: unknown side", ErrInvalidArgument)
)
