// Package bookcsv serializes the resting orders of a book as CSV. It sits
// outside the matching core and only uses the read-only accessors, so the
// row set always equals the set of resting orders at the moment a dump
// begins.
package bookcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"matchbook/orderbook"
)

// Header is the column layout of a dump.
var Header = []string{"TRD", "ID", "SIDE", "SIZE", "PX", "ACCT"}

const recordType = "LMT"

// Write emits the header and one row per resting order, bids first, each
// side in price-time priority.
func Write(w io.Writer, b *orderbook.Book) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	row := func(o orderbook.Order) error {
		return cw.Write([]string{
			recordType,
			strconv.FormatUint(o.ID, 10),
			o.Side.String(),
			strconv.FormatInt(o.Qty, 10),
			o.Price.String(),
			strconv.FormatUint(o.Account, 10),
		})
	}
	for _, o := range b.BidOrders() {
		if err := row(o); err != nil {
			return err
		}
	}
	for _, o := range b.AskOrders() {
		if err := row(o); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Load replays a dump into the book as plain limit orders. Loading a dump
// into an empty book reproduces the dumped resting state.
func Load(r io.Reader, b *orderbook.Book) error {
	cr := csv.NewReader(r)
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line++
		if line == 1 && rec[0] == Header[0] {
			continue
		}
		o, err := parseRow(rec)
		if err != nil {
			return fmt.Errorf("bookcsv: line %d: %w", line, err)
		}
		if _, _, _, err := b.SubmitLimitOrder(o.ID, o.Side, o.Price, o.Qty, o.Account, orderbook.Vanilla); err != nil {
			return fmt.Errorf("bookcsv: line %d: %w", line, err)
		}
	}
}

func parseRow(rec []string) (orderbook.Order, error) {
	var o orderbook.Order
	if len(rec) != len(Header) {
		return o, fmt.Errorf("want %d fields, got %d", len(Header), len(rec))
	}
	if rec[0] != recordType {
		return o, fmt.Errorf("unknown record type %q", rec[0])
	}
	id, err := strconv.ParseUint(rec[1], 10, 64)
	if err != nil {
		return o, err
	}
	side, err := parseSide(rec[2])
	if err != nil {
		return o, err
	}
	qty, err := strconv.ParseInt(rec[3], 10, 64)
	if err != nil {
		return o, err
	}
	px, err := decimal.NewFromString(rec[4])
	if err != nil {
		return o, err
	}
	acct, err := strconv.ParseUint(rec[5], 10, 64)
	if err != nil {
		return o, err
	}
	return orderbook.Order{ID: id, Account: acct, Side: side, Price: px, Qty: qty}, nil
}

func parseSide(s string) (orderbook.Side, error) {
	switch s {
	case "BUY":
		return orderbook.Buy, nil
	case "SELL":
		return orderbook.Sell, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}
