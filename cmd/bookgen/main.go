// bookgen drives a book with a deterministic pseudo-random order stream
// and prints the resulting depth ladder. With -out it also dumps the
// resting orders as CSV. The same seed always produces the same book.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/shopspring/decimal"

	"matchbook/bookcsv"
	"matchbook/bookplot"
	"matchbook/orderbook"
)

type openOrder struct {
	id    uint64
	side  orderbook.Side
	price decimal.Decimal
}

func main() {
	var (
		seed  = flag.Int64("seed", 42, "stream seed")
		n     = flag.Int("n", 10000, "number of events")
		depth = flag.Int("depth", 10, "levels to render per side")
		out   = flag.String("out", "", "write resting orders as CSV to this file")
	)
	flag.Parse()

	book := orderbook.New(orderbook.WithPlotTickMax(40))
	rng := rand.New(rand.NewSource(*seed))

	var (
		nextID uint64
		open   []openOrder
		trades int
	)

	for i := 0; i < *n; i++ {
		switch r := rng.Float64(); {
		case r < 0.70:
			nextID++
			side := orderbook.Buy
			// Limits land 1..20 ticks away from 100.00 on their own side.
			off := int64(rng.Intn(20) + 1)
			px := decimal.New(10000-off, -2)
			if rng.Intn(2) == 1 {
				side = orderbook.Sell
				px = decimal.New(10000+off, -2)
			}
			qty := int64(rng.Intn(50) + 1)
			acct := uint64(rng.Intn(8) + 1)
			resting, matches, _, err := book.SubmitLimitOrder(nextID, side, px, qty, acct, orderbook.Vanilla)
			if err != nil {
				log.Fatalf("submit limit: %v", err)
			}
			trades += len(matches)
			if resting != nil {
				open = append(open, openOrder{id: resting.ID, side: resting.Side, price: resting.Price})
			}
		case r < 0.85:
			side := orderbook.Buy
			if rng.Intn(2) == 1 {
				side = orderbook.Sell
			}
			matches, _, err := book.SubmitMarketOrder(side, int64(rng.Intn(30)+1), orderbook.Vanilla)
			if err != nil {
				log.Fatalf("submit market: %v", err)
			}
			trades += len(matches)
		default:
			if len(open) == 0 {
				continue
			}
			j := rng.Intn(len(open))
			o := open[j]
			open = append(open[:j], open[j+1:]...)
			book.CancelOrder(o.id, o.side, o.price)
		}
	}

	bidVol, askVol := book.VolumeBidAsk()
	bidN, askN := book.NumOrdersBidAsk()
	fmt.Printf("events=%d fills=%d resting: bid %d orders / %d shares, ask %d orders / %d shares\n",
		*n, trades, bidN, bidVol, askN, askVol)

	if err := bookplot.Render(os.Stdout, book, *depth); err != nil {
		log.Fatalf("render: %v", err)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create %s: %v", *out, err)
		}
		defer f.Close()
		if err := bookcsv.Write(f, book); err != nil {
			log.Fatalf("dump csv: %v", err)
		}
	}
}
