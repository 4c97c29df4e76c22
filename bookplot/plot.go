// Package bookplot renders a book's depth as an ASCII ladder. Like the
// CSV dumper it lives outside the core and reads only the public
// accessors.
package bookplot

import (
	"fmt"
	"io"
	"strings"

	"matchbook/orderbook"
)

// Render draws up to maxDepth levels per side: asks on top (worst price
// first), then bids. Bar lengths are scaled so the deepest level spans
// the book's PlotTickMax characters.
func Render(w io.Writer, b *orderbook.Book, maxDepth int) error {
	depth := b.Depth(maxDepth)

	maxVol := int64(1)
	for _, v := range depth.Bids.Volumes {
		if v > maxVol {
			maxVol = v
		}
	}
	for _, v := range depth.Asks.Volumes {
		if v > maxVol {
			maxVol = v
		}
	}

	width := b.PlotTickMax()
	if width <= 0 {
		width = 1
	}

	for i := len(depth.Asks.Prices) - 1; i >= 0; i-- {
		if err := line(w, "ASK", depth.Asks, i, maxVol, width); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", width+28)); err != nil {
		return err
	}
	for i := 0; i < len(depth.Bids.Prices); i++ {
		if err := line(w, "BID", depth.Bids, i, maxVol, width); err != nil {
			return err
		}
	}
	return nil
}

func line(w io.Writer, tag string, v orderbook.DepthView, i int, maxVol int64, width int) error {
	n := int(v.Volumes[i] * int64(width) / maxVol)
	if n < 1 {
		n = 1
	}
	_, err := fmt.Fprintf(w, "%s %10s |%-*s %d (%d)\n",
		tag, v.Prices[i].StringFixed(2), width, strings.Repeat("#", n), v.Volumes[i], v.Orders[i])
	return err
}
