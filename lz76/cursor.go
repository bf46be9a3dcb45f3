package lz76

import (
	"fmt"

	"github.com/forestrie/go-lzsuffix/suffixtree"
)

// canonicalise walks the cursor over every edge its match fully covers and
// returns the edge it ends up on. When the cursor sits on a node ok is false.
//
// The dictionary grows between calls, so the edge the cursor was on may since
// have been split. The symbols matched below the cursor node are the tail of
// the phrase buffer (excluding the symbol under test), so edges are
// re-resolved from those at each hop.
func (c *Counter) canonicalise() (suffixtree.Edge, bool) {
	last := len(c.phrase) - 1
	matched := c.phrase[last-c.cur.length : last]
	for len(matched) > 0 {
		e, ok := c.dict.Child(c.cur.node, matched[0])
		if !ok {
			panic(fmt.Errorf("%w: lz cursor at node %d has no edge for %q",
				suffixtree.ErrInconsistentState, c.cur.node, matched[0]))
		}
		l := c.dict.EdgeLen(e)
		if len(matched) < l {
			c.cur.length = len(matched)
			return e, true
		}
		c.cur.node = e.Dest
		matched = matched[l:]
	}
	c.cur.length = 0
	return suffixtree.Edge{}, false
}

// extend tries to grow the matched phrase by symbol, which must already be the
// last entry of the phrase buffer.
func (c *Counter) extend(symbol byte) bool {
	e, onEdge := c.canonicalise()
	if !onEdge {
		_, ok := c.dict.Child(c.cur.node, symbol)
		if !ok {
			return false
		}
		c.cur.length = 1
		return true
	}
	if c.dict.Text()[e.Start+c.cur.length] != symbol {
		return false
	}
	c.cur.length++
	return true
}
