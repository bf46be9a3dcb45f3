package suffixtree

import "errors"

// Ref is an arena index for a node or an edge.
type Ref uint32

const NoRef = ^Ref(0)

// RootRef is always the first node allocated.
const RootRef = Ref(0)

// MaxTextLen is the longest text whose node and edge indices fit in a Ref. A
// text of n symbols needs up to 2n nodes.
const MaxTextLen = int(NoRef / 2)

var (
	ErrOutOfRange        = errors.New("suffixtree: index out of range")
	ErrCapacityExceeded  = errors.New("suffixtree: text capacity exceeded")
	ErrInconsistentState = errors.New("suffixtree: inconsistent state")
)

type node struct {
	link Ref
}

type edge struct {
	start int
	end   int
	open  bool
	dest  Ref
}

// Edge is a read-only view of an outgoing edge.
//
// When Open is true End is meaningless and the label runs to the current end
// of text, see Tree.EdgeEnd.
type Edge struct {
	Ref   Ref
	Start int
	End   int
	Open  bool
	Dest  Ref
}

type childKey uint64

func keyOf(n Ref, symbol byte) childKey {
	return childKey(uint64(n)<<8 | uint64(symbol))
}
