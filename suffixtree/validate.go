package suffixtree

import "fmt"

// Validate checks the structural invariants of the tree:
//
//   - the root's suffix link is the root
//   - every non-root node is the destination of exactly one edge
//   - every edge has a resolved length of at least 1
//   - every edge is keyed by the first symbol of its label
//   - every node is reachable from the root along edges
//
// It is O(nodes + edges) and intended for tests and debugging.
func (t *Tree) Validate() error {
	if len(t.nodes) == 0 {
		return fmt.Errorf("%w: missing root", ErrInconsistentState)
	}
	if t.nodes[RootRef].link != RootRef {
		return fmt.Errorf("%w: root suffix link %d", ErrInconsistentState, t.nodes[RootRef].link)
	}
	if len(t.children) != len(t.edges) {
		return fmt.Errorf("%w: %d edges, %d child entries", ErrInconsistentState, len(t.edges), len(t.children))
	}

	incoming := make([]int, len(t.nodes))
	out := make(map[Ref][]Ref, len(t.nodes))
	for k, e := range t.children {
		parent := Ref(uint64(k) >> 8)
		symbol := byte(k)
		ed := t.edges[e]
		if l := t.edgeLen(e); l < 1 {
			return fmt.Errorf("%w: edge %d has length %d", ErrInconsistentState, e, l)
		}
		if t.text[ed.start] != symbol {
			return fmt.Errorf("%w: edge %d keyed by %q starts with %q", ErrInconsistentState, e, symbol, t.text[ed.start])
		}
		if ed.dest == RootRef || int(ed.dest) >= len(t.nodes) {
			return fmt.Errorf("%w: edge %d has bad destination %d", ErrInconsistentState, e, ed.dest)
		}
		incoming[ed.dest]++
		out[parent] = append(out[parent], ed.dest)
	}
	for n := 1; n < len(t.nodes); n++ {
		if incoming[n] != 1 {
			return fmt.Errorf("%w: node %d has %d parents", ErrInconsistentState, n, incoming[n])
		}
	}

	seen := 0
	stack := []Ref{RootRef}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		seen++
		stack = append(stack, out[n]...)
	}
	if seen != len(t.nodes) {
		return fmt.Errorf("%w: %d of %d nodes reachable", ErrInconsistentState, seen, len(t.nodes))
	}
	return nil
}
