package suffixtree

// NodeCountMax returns the maximum number of nodes, root included, in a suffix
// tree over a text of textLen symbols.
//
// Each append adds at most one leaf per suffix and an internal node only by
// splitting, so there are at most textLen leaves and textLen-1 internal nodes.
func NodeCountMax(textLen int) int {
	if textLen <= 0 {
		return 1
	}
	return 2 * textLen
}

// EdgeCountMax returns the maximum number of edges for a text of textLen
// symbols. Every non-root node has exactly one incoming edge.
func EdgeCountMax(textLen int) int {
	return NodeCountMax(textLen) - 1
}
