package suffixtree

import "fmt"

// Tree is an online suffix tree over single-byte symbols.
type Tree struct {
	opts Options

	text     []byte
	nodes    []node
	edges    []edge
	children map[childKey]Ref

	activeNode   Ref
	activeEdge   int
	activeLength int
	remainder    int
}

func New(opts ...Option) *Tree {
	t := &Tree{}
	for _, o := range opts {
		o(&t.opts)
	}
	n := t.opts.InitialCapacity
	t.text = make([]byte, 0, n)
	t.nodes = make([]node, 0, NodeCountMax(n))
	t.edges = make([]edge, 0, EdgeCountMax(n))
	t.children = make(map[childKey]Ref, EdgeCountMax(n))
	t.init()
	return t
}

func (t *Tree) init() {
	root := t.newNode()
	t.nodes[root].link = root
	t.activeNode = root
	t.activeEdge = 0
	t.activeLength = 0
	t.remainder = 0
}

// Reset returns the tree to its empty state. Backing storage is retained.
func (t *Tree) Reset() {
	t.text = t.text[:0]
	t.nodes = t.nodes[:0]
	t.edges = t.edges[:0]
	clear(t.children)
	t.init()
}

// Len returns the number of symbols appended so far.
func (t *Tree) Len() int {
	return len(t.text)
}

// At returns the symbol at index i.
func (t *Tree) At(i int) (byte, error) {
	if i < 0 || i >= len(t.text) {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, len(t.text))
	}
	return t.text[i], nil
}

// Text returns the indexed text. The slice aliases the tree's buffer and must
// not be modified.
func (t *Tree) Text() []byte {
	return t.text
}

// NodeCount returns the number of nodes, root included.
func (t *Tree) NodeCount() int {
	return len(t.nodes)
}

func (t *Tree) Root() Ref {
	return RootRef
}

// SuffixLink returns the suffix link of node n. Nodes whose link was never
// set point at the root.
func (t *Tree) SuffixLink(n Ref) Ref {
	return t.nodes[n].link
}

// Child returns the outgoing edge of node n whose label starts with symbol.
func (t *Tree) Child(n Ref, symbol byte) (Edge, bool) {
	e, ok := t.children[keyOf(n, symbol)]
	if !ok {
		return Edge{}, false
	}
	ed := t.edges[e]
	return Edge{Ref: e, Start: ed.start, End: ed.end, Open: ed.open, Dest: ed.dest}, true
}

// EdgeEnd resolves the inclusive end index of e against the current text.
func (t *Tree) EdgeEnd(e Edge) int {
	if e.Open {
		return len(t.text) - 1
	}
	return e.End
}

// EdgeLen returns the resolved label length of e.
func (t *Tree) EdgeLen(e Edge) int {
	return t.EdgeEnd(e) - e.Start + 1
}

func (t *Tree) newNode() Ref {
	t.nodes = append(t.nodes, node{link: RootRef})
	return Ref(len(t.nodes) - 1)
}

func (t *Tree) newEdge(start, end int, open bool, dest Ref) Ref {
	t.edges = append(t.edges, edge{start: start, end: end, open: open, dest: dest})
	return Ref(len(t.edges) - 1)
}

func (t *Tree) edgeLen(e Ref) int {
	ed := &t.edges[e]
	if ed.open {
		return len(t.text) - ed.start
	}
	return ed.end - ed.start + 1
}

// walkDown moves the active point across edge e when activeLength covers the
// whole label. It reports whether the active point moved.
func (t *Tree) walkDown(e Ref) bool {
	l := t.edgeLen(e)
	if t.activeLength < l {
		return false
	}
	t.activeEdge += l
	t.activeLength -= l
	t.activeNode = t.edges[e].dest
	return true
}

// Append extends the text by symbol and updates the tree so that it spells
// every suffix of the new text.
func (t *Tree) Append(symbol byte) error {
	if limit := t.opts.textLimit(); len(t.text) >= limit {
		return fmt.Errorf("%w: limit %d", ErrCapacityExceeded, limit)
	}
	t.text = append(t.text, symbol)
	pos := len(t.text) - 1

	t.remainder++
	lastInternal := NoRef

	for t.remainder > 0 {
		if t.activeLength == 0 {
			t.activeEdge = pos
		}

		first := t.text[t.activeEdge]
		e, ok := t.children[keyOf(t.activeNode, first)]
		if !ok {
			// Rule 2, new leaf straight off the active node.
			leaf := t.newNode()
			t.children[keyOf(t.activeNode, first)] = t.newEdge(pos, 0, true, leaf)
			if lastInternal != NoRef {
				t.nodes[lastInternal].link = t.activeNode
				lastInternal = NoRef
			}
		} else {
			if t.walkDown(e) {
				continue
			}

			split := t.edges[e].start + t.activeLength
			if t.text[split] == symbol {
				// Rule 3, the suffix is already implicit. So are all shorter ones.
				if lastInternal != NoRef {
					t.nodes[lastInternal].link = t.activeNode
				}
				t.activeLength++
				break
			}

			// Rule 2, split e at the active point.
			internal := t.newNode()
			old := t.edges[e]

			t.edges[e].end = split - 1
			t.edges[e].open = false
			t.edges[e].dest = internal

			t.children[keyOf(internal, t.text[split])] = t.newEdge(split, old.end, old.open, old.dest)
			t.children[keyOf(internal, symbol)] = t.newEdge(pos, 0, true, t.newNode())

			if lastInternal != NoRef {
				t.nodes[lastInternal].link = internal
			}
			lastInternal = internal
		}

		t.remainder--
		if t.activeNode == RootRef && t.activeLength > 0 {
			t.activeLength--
			t.activeEdge = pos - t.remainder + 1
		} else if t.activeNode != RootRef {
			t.activeNode = t.nodes[t.activeNode].link
		}
	}
	return nil
}
