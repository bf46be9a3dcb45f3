package suffixtree

// Find reports whether pattern occurs in the text. The empty pattern is
// always found.
func (t *Tree) Find(pattern []byte) bool {
	n := RootRef
	i := 0
	for i < len(pattern) {
		e, ok := t.children[keyOf(n, pattern[i])]
		if !ok {
			return false
		}
		ed := &t.edges[e]
		l := t.edgeLen(e)
		for j := 0; j < l; j++ {
			if i == len(pattern) {
				return true
			}
			if t.text[ed.start+j] != pattern[i] {
				return false
			}
			i++
		}
		n = ed.dest
	}
	return true
}

// FindString is Find for string patterns.
func (t *Tree) FindString(pattern string) bool {
	return t.Find([]byte(pattern))
}
