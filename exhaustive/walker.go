package exhaustive

import (
	"github.com/forestrie/go-lzsuffix/lzref"
)

// walker holds one parse state per depth. states[k] is the parse of the first
// k symbols of the string currently being enumerated.
type walker struct {
	length int
	states []*lzref.State
}

func newWalker(length int) *walker {
	w := &walker{length: length, states: make([]*lzref.State, length+1)}
	for i := range w.states {
		w.states[i] = lzref.NewState(length)
	}
	return w
}

// seed parses the k bit prefix and leaves the result in states[k].
func (w *walker) seed(prefix uint32, k int) {
	w.states[0].Reset()
	for i := 0; i < k; i++ {
		bit := (prefix >> (k - 1 - i)) & 1
		w.states[i+1].CopyFrom(w.states[i])
		w.states[i+1].Push(symbol(bit))
	}
}

// walk enumerates every completion of the k symbols already parsed into
// states[k]. index carries the bits chosen so far.
func (w *walker) walk(k int, index uint32, leaf func(index uint32, complexity int)) {
	if k == w.length {
		leaf(index, w.states[k].Complexity())
		return
	}
	for bit := uint32(0); bit < 2; bit++ {
		w.states[k+1].CopyFrom(w.states[k])
		w.states[k+1].Push(symbol(bit))
		w.walk(k+1, index<<1|bit, leaf)
	}
}

func symbol(bit uint32) byte {
	return '0' + byte(bit)
}
