package lz76

import (
	"fmt"

	"github.com/forestrie/go-lzsuffix/suffixtree"
)

const initialPhraseCapacity = 16

// cursor is the match position: length symbols below node, on the edge
// selected by the first of those symbols.
type cursor struct {
	node   suffixtree.Ref
	length int
}

// Counter computes the LZ76 phrase count of a symbol stream.
//
// A Counter is single owner. Use Reset to reuse one instance, and its
// allocations, across many independent strings.
type Counter struct {
	dict *suffixtree.Tree

	phrase     []byte
	pending    byte
	hasPending bool

	// ends holds the input offset just past each completed phrase.
	ends []int

	cur cursor
}

func New(opts ...suffixtree.Option) *Counter {
	c := &Counter{
		dict:   suffixtree.New(opts...),
		phrase: make([]byte, 0, initialPhraseCapacity),
	}
	c.cur = cursor{node: c.dict.Root()}
	return c
}

// Reset empties the dictionary and the phrase state. Buffers keep their
// capacity.
func (c *Counter) Reset() {
	c.dict.Reset()
	c.phrase = c.phrase[:0]
	c.pending = 0
	c.hasPending = false
	c.ends = c.ends[:0]
	c.cur = cursor{node: c.dict.Root()}
}

// Append feeds one symbol and reports whether it completed a phrase.
//
// On error the dictionary refused the delayed symbol and the counter is left
// as it was before the call. It should still be Reset before reuse.
func (c *Counter) Append(symbol byte) (bool, error) {
	if c.hasPending {
		if err := c.dict.Append(c.pending); err != nil {
			return false, fmt.Errorf("lz76: commit to dictionary: %w", err)
		}
	}
	c.phrase = append(c.phrase, symbol)
	c.pending = symbol
	c.hasPending = true

	if c.extend(symbol) {
		return false, nil
	}

	c.ends = append(c.ends, c.dict.Len()+1)
	c.cur = cursor{node: c.dict.Root()}
	c.phrase = c.phrase[:0]
	return true, nil
}

// Complexity returns the number of phrases, counting an unfinished trailing
// phrase.
func (c *Counter) Complexity() int {
	if len(c.phrase) > 0 {
		return len(c.ends) + 1
	}
	return len(c.ends)
}

// Count resets the counter, feeds s and returns its complexity.
func (c *Counter) Count(s []byte) (int, error) {
	c.Reset()
	for _, b := range s {
		if _, err := c.Append(b); err != nil {
			return 0, err
		}
	}
	return c.Complexity(), nil
}

// Phrase returns the symbols of the phrase in progress. The slice is only
// valid until the next call that mutates the counter.
func (c *Counter) Phrase() []byte {
	return c.phrase
}

// Phrases returns the completed phrases in input order, followed by the
// phrase in progress when there is one. The result is a fresh copy.
func (c *Counter) Phrases() [][]byte {
	text := make([]byte, 0, c.dict.Len()+1)
	text = append(text, c.dict.Text()...)
	if c.hasPending {
		text = append(text, c.pending)
	}

	out := make([][]byte, 0, len(c.ends)+1)
	start := 0
	for _, end := range c.ends {
		out = append(out, text[start:end:end])
		start = end
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// Dictionary exposes the underlying tree for inspection. Callers must not
// append to it.
func (c *Counter) Dictionary() *suffixtree.Tree {
	return c.dict
}

// PhraseCount is a convenience for a single string.
func PhraseCount(s []byte, opts ...suffixtree.Option) (int, error) {
	return New(opts...).Count(s)
}
