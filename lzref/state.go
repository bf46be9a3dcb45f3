package lzref

import "bytes"

// State is an incremental LZ76 parse.
//
// The current word is text[wordStart:]. It stays open while it occurs in the
// text before its final symbol, which is the already parsed phrases plus the
// word minus its last symbol.
type State struct {
	text      []byte
	wordStart int
	phrases   int
}

func NewState(capacity int) *State {
	return &State{text: make([]byte, 0, capacity)}
}

// Push appends b and reports whether it closed a phrase.
func (s *State) Push(b byte) bool {
	s.text = append(s.text, b)
	n := len(s.text)
	if bytes.Contains(s.text[:n-1], s.text[s.wordStart:]) {
		return false
	}
	s.phrases++
	s.wordStart = n
	return true
}

// Complexity returns the phrase count, including a trailing open word.
func (s *State) Complexity() int {
	if s.wordStart < len(s.text) {
		return s.phrases + 1
	}
	return s.phrases
}

func (s *State) Len() int {
	return len(s.text)
}

// Clone returns an independent copy whose buffer has at least the capacity of
// the original.
func (s *State) Clone() *State {
	text := make([]byte, len(s.text), cap(s.text))
	copy(text, s.text)
	return &State{text: text, wordStart: s.wordStart, phrases: s.phrases}
}

// CopyFrom overwrites s with o, reusing s's buffer when it is large enough.
func (s *State) CopyFrom(o *State) {
	s.text = append(s.text[:0], o.text...)
	s.wordStart = o.wordStart
	s.phrases = o.phrases
}

func (s *State) Reset() {
	s.text = s.text[:0]
	s.wordStart = 0
	s.phrases = 0
}
