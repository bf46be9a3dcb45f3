package lzref

import "math"

// PhraseCount76 returns the number of LZ76 phrases in s.
func PhraseCount76(s []byte) int {
	st := NewState(len(s))
	for _, b := range s {
		st.Push(b)
	}
	return st.Complexity()
}

// Complexity76 returns PhraseCount76(s) * log2(len(s)), or 0 for empty s.
func Complexity76(s []byte) float64 {
	if len(s) == 0 {
		return 0
	}
	return float64(PhraseCount76(s)) * math.Log2(float64(len(s)))
}

// Symmetric76 averages Complexity76 over s and its reverse.
func Symmetric76(s []byte) float64 {
	if len(s) == 0 {
		return 0
	}
	return (Complexity76(s) + Complexity76(Reverse(s))) / 2
}

// Conditional76 returns Complexity76(xy) - Complexity76(x).
//
// Note the argument order: this is K(XY) - K(X), which may be the reverse of
// the usual C(Y|X) reading. Existing results depend on this value so it is
// kept as is. Empty x or empty y yields 0.
func Conditional76(x, y []byte) float64 {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	return Complexity76(concat(x, y)) - Complexity76(x)
}

// Reverse returns a reversed copy of s.
func Reverse(s []byte) []byte {
	r := make([]byte, len(s))
	for i, b := range s {
		r[len(s)-1-i] = b
	}
	return r
}

func concat(x, y []byte) []byte {
	xy := make([]byte, 0, len(x)+len(y))
	xy = append(xy, x...)
	return append(xy, y...)
}
