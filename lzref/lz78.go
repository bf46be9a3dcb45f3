package lzref

import (
	"bytes"
	"math"
)

// PhraseCount78 returns the LZ78-style phrase count of s.
//
// This is the prefix variant: the current word keeps growing while it is a
// prefix of (or equal to) some dictionary word, and is added to the
// dictionary when it is not. A trailing open word counts as one phrase.
func PhraseCount78(s []byte) int {
	var dict [][]byte
	start := 0
	for i := range s {
		word := s[start : i+1]
		found := false
		for _, d := range dict {
			if bytes.HasPrefix(d, word) {
				found = true
				break
			}
		}
		if !found {
			dict = append(dict, word)
			start = i + 1
		}
	}
	if start < len(s) {
		return len(dict) + 1
	}
	return len(dict)
}

// Complexity78 is PhraseCount78 as a float, for symmetry with Complexity76.
func Complexity78(s []byte) float64 {
	return float64(PhraseCount78(s))
}

// Symmetric78 averages Complexity78 over s and its reverse.
func Symmetric78(s []byte) float64 {
	if len(s) == 0 {
		return 0
	}
	return (Complexity78(s) + Complexity78(Reverse(s))) / 2
}

// Conditional78 returns Complexity78(xy) - Complexity78(x), with the same
// argument order caveat as Conditional76.
func Conditional78(x, y []byte) float64 {
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	return Complexity78(concat(x, y)) - Complexity78(x)
}

// Mutual78 compares the LZ78 complexity of the two halves of s with that of
// the whole:
//
//	(C(s1) + C(s2) - C(s)) / (2 C(s)) * ln(len(s))
//
// where s1 is the first len(s)/2 symbols. It is 0 when len(s) < 2.
func Mutual78(s []byte) float64 {
	n := len(s)
	if n < 2 {
		return 0
	}
	total := Complexity78(s)
	if total == 0 {
		return 0
	}
	half := n / 2
	return (Complexity78(s[:half]) + Complexity78(s[half:]) - total) / (2 * total) * math.Log(float64(n))
}
