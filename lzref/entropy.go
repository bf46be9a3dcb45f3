package lzref

import "math"

// BlockEntropy returns the Shannon entropy, in bits, of the distribution of
// the overlapping length-dim blocks of s. It is 0 when dim is 0 or exceeds
// len(s).
func BlockEntropy(s []byte, dim int) float64 {
	if dim <= 0 || dim > len(s) {
		return 0
	}
	total := len(s) - dim + 1
	counts := make(map[string]int, total)
	for i := 0; i < total; i++ {
		counts[string(s[i:i+dim])]++
	}
	var h float64
	for _, c := range counts {
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// SymmetricBlockEntropy averages BlockEntropy over s and its reverse.
func SymmetricBlockEntropy(s []byte, dim int) float64 {
	if dim <= 0 || dim > len(s) {
		return 0
	}
	return (BlockEntropy(s, dim) + BlockEntropy(Reverse(s), dim)) / 2
}
