// Package lzref is the brute-force reference for LZ complexity measures.
//
// Every routine here rescans prior input for each candidate phrase and is
// O(n²) or worse. It exists as ground truth for the suffix-tree counter in
// package lz76, and to provide the auxiliary measures (LZ78, block entropy,
// symmetric and conditional variants) with the exact numeric behaviour
// callers already depend on.
package lzref
