/*
Package exhaustive computes LZ76 phrase counts for every binary string of a
fixed length.

Strings are enumerated by recursive doubling: the parse of a prefix is
extended by '0' and by '1' in turn, so each prefix is parsed exactly once no
matter how many strings share it. The string for index i is the big endian
bit pattern of i written with the symbols '0' and '1'.

Distribution splits the enumeration on the first few bits. Every prefix of
that length roots an independent subtree, and each subtree is walked by a
goroutine that owns its own parse states and its own histogram.
*/
package exhaustive
