package lz76

/*

# LZ76 phrase counting over an online suffix tree

Counter parses its input greedily into LZ76 phrases: a phrase grows while it
still occurs in the text that precedes its final symbol, and closes on the
first symbol that makes it new.

The "has this occurred before" test is answered by a suffix tree used as a
live dictionary. The dictionary lags the input by exactly one symbol:

	input     s[0] s[1] ... s[n-1]
	dict      s[0] s[1] ... s[n-2]

A symbol is first tested as an extension of the current phrase and only
committed to the dictionary on the following Append. Committing immediately
would make every phrase trivially found, since it would contain itself.

The phrase is matched by a cursor (node, length) that is independent of
the tree's own active point. Between calls the dictionary may split the edge
the cursor sits on, so the cursor is re-canonicalised against the current edge
set before every step.

*/
