package suffixtree

/*

# Online suffix tree (Ukkonen)

This package builds a suffix tree one symbol at a time. Every call to
Append extends the text by a single byte and updates the tree so that every
suffix of the text seen so far is spelled by some path from the root. Prior
input is never rescanned.

Storage is flat and addressed by index:

- nodes and edges live in arenas and are addressed by Ref
- suffix links are plain Refs, they never own anything
- edge labels are [start, end] ranges over the text buffer

## Open edges

Leaf edges are created open. An open edge has no stored end; its end is
resolved against the current text length at each use:

	end = Len() - 1

This is what makes leaf growth free: appending a symbol extends every leaf
implicitly.

## Active point

Construction resumes from the active point

	(activeNode, activeEdge, activeLength, remainder)

activeLength == 0 means the point sits exactly on activeNode. Otherwise it is
activeLength symbols along the edge leaving activeNode whose first symbol is
text[activeEdge]. remainder counts the suffixes of the current phase that are
not yet explicit in the tree.

## Child lookup

Outgoing edges are held in a single map keyed by (node, first symbol). A node
therefore has at most one outgoing edge per symbol value, and Reset can clear
the whole tree while retaining the map's buckets.

## Concurrency

A Tree is single owner. Concurrent Append calls on one instance are not
synchronised and must be prevented by the caller.

*/
