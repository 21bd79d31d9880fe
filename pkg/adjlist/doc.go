// Package adjlist reads and writes graphs in the line-oriented adjacency
// list notation used as the human-readable side of the graph codes.
//
// # Notation
//
// Each vertex is one line: its id, a colon, and a comma separated list of
// neighbours. Graphs are separated by one or more blank lines:
//
//	1: 2, 3
//	2: 1, 3
//	3: 1, 2
//
//	1: 2
//	2: 1
//
// Signed graphs suffix every neighbour with its sign:
//
//	1: 2+, 3-
//	2: 1+
//	3: 1-
//
// A vertex without neighbours keeps its colon and leaves the right-hand side
// empty.
//
// # Numbering
//
// Vertices are numbered by declaration order starting at 1. Input written
// with 0-based ids is accepted with [Options.ZeroBased]; ids are shifted by
// one while parsing so a [Graph] is always 1-based. Declared ids are only
// checked against declaration order in strict mode (see [Validate]).
//
// # Reading
//
// [Scanner] splits a stream into [Block] values, one per graph, and [Parse]
// turns a block into a [Graph]:
//
//	sc := adjlist.NewScanner(os.Stdin)
//	for sc.Scan() {
//	    g, err := adjlist.Parse(sc.Block(), adjlist.Options{})
//	    ...
//	}
//	if err := sc.Err(); err != nil { ... }
//
// [ReadMatrices] accepts 0/1 adjacency matrices instead.
package adjlist
