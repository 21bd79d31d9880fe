// Package graphcode encodes and decodes the multi_code, planar_code and
// signed_code binary graph formats.
//
// # Stream layout
//
// A stream starts with an ASCII magic string naming the format
// (">>multi_code<<", ">>planar_code<<" or ">>signed_code<<") followed by one
// record per graph. Records carry no separators; each is self-delimiting
// given its vertex count.
//
// # Records
//
// A record starts with the vertex count N and continues with one neighbour
// list per vertex, in vertex order, each closed by the sentinel 0:
//
//	narrow: N                 | n n ... 0 | n ... 0 | ...   (1 byte values)
//	wide:   0  N(lo) N(hi)    | n n ... 0 | n ... 0 | ...   (2 byte little-endian values)
//
// The [Width] of a record is chosen once per graph: narrow when
// N <= [MaxNarrowOrder], wide otherwise. A leading 0 can never be a narrow
// count, which is what lets a decoder tell the two apart.
//
// # Formats
//
//   - [Multi] lists each undirected edge once, at its smaller endpoint:
//     vertex v only writes neighbours w > v.
//   - [Planar] writes every neighbour list in full and in order, preserving
//     the rotation system of the embedding. Only narrow records are written.
//   - [Signed] deduplicates like [Multi] and writes each edge as a pair
//     (w, s) where s is 1 for a positive and 0 for a negative edge.
//
// The deduplicating formats assume the input lists every edge at both
// endpoints. An edge listed only at its larger endpoint is lost; use
// adjlist.Validate to reject such graphs.
//
// Values that do not fit the chosen width are reported as WIDTH_OVERFLOW
// errors, never truncated.
package graphcode
