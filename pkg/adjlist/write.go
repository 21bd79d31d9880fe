package adjlist

import (
	"bufio"
	"io"
	"strconv"
)

// Write prints g in adjacency notation followed by a blank line, so that
// consecutive calls produce a stream [Scanner] splits back into graphs.
// opts.ZeroBased shifts all ids down by one; opts.Signed (or g.Signed)
// appends edge signs.
func Write(w io.Writer, g *Graph, opts Options) error {
	bw := bufio.NewWriter(w)
	off := opts.offset()
	signed := opts.Signed || g.Signed

	var buf []byte
	for i, v := range g.Vertices {
		buf = strconv.AppendInt(buf[:0], int64(i+1-off), 10)
		buf = append(buf, ':')
		for j, e := range v.Edges {
			if j == 0 {
				buf = append(buf, ' ')
			} else {
				buf = append(buf, ", "...)
			}
			buf = strconv.AppendInt(buf, int64(e.To-off), 10)
			if signed {
				buf = append(buf, e.Sign.String()...)
			}
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
