package graphcode

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"io"
	"strings"

	"github.com/matzehuels/adjcode/pkg/adjlist"
	"github.com/matzehuels/adjcode/pkg/errors"
)

// Reader decodes a graph code stream.
//
// Decoded multi and signed graphs list every edge at both endpoints, in the
// order the records mention them, so encoding a decoded graph reproduces
// the original record. Planar graphs keep each rotation exactly.
//
// By default every vertex carries a terminated list. Streams written by the
// classic multi_code and signed_code generators stop after vertex n-1,
// since the last vertex has no larger neighbour; call [Reader.SetClassic]
// to read those.
type Reader struct {
	r       *bufio.Reader
	format  Format
	header  bool
	classic bool
	count   int
}

// NewReader returns a Reader for a stream of format f.
func NewReader(r io.Reader, f Format) *Reader {
	return &Reader{r: bufferedReader(r), format: f}
}

// NewDetectingReader peeks at the magic header to find the stream format.
func NewDetectingReader(r io.Reader) (*Reader, error) {
	br := bufferedReader(r)
	f, err := DetectFormat(br)
	if err != nil {
		return nil, err
	}
	return &Reader{r: br, format: f}, nil
}

func bufferedReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// DetectFormat returns the format whose magic string starts r without
// consuming any input.
func DetectFormat(r *bufio.Reader) (Format, error) {
	peek, err := r.Peek(len(MagicPlanar))
	if err != nil && !stderrors.Is(err, io.EOF) {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "read header")
	}
	for _, f := range Formats {
		if strings.HasPrefix(string(peek), f.Magic()) {
			return f, nil
		}
	}
	return 0, errors.New(errors.ErrCodeBadHeader, "stream does not start with a known graph code header")
}

// Format returns the format being read.
func (r *Reader) Format() Format { return r.format }

// SetClassic switches multi and signed records to n-1 neighbour lists.
// Planar records always hold n lists and are not affected.
func (r *Reader) SetClassic(on bool) { r.classic = on }

// lists returns how many terminated neighbour lists a record of order n
// holds in this reader's mode.
func (r *Reader) lists(n int) int {
	if r.classic && r.format.Dedup() {
		return n - 1
	}
	return n
}

// Count returns the number of graphs decoded so far.
func (r *Reader) Count() int { return r.count }

// Next decodes the next graph. It returns io.EOF when the stream ends
// cleanly after a record.
func (r *Reader) Next() (*adjlist.Graph, error) {
	if err := r.readHeader(); err != nil {
		return nil, err
	}

	first, err := r.r.ReadByte()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read record %d", r.count+1)
	}

	d := decoder{r: r.r, width: Narrow}
	n := int(first)
	if first == Sentinel {
		d.width = Wide
		if n, err = d.value(); err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "record %d has no vertices", r.count+1)
		}
	}

	g := adjlist.New(n, r.format.Signed())
	for v := 1; v <= r.lists(n); v++ {
		if err := d.list(r.format, g, v); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "record %d, vertex %d", r.count+1, v)
		}
	}
	r.count++
	return g, nil
}

func (r *Reader) readHeader() error {
	if r.header {
		return nil
	}
	magic := r.format.Magic()
	buf := make([]byte, len(magic))
	if _, err := io.ReadFull(r.r, buf); err != nil || string(buf) != magic {
		return errors.New(errors.ErrCodeBadHeader, "missing %s header", magic)
	}
	r.header = true
	return nil
}

// ReadAll decodes every remaining graph.
func (r *Reader) ReadAll() ([]*adjlist.Graph, error) {
	var graphs []*adjlist.Graph
	for {
		g, err := r.Next()
		if stderrors.Is(err, io.EOF) {
			return graphs, nil
		}
		if err != nil {
			return graphs, err
		}
		graphs = append(graphs, g)
	}
}

// Unmarshal decodes a complete stream of format f.
func Unmarshal(f Format, data []byte) ([]*adjlist.Graph, error) {
	return NewReader(bytes.NewReader(data), f).ReadAll()
}

type decoder struct {
	r     *bufio.Reader
	width Width
	buf   [2]byte
}

func (d *decoder) value() (int, error) {
	if _, err := io.ReadFull(d.r, d.buf[:d.width]); err != nil {
		return 0, errors.Wrap(errors.ErrCodeTruncated, io.ErrUnexpectedEOF, "record ends early")
	}
	if d.width == Wide {
		return int(d.buf[0]) | int(d.buf[1])<<8, nil
	}
	return int(d.buf[0]), nil
}

// list reads the neighbour list of vertex v up to its sentinel.
func (d *decoder) list(f Format, g *adjlist.Graph, v int) error {
	n := g.Order()
	for {
		w, err := d.value()
		if err != nil {
			return err
		}
		if w == Sentinel {
			return nil
		}
		if err := errors.ValidateVertex(w, n); err != nil {
			return err
		}

		switch f {
		case Planar:
			g.AddArc(v, w, adjlist.SignNone)
		case Signed:
			s, err := d.value()
			if err != nil {
				return err
			}
			switch s {
			case 1:
				g.AddEdge(v, w, adjlist.Positive)
			case 0:
				g.AddEdge(v, w, adjlist.Negative)
			default:
				return errors.New(errors.ErrCodeInvalidInput, "sign value %d is neither 0 nor 1", s)
			}
		default:
			g.AddEdge(v, w, adjlist.SignNone)
		}
	}
}
