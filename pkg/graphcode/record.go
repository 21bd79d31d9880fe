package graphcode

import (
	"encoding/binary"

	"github.com/matzehuels/adjcode/pkg/adjlist"
	"github.com/matzehuels/adjcode/pkg/errors"
)

// Width is the size of the integers in a record.
type Width int

const (
	// Narrow records use one byte per value.
	Narrow Width = 1
	// Wide records start with the escape byte 0 and use two byte
	// little-endian values.
	Wide Width = 2
)

const (
	// Sentinel closes every neighbour list and, as the first byte of a
	// record, announces a wide record.
	Sentinel = 0

	// MaxNarrowOrder is the largest vertex count written as a narrow record.
	// Counts from 253 upwards are always escaped.
	MaxNarrowOrder = 252

	// MaxWideOrder is the largest vertex count any record can hold.
	MaxWideOrder = 0xFFFF
)

// Max returns the largest value representable in w.
func (w Width) Max() int {
	if w == Wide {
		return 0xFFFF
	}
	return 0xFF
}

// String returns "narrow" or "wide".
func (w Width) String() string {
	if w == Wide {
		return "wide"
	}
	return "narrow"
}

// WidthFor picks the record width for a graph of order n in format f.
func WidthFor(f Format, n int) (Width, error) {
	switch {
	case n < 1:
		return 0, errors.New(errors.ErrCodeInvalidInput, "graph has no vertices")
	case n <= MaxNarrowOrder:
		return Narrow, nil
	case f == Planar:
		return 0, errors.New(errors.ErrCodeWidthOverflow, "planar code holds at most %d vertices, got %d", MaxNarrowOrder, n)
	case n <= MaxWideOrder:
		return Wide, nil
	default:
		return 0, errors.New(errors.ErrCodeWidthOverflow, "graph has %d vertices, at most %d are supported", n, MaxWideOrder)
	}
}

// Record is one encoded graph.
type Record struct {
	Format Format
	Width  Width
	Order  int    // number of vertices
	Edges  int    // edge entries written (pairs for signed code)
	Data   []byte // the encoded bytes, count included
}

// Encode encodes g as a single record of format f.
func Encode(f Format, g *adjlist.Graph) (Record, error) {
	return AppendRecord(nil, f, g)
}

// AppendRecord encodes g and appends the bytes to dst. The returned
// record's Data aliases the extended dst. On error nothing usable is
// appended.
func AppendRecord(dst []byte, f Format, g *adjlist.Graph) (Record, error) {
	n := g.Order()
	width, err := WidthFor(f, n)
	if err != nil {
		return Record{}, err
	}

	start := len(dst)
	e := encoder{width: width, buf: dst}
	if width == Wide {
		e.buf = append(e.buf, Sentinel)
	}
	if err := e.value(n, "vertex count"); err != nil {
		return Record{}, err
	}

	switch f {
	case Multi:
		err = e.multi(g)
	case Planar:
		err = e.planar(g)
	case Signed:
		err = e.signed(g)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "unknown format %d", int(f))
	}
	if err != nil {
		return Record{}, err
	}

	return Record{
		Format: f,
		Width:  width,
		Order:  n,
		Edges:  e.edges,
		Data:   e.buf[start:],
	}, nil
}

type encoder struct {
	width Width
	buf   []byte
	edges int
}

// value appends a range-checked, non-zero value.
func (e *encoder) value(v int, what string) error {
	if err := errors.ValidateWidth(v, e.width.Max(), what); err != nil {
		return err
	}
	e.raw(v)
	return nil
}

// raw appends v without checks; callers guarantee 0 <= v <= width.Max().
func (e *encoder) raw(v int) {
	if e.width == Wide {
		e.buf = binary.LittleEndian.AppendUint16(e.buf, uint16(v))
		return
	}
	e.buf = append(e.buf, byte(v))
}

func (e *encoder) multi(g *adjlist.Graph) error {
	for i, v := range g.Vertices {
		cur := i + 1
		for _, edge := range v.Edges {
			if edge.To <= cur {
				continue
			}
			if err := e.neighbour(cur, edge.To); err != nil {
				return err
			}
		}
		e.raw(Sentinel)
	}
	return nil
}

func (e *encoder) planar(g *adjlist.Graph) error {
	for i, v := range g.Vertices {
		for _, edge := range v.Edges {
			if err := e.neighbour(i+1, edge.To); err != nil {
				return err
			}
		}
		e.raw(Sentinel)
	}
	return nil
}

func (e *encoder) signed(g *adjlist.Graph) error {
	for i, v := range g.Vertices {
		cur := i + 1
		for _, edge := range v.Edges {
			if edge.To <= cur {
				continue
			}
			if err := e.neighbour(cur, edge.To); err != nil {
				return err
			}
			switch edge.Sign {
			case adjlist.Positive:
				e.raw(1)
			case adjlist.Negative:
				e.raw(0)
			default:
				return errors.New(errors.ErrCodeInvalidInput, "edge %d-%d has no sign", cur, edge.To)
			}
		}
		e.raw(Sentinel)
	}
	return nil
}

func (e *encoder) neighbour(v, w int) error {
	if err := e.value(w, "neighbour"); err != nil {
		return errors.Wrap(errors.ErrCodeWidthOverflow, err, "vertex %d", v)
	}
	e.edges++
	return nil
}
