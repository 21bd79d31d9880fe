package graphcode

import (
	"io"

	"github.com/matzehuels/adjcode/pkg/adjlist"
	"github.com/matzehuels/adjcode/pkg/errors"
)

// Writer writes a graph code stream: the magic header once, then one record
// per graph in call order.
//
// The header is written lazily with the first record, or by Close when no
// record was written. A graph that fails to encode writes nothing.
type Writer struct {
	w      io.Writer
	format Format
	header bool
	count  int
}

// NewWriter returns a Writer producing format f on w.
func NewWriter(w io.Writer, f Format) *Writer {
	return &Writer{w: w, format: f}
}

// Format returns the format being written.
func (w *Writer) Format() Format { return w.format }

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.count }

// WriteGraph encodes g and appends its record to the stream.
func (w *Writer) WriteGraph(g *adjlist.Graph) (Record, error) {
	rec, err := Encode(w.format, g)
	if err != nil {
		return Record{}, err
	}
	if err := w.WriteRecord(rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// WriteRecord appends an already encoded record.
func (w *Writer) WriteRecord(rec Record) error {
	if rec.Format != w.format {
		return errors.New(errors.ErrCodeInvalidFormat, "cannot write %s record to %s stream", rec.Format, w.format)
	}
	if err := w.writeHeader(); err != nil {
		return err
	}
	if _, err := w.w.Write(rec.Data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write record %d", w.count+1)
	}
	w.count++
	return nil
}

// Close writes the header if nothing was written yet. It does not close
// the underlying writer.
func (w *Writer) Close() error {
	return w.writeHeader()
}

func (w *Writer) writeHeader() error {
	if w.header {
		return nil
	}
	if _, err := io.WriteString(w.w, w.format.Magic()); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write header")
	}
	w.header = true
	return nil
}

// Marshal encodes graphs as a complete stream of format f.
func Marshal(f Format, graphs ...*adjlist.Graph) ([]byte, error) {
	var buf sliceWriter
	w := NewWriter(&buf, f)
	for _, g := range graphs {
		if _, err := w.WriteGraph(g); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

type sliceWriter []byte

func (s *sliceWriter) Write(p []byte) (int, error) {
	*s = append(*s, p...)
	return len(p), nil
}
