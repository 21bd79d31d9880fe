// Package pipeline runs whole-stream conversions between adjacency text,
// graph code streams and diagrams.
//
// # Overview
//
// Each conversion reads one input stream and writes one output stream:
//
//	Encode: adjacency text → Scanner → Parse → graphcode.Writer → binary stream
//	Decode: binary stream → graphcode.Reader → adjlist.Write → adjacency text
//	Render: binary stream → graphcode.Reader → nodelink.ToDOT → DOT/SVG/PNG/PDF
//	Matrix: adjacency matrices → adjlist.ReadMatrices → adjacency text or binary
//
// Graphs are handled strictly one at a time in input order. The first error
// stops the stream and is returned wrapped with the 1-based graph number;
// records already written stay written, a failed graph writes nothing.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	stats, err := runner.Encode(ctx, os.Stdin, os.Stdout, pipeline.EncodeOptions{
//	    Format: graphcode.Multi,
//	})
//
// The CLI and the HTTP server share the same [Runner]; the server goes
// through [Runner.EncodeBytes] and [Runner.DecodeBytes], which consult the
// runner's cache first.
package pipeline

import (
	"fmt"
	"slices"
	"time"

	"github.com/matzehuels/adjcode/pkg/adjlist"
	"github.com/matzehuels/adjcode/pkg/cache"
	"github.com/matzehuels/adjcode/pkg/errors"
	"github.com/matzehuels/adjcode/pkg/graphcode"
	"github.com/matzehuels/adjcode/pkg/render/nodelink"
)

// Operation names reported to hooks and logs.
const (
	OpEncode = "encode"
	OpDecode = "decode"
	OpRender = "render"
	OpMatrix = "matrix"
)

// Render output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidRenderFormats lists accepted render outputs.
var ValidRenderFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// Defaults
const (
	DefaultEngine = nodelink.EngineNeato
	DefaultScale  = 2.0
)

// EncodeOptions configures [Runner.Encode].
type EncodeOptions struct {
	Format    graphcode.Format // required
	ZeroBased bool             // input ids start at 0
	Strict    bool             // validate order, range and symmetry
}

// Validate checks that a known format was chosen.
func (o EncodeOptions) Validate() error {
	return validateFormat(o.Format)
}

// KeyOpts returns the cache key options for this encoding.
func (o EncodeOptions) KeyOpts() cache.EncodeKeyOpts {
	return cache.EncodeKeyOpts{
		Format:    o.Format.String(),
		ZeroBased: o.ZeroBased,
		Strict:    o.Strict,
	}
}

func (o EncodeOptions) parseOptions() adjlist.Options {
	return adjlist.Options{
		ZeroBased: o.ZeroBased,
		Signed:    o.Format.Signed(),
		Strict:    o.Strict,
	}
}

// DecodeOptions configures [Runner.Decode].
type DecodeOptions struct {
	// Format forces the stream format. Zero detects it from the header.
	Format graphcode.Format

	// ZeroBased writes ids starting at 0.
	ZeroBased bool

	// Classic reads multi and signed records without the last vertex's
	// list, as the classic generators write them.
	Classic bool
}

// KeyOpts returns the cache key options for this decoding.
func (o DecodeOptions) KeyOpts() cache.DecodeKeyOpts {
	return cache.DecodeKeyOpts{ZeroBased: o.ZeroBased, Classic: o.Classic}
}

// RenderOptions configures [Runner.Render].
type RenderOptions struct {
	Format    graphcode.Format // zero detects from the header
	Output    string           // dot, svg, png or pdf
	Engine    string           // Graphviz layout engine
	Scale     float64          // PNG scale factor
	ZeroBased bool             // label nodes from 0
	Classic   bool             // n-1 lists per multi/signed record
	Graph     int              // 1-based graph to draw, 0 draws all
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *RenderOptions) ValidateAndSetDefaults() error {
	if o.Output == "" {
		o.Output = FormatSVG
	}
	if !ValidRenderFormats[o.Output] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid output format: %q (must be one of: dot, svg, png, pdf)", o.Output)
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if err := nodelink.ValidateEngine(o.Engine); err != nil {
		return err
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Graph < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "graph must be 1 or more, got %d", o.Graph)
	}
	if o.Format != 0 {
		return validateFormat(o.Format)
	}
	return nil
}

// MatrixOptions configures [Runner.Matrix].
type MatrixOptions struct {
	// Encode writes a graph code stream of this format. Zero writes
	// adjacency text.
	Encode graphcode.Format

	// ZeroBased writes adjacency text ids starting at 0.
	ZeroBased bool
}

// Stats summarizes one stream.
type Stats struct {
	Graphs   int // graphs converted
	Vertices int // total vertices
	Edges    int // total edges
	Wide     int // records that needed the 16-bit escape
	Duration time.Duration
}

// Artifact is one rendered graph.
type Artifact struct {
	Index int // 0-based position in the stream
	Data  []byte
}

func validateFormat(f graphcode.Format) error {
	if slices.Contains(graphcode.Formats, f) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid graph code format: %d", int(f))
}

// graphError ties err to the 1-based graph it came from, keeping its code.
func graphError(err error, index int) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return errors.Wrap(code, err, "graph %d", index+1)
}

// label names a graph in diagrams.
func label(index int) string {
	return fmt.Sprintf("graph %d", index+1)
}
