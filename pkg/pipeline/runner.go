package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/adjcode/pkg/adjlist"
	"github.com/matzehuels/adjcode/pkg/cache"
	"github.com/matzehuels/adjcode/pkg/errors"
	"github.com/matzehuels/adjcode/pkg/graphcode"
	"github.com/matzehuels/adjcode/pkg/observability"
	"github.com/matzehuels/adjcode/pkg/render"
	"github.com/matzehuels/adjcode/pkg/render/nodelink"
)

// Runner executes conversions and memoizes whole-body results in a cache.
//
// The Runner holds no per-stream state, so one Runner may serve many
// goroutines at once.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	TTL    time.Duration
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		TTL:    cache.DefaultTTL,
		Logger: logger,
	}
}

// Encode converts adjacency text from in into a graph code stream on out.
func (r *Runner) Encode(ctx context.Context, in io.Reader, out io.Writer, opts EncodeOptions) (Stats, error) {
	if err := opts.Validate(); err != nil {
		return Stats{}, err
	}
	format := opts.Format.String()
	return r.run(ctx, OpEncode, format, func(stats *Stats) error {
		return r.encode(ctx, in, out, opts, stats)
	})
}

func (r *Runner) encode(ctx context.Context, in io.Reader, out io.Writer, opts EncodeOptions, stats *Stats) error {
	sc := adjlist.NewScanner(in)
	w := graphcode.NewWriter(out, opts.Format)
	popts := opts.parseOptions()

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		b := sc.Block()
		start := time.Now()

		g, err := adjlist.Parse(b, popts)
		var rec graphcode.Record
		if err == nil {
			rec, err = w.WriteGraph(g)
		}
		r.graphDone(ctx, observability.GraphEvent{
			Op:       OpEncode,
			Format:   opts.Format.String(),
			Index:    b.Index,
			Order:    rec.Order,
			Edges:    rec.Edges,
			Width:    widthName(rec),
			Duration: time.Since(start),
			Err:      err,
		})
		if err != nil {
			return graphError(err, b.Index)
		}

		stats.Graphs++
		stats.Vertices += rec.Order
		stats.Edges += rec.Edges
		if rec.Width == graphcode.Wide {
			stats.Wide++
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "read adjacency text")
	}
	return w.Close()
}

func widthName(rec graphcode.Record) string {
	if rec.Width == 0 {
		return ""
	}
	return rec.Width.String()
}

// Decode converts a graph code stream from in into adjacency text on out.
func (r *Runner) Decode(ctx context.Context, in io.Reader, out io.Writer, opts DecodeOptions) (Stats, error) {
	rd, err := newReader(in, opts.Format, opts.Classic)
	if err != nil {
		return Stats{}, err
	}
	wopts := adjlist.Options{ZeroBased: opts.ZeroBased, Signed: rd.Format().Signed()}
	return r.run(ctx, OpDecode, rd.Format().String(), func(stats *Stats) error {
		return r.each(ctx, OpDecode, rd, stats, func(_ int, g *adjlist.Graph) error {
			return adjlist.Write(out, g, wopts)
		})
	})
}

// Render draws every graph of a graph code stream and hands each result
// to emit in stream order. With opts.Graph set, earlier graphs are only
// decoded, the selected one is drawn and the rest of the stream is left
// unread; emit is not called when the stream is shorter.
func (r *Runner) Render(ctx context.Context, in io.Reader, opts RenderOptions, emit func(Artifact) error) (Stats, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Stats{}, err
	}
	rd, err := newReader(in, opts.Format, opts.Classic)
	if err != nil {
		return Stats{}, err
	}
	return r.run(ctx, OpRender, rd.Format().String(), func(stats *Stats) error {
		return r.each(ctx, OpRender, rd, stats, func(i int, g *adjlist.Graph) error {
			if opts.Graph > 0 && i+1 != opts.Graph {
				return nil
			}
			data, err := renderGraph(ctx, g, i, opts)
			if err != nil {
				return err
			}
			if err := emit(Artifact{Index: i, Data: data}); err != nil {
				return err
			}
			if opts.Graph > 0 {
				return errStop
			}
			return nil
		})
	})
}

func renderGraph(ctx context.Context, g *adjlist.Graph, index int, opts RenderOptions) ([]byte, error) {
	dot := nodelink.ToDOT(g, nodelink.Options{Label: label(index), ZeroBased: opts.ZeroBased})
	if opts.Output == FormatDOT {
		return []byte(dot), nil
	}

	svg, err := nodelink.RenderSVG(ctx, dot, opts.Engine)
	if err != nil {
		return nil, err
	}
	switch opts.Output {
	case FormatPNG:
		return render.ToPNG(ctx, svg, opts.Scale)
	case FormatPDF:
		return render.ToPDF(ctx, svg)
	default:
		return svg, nil
	}
}

// Matrix converts adjacency matrices from in into adjacency text, or into
// a graph code stream when opts.Encode is set.
func (r *Runner) Matrix(ctx context.Context, in io.Reader, out io.Writer, opts MatrixOptions) (Stats, error) {
	format := "text"
	var w *graphcode.Writer
	if opts.Encode != 0 {
		if err := validateFormat(opts.Encode); err != nil {
			return Stats{}, err
		}
		if opts.Encode.Signed() {
			return Stats{}, errors.New(errors.ErrCodeInvalidFormat, "adjacency matrices carry no edge signs")
		}
		format = opts.Encode.String()
		w = graphcode.NewWriter(out, opts.Encode)
	}

	return r.run(ctx, OpMatrix, format, func(stats *Stats) error {
		index := 0
		err := adjlist.ReadMatrices(in, func(g *adjlist.Graph) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			var err error
			if w != nil {
				_, err = w.WriteGraph(g)
			} else {
				err = adjlist.Write(out, g, adjlist.Options{ZeroBased: opts.ZeroBased})
			}
			r.graphDone(ctx, observability.GraphEvent{
				Op:       OpMatrix,
				Format:   format,
				Index:    index,
				Order:    g.Order(),
				Edges:    g.Size(),
				Duration: time.Since(start),
				Err:      err,
			})
			if err != nil {
				return graphError(err, index)
			}
			index++
			stats.Graphs++
			stats.Vertices += g.Order()
			stats.Edges += g.Size()
			return nil
		})
		if err != nil || w == nil {
			return err
		}
		return w.Close()
	})
}

// EncodeBytes encodes a complete request body, answering from the cache
// when the same body was encoded with the same options before. The second
// result reports a cache hit.
func (r *Runner) EncodeBytes(ctx context.Context, body []byte, opts EncodeOptions) ([]byte, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	key := r.Keyer.EncodeKey(body, opts.KeyOpts())
	return r.cached(ctx, OpEncode, key, func(buf *bytes.Buffer) error {
		_, err := r.Encode(ctx, bytes.NewReader(body), buf, opts)
		return err
	})
}

// DecodeBytes decodes a complete binary body, using the cache like
// [Runner.EncodeBytes].
func (r *Runner) DecodeBytes(ctx context.Context, body []byte, opts DecodeOptions) ([]byte, bool, error) {
	key := r.Keyer.DecodeKey(body, opts.KeyOpts())
	return r.cached(ctx, OpDecode, key, func(buf *bytes.Buffer) error {
		_, err := r.Decode(ctx, bytes.NewReader(body), buf, opts)
		return err
	})
}

func (r *Runner) cached(ctx context.Context, op, key string, convert func(*bytes.Buffer) error) ([]byte, bool, error) {
	hooks := observability.Cache()
	if data, hit, err := r.Cache.Get(ctx, key); err != nil {
		r.Logger.Warn("cache read failed", "op", op, "error", err)
	} else if hit {
		hooks.OnCacheHit(ctx, op)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, op)

	var buf bytes.Buffer
	if err := convert(&buf); err != nil {
		return nil, false, err
	}

	data := buf.Bytes()
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "op", op, "error", err)
	} else {
		hooks.OnCacheSet(ctx, op, len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// run brackets one stream with hooks and a summary log line.
func (r *Runner) run(ctx context.Context, op, format string, body func(*Stats) error) (Stats, error) {
	hooks := observability.Pipeline()
	hooks.OnStreamStart(ctx, op, format)

	var stats Stats
	start := time.Now()
	err := body(&stats)
	stats.Duration = time.Since(start)

	hooks.OnStreamComplete(ctx, op, format, stats.Graphs, stats.Duration, err)
	if err != nil {
		r.Logger.Debug("stream failed", "op", op, "format", format, "graphs", stats.Graphs, "error", err)
		return stats, err
	}

	r.Logger.Info("converted stream",
		"op", op,
		"format", format,
		"graphs", stats.Graphs,
		"vertices", stats.Vertices,
		"duration", stats.Duration)
	return stats, nil
}

// errStop ends an each loop early without failing the stream.
var errStop = stderrors.New("stop reading")

// each feeds every graph of rd to fn until the stream ends or fails, or fn
// returns errStop.
func (r *Runner) each(ctx context.Context, op string, rd *graphcode.Reader, stats *Stats, fn func(int, *adjlist.Graph) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		index := rd.Count()
		start := time.Now()

		g, err := rd.Next()
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		if err == nil {
			err = fn(index, g)
		}
		stop := stderrors.Is(err, errStop)
		if stop {
			err = nil
		}

		ev := observability.GraphEvent{
			Op:       op,
			Format:   rd.Format().String(),
			Index:    index,
			Duration: time.Since(start),
			Err:      err,
		}
		if g != nil {
			ev.Order = g.Order()
			ev.Edges = g.Size()
		}
		r.graphDone(ctx, ev)

		if err != nil {
			if errors.Is(err, errors.ErrCodeBadHeader) {
				return err
			}
			return graphError(err, index)
		}
		stats.Graphs++
		stats.Vertices += ev.Order
		stats.Edges += ev.Edges
		if stop {
			return nil
		}
	}
}

func (r *Runner) graphDone(ctx context.Context, ev observability.GraphEvent) {
	observability.Pipeline().OnGraph(ctx, ev)
	if ev.Err != nil {
		return
	}
	r.Logger.Debug("graph done",
		"op", ev.Op,
		"graph", ev.Index+1,
		"vertices", ev.Order,
		"edges", ev.Edges,
		"width", ev.Width)
}

func newReader(in io.Reader, f graphcode.Format, classic bool) (*graphcode.Reader, error) {
	var rd *graphcode.Reader
	if f == 0 {
		var err error
		if rd, err = graphcode.NewDetectingReader(in); err != nil {
			return nil, err
		}
	} else {
		if err := validateFormat(f); err != nil {
			return nil, err
		}
		rd = graphcode.NewReader(in, f)
	}
	rd.SetClassic(classic)
	return rd, nil
}
