package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/adjcode/pkg/adjlist"
	"github.com/matzehuels/adjcode/pkg/errors"
)

// Layout engines accepted by [RenderSVG].
const (
	EngineDot   = "dot"
	EngineNeato = "neato"
	EngineCirco = "circo"
	EngineFdp   = "fdp"
)

var engines = map[string]graphviz.Layout{
	EngineDot:   graphviz.DOT,
	EngineNeato: graphviz.NEATO,
	EngineCirco: graphviz.CIRCO,
	EngineFdp:   graphviz.FDP,
}

// ValidateEngine checks that engine names a supported layout engine.
func ValidateEngine(engine string) error {
	if _, ok := engines[engine]; !ok {
		return errors.New(errors.ErrCodeInvalidInput, "invalid layout engine: %q (must be one of: dot, neato, circo, fdp)", engine)
	}
	return nil
}

// Options configures diagram generation.
type Options struct {
	// Label is drawn under the diagram when set.
	Label string

	// ZeroBased numbers the nodes from 0 instead of 1.
	ZeroBased bool
}

// ToDOT converts g to Graphviz DOT source.
func ToDOT(g *adjlist.Graph, opts Options) string {
	offset := 0
	if opts.ZeroBased {
		offset = 1
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Label != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Label)
	}
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, width=0.4, fixedsize=true];\n")
	buf.WriteString("\n")

	for v := 1; v <= g.Order(); v++ {
		fmt.Fprintf(&buf, "  \"%d\";\n", v-offset)
	}

	buf.WriteString("\n")
	for _, p := range g.Pairs() {
		fmt.Fprintf(&buf, "  \"%d\" -- \"%d\"%s;\n", p.From-offset, p.To-offset, edgeAttrs(p, g.Signed))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeAttrs(p adjlist.Pair, signed bool) string {
	if !signed {
		return ""
	}
	if p.Sign == adjlist.Negative {
		return ` [style=dashed, color=red, label="-"]`
	}
	return ` [label="+"]`
}

// RenderSVG lays out a DOT graph with engine and renders it to SVG.
func RenderSVG(ctx context.Context, dot, engine string) ([]byte, error) {
	layout, ok := engines[engine]
	if !ok {
		return nil, ValidateEngine(engine)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(layout)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox swaps the Graphviz svg tag, sized in points, for one
// sized from the viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
