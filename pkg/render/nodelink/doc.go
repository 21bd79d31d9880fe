// Package nodelink draws decoded graphs as node-link diagrams using Graphviz.
//
// # Usage
//
// Convert a graph to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Label: "graph 1"})
//	svg, err := nodelink.RenderSVG(ctx, dot, nodelink.EngineNeato)
//
// For PDF or PNG output, pass the SVG to [render.ToPDF] or [render.ToPNG].
//
// # DOT Format
//
// [ToDOT] produces an undirected `graph G { ... }`. Every vertex becomes a
// circle node, even when isolated. Edges come from [adjlist.Graph.Pairs], so
// each edge is drawn once however many endpoints list it, while parallel
// edges stay parallel. Negative edges of signed graphs are dashed and red.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [render.ToPDF]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/render#ToPDF
// [render.ToPNG]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/render#ToPNG
package nodelink
