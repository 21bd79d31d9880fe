// Package pkg provides the libraries behind adjcode, a converter between
// adjacency lists and the multi_code, planar_code and signed_code binary
// graph formats.
//
// # Overview
//
// A graph is written as text, one vertex per line:
//
//	1: 2, 3
//	2: 1, 3
//	3: 1, 2
//
// and graphs are separated by blank lines. Each graph becomes one record of
// a binary stream that starts with a header such as ">>multi_code<<".
//
// # Architecture
//
//	adjacency text / 0-1 matrices
//	         ↓
//	    [adjlist] package (scan, parse, validate)
//	         ↓
//	    [graphcode] package (record layout, stream writer and reader)
//	         ↓
//	    binary stream  →  [render/nodelink] (DOT, SVG) → [render] (PNG, PDF)
//
// [pipeline] drives whole streams through these steps for both the CLI and
// the HTTP API in [server].
//
// # Quick Start
//
//	g, err := adjlist.ParseLines([]string{"1: 2", "2: 1"}, adjlist.Options{})
//	if err != nil {
//	    return err
//	}
//	w := graphcode.NewWriter(os.Stdout, graphcode.Multi)
//	if _, err := w.WriteGraph(g); err != nil {
//	    return err
//	}
//	return w.Close()
//
// # Main Packages
//
// [adjlist] - The in-memory graph, the adjacency list scanner and parser,
// the strict validator, the text writer and the adjacency matrix reader.
//
// [graphcode] - The three binary formats. Records use one byte per value
// for small graphs and switch to 16-bit little-endian values behind a 0
// escape once the order needs it.
//
// [pipeline] - Stream conversions (encode, decode, render, matrix) with
// per-graph error reporting, hooks and cached byte-level entry points.
//
// [render/nodelink] - Graphviz drawings of decoded graphs.
//
// ## Infrastructure
//
// [cache] - Response cache with file, Redis and no-op backends.
//
// [config] - TOML configuration for defaults and the server.
//
// [server] - chi based HTTP API.
//
// [observability] - Hook points for metrics and tracing.
//
// [errors] - Coded errors shared by every package.
//
// [buildinfo] - Version information injected at link time.
//
// # Testing
//
//	go test ./...                        # All tests
//	go test ./pkg/graphcode/...          # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [adjlist]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/adjlist
// [graphcode]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/graphcode
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/adjcode/pkg/buildinfo
package pkg
