package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/adjcode/pkg/adjlist"
	"github.com/matzehuels/adjcode/pkg/errors"
)

func triangle() *adjlist.Graph {
	g := adjlist.New(3, false)
	g.AddEdge(1, 2, adjlist.SignNone)
	g.AddEdge(1, 3, adjlist.SignNone)
	g.AddEdge(2, 3, adjlist.SignNone)
	return g
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(triangle(), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() output missing graph declaration")
	}
	for _, want := range []string{`"1";`, `"2";`, `"3";`, `"1" -- "2";`, `"1" -- "3";`, `"2" -- "3";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s", want)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() should draw undirected edges")
	}
	if n := strings.Count(dot, " -- "); n != 3 {
		t.Errorf("ToDOT() drew %d edges, want 3", n)
	}
}

func TestToDOT_IsolatedVertex(t *testing.T) {
	g := adjlist.New(2, false)
	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, `"2";`) {
		t.Error("ToDOT() output missing isolated vertex")
	}
	if strings.Contains(dot, " -- ") {
		t.Error("ToDOT() drew an edge for an edgeless graph")
	}
}

func TestToDOT_ZeroBased(t *testing.T) {
	dot := ToDOT(triangle(), Options{ZeroBased: true})

	if !strings.Contains(dot, `"0" -- "1";`) {
		t.Errorf("ToDOT() zero-based output missing edge 0-1:\n%s", dot)
	}
	if strings.Contains(dot, `"3"`) {
		t.Error("ToDOT() zero-based output still contains vertex 3")
	}
}

func TestToDOT_Label(t *testing.T) {
	dot := ToDOT(triangle(), Options{Label: "graph 2"})
	if !strings.Contains(dot, `label="graph 2";`) {
		t.Error("ToDOT() output missing graph label")
	}
}

func TestToDOT_Signed(t *testing.T) {
	g := adjlist.New(3, true)
	g.AddEdge(1, 2, adjlist.Positive)
	g.AddEdge(2, 3, adjlist.Negative)

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, `"1" -- "2" [label="+"];`) {
		t.Errorf("ToDOT() positive edge not labelled:\n%s", dot)
	}
	if !strings.Contains(dot, `"2" -- "3" [style=dashed, color=red, label="-"];`) {
		t.Errorf("ToDOT() negative edge not dashed:\n%s", dot)
	}
}

func TestToDOT_ParallelEdges(t *testing.T) {
	g := adjlist.New(2, false)
	g.AddEdge(1, 2, adjlist.SignNone)
	g.AddEdge(1, 2, adjlist.SignNone)

	dot := ToDOT(g, Options{})
	if n := strings.Count(dot, `"1" -- "2";`); n != 2 {
		t.Errorf("ToDOT() drew %d parallel edges, want 2", n)
	}
}

func TestValidateEngine(t *testing.T) {
	tests := []struct {
		engine  string
		wantErr bool
	}{
		{"dot", false},
		{"neato", false},
		{"circo", false},
		{"fdp", false},
		{"sfdp", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateEngine(tt.engine)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEngine(%q) error = %v, wantErr %v", tt.engine, err, tt.wantErr)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(triangle(), Options{}), EngineNeato)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	_, err := RenderSVG(context.Background(), `not valid DOT {{{`, EngineDot)
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}

func TestRenderSVG_UnknownEngine(t *testing.T) {
	_, err := RenderSVG(context.Background(), ToDOT(triangle(), Options{}), "osage")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("RenderSVG() error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}
