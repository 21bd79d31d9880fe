package adjlist

import (
	"strconv"
	"strings"

	"github.com/matzehuels/adjcode/pkg/errors"
)

// Options controls how adjacency text is interpreted.
type Options struct {
	// ZeroBased reads ids as 0-based and shifts them to 1-based.
	ZeroBased bool

	// Signed expects a trailing '+' or '-' on every neighbour.
	Signed bool

	// Strict runs [Validate] on every parsed graph.
	Strict bool
}

func (o Options) offset() int {
	if o.ZeroBased {
		return 1
	}
	return 0
}

// Parse converts one block into a graph, keeping line order as vertex order.
// Errors carry the input line of the failing vertex.
func Parse(b Block, opts Options) (*Graph, error) {
	g := &Graph{Vertices: make([]Vertex, 0, len(b.Lines)), Signed: opts.Signed}
	for i, line := range b.Lines {
		v, err := ParseLine(line, opts)
		if err != nil {
			return nil, errors.AtLine(err, b.Line+i, line)
		}
		g.Vertices = append(g.Vertices, v)
	}
	if opts.Strict {
		if err := Validate(g); err != nil {
			return nil, errors.AtLine(err, b.Line, "")
		}
	}
	return g, nil
}

// ParseLines is Parse for a block that starts on line 1.
func ParseLines(lines []string, opts Options) (*Graph, error) {
	return Parse(Block{Line: 1, Lines: lines}, opts)
}

// ParseLine parses a single "id: n1,n2,..." line.
func ParseLine(line string, opts Options) (Vertex, error) {
	head, tail, ok := strings.Cut(line, ":")
	if !ok {
		return Vertex{}, errors.New(errors.ErrCodeParse, "missing ':' after vertex id")
	}
	id, err := parseID(strings.TrimSpace(head))
	if err != nil {
		return Vertex{}, err
	}
	v := Vertex{ID: id + opts.offset()}

	tail = strings.TrimSpace(tail)
	if tail == "" {
		return v, nil
	}

	tokens := strings.Split(tail, ",")
	v.Edges = make([]Edge, 0, len(tokens))
	for _, tok := range tokens {
		e, err := parseEdge(strings.TrimSpace(tok), opts)
		if err != nil {
			return Vertex{}, err
		}
		v.Edges = append(v.Edges, e)
	}
	return v, nil
}

func parseEdge(tok string, opts Options) (Edge, error) {
	e := Edge{}
	if opts.Signed {
		if tok == "" {
			return e, errors.New(errors.ErrCodeParse, "empty neighbour")
		}
		switch tok[len(tok)-1] {
		case '+':
			e.Sign = Positive
		case '-':
			e.Sign = Negative
		default:
			return e, errors.New(errors.ErrCodeParse, "neighbour %q has no sign", tok)
		}
		tok = strings.TrimSpace(tok[:len(tok)-1])
	}
	n, err := parseID(tok)
	if err != nil {
		return e, err
	}
	e.To = n + opts.offset()
	return e, nil
}

// parseID accepts plain decimal digits only; strconv.Atoi alone would let
// "+3" and "-3" through.
func parseID(s string) (int, error) {
	if s == "" {
		return 0, errors.New(errors.ErrCodeParse, "empty vertex id")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errors.New(errors.ErrCodeParse, "%q is not a non-negative integer", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeParse, err, "%q is not a vertex id", s)
	}
	return n, nil
}
