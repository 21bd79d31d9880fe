package adjlist

// Sign is the sign carried by an edge of a signed graph.
type Sign int8

const (
	// SignNone marks edges of unsigned graphs.
	SignNone Sign = iota
	Positive
	Negative
)

// String returns "+", "-" or "" for unsigned edges.
func (s Sign) String() string {
	switch s {
	case Positive:
		return "+"
	case Negative:
		return "-"
	default:
		return ""
	}
}

// Edge is one endpoint entry in a vertex's neighbour list.
type Edge struct {
	To   int
	Sign Sign
}

// Vertex is one declared vertex. ID is the declared id after base
// normalization; Edges keep the order in which neighbours were written.
type Vertex struct {
	ID    int
	Edges []Edge
}

// Graph is an ordered list of vertices. Vertex i (1-based) is Vertices[i-1].
type Graph struct {
	Vertices []Vertex
	Signed   bool
}

// New returns a graph with n isolated vertices numbered 1..n.
func New(n int, signed bool) *Graph {
	g := &Graph{Vertices: make([]Vertex, n), Signed: signed}
	for i := range g.Vertices {
		g.Vertices[i].ID = i + 1
	}
	return g
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.Vertices) }

// Degree returns the length of the neighbour list of vertex v (1-based).
func (g *Graph) Degree(v int) int { return len(g.Vertices[v-1].Edges) }

// Neighbours returns the neighbour list of vertex v (1-based).
func (g *Graph) Neighbours(v int) []Edge { return g.Vertices[v-1].Edges }

// Size returns the number of undirected edges, assuming every edge is listed
// at both endpoints. Loops are listed twice at their vertex and count once.
func (g *Graph) Size() int {
	total := 0
	for _, v := range g.Vertices {
		total += len(v.Edges)
	}
	return total / 2
}

// AddArc appends w to the neighbour list of v only.
func (g *Graph) AddArc(v, w int, s Sign) {
	g.Vertices[v-1].Edges = append(g.Vertices[v-1].Edges, Edge{To: w, Sign: s})
}

// AddEdge appends the undirected edge v–w to both neighbour lists.
func (g *Graph) AddEdge(v, w int, s Sign) {
	g.AddArc(v, w, s)
	g.AddArc(w, v, s)
}

// Pair is an undirected edge with From < To.
type Pair struct {
	From, To int
	Sign     Sign
}

// Pairs returns the edges each vertex lists towards a later vertex, in list
// order. This is the edge set the deduplicating codes write; loops and
// entries pointing back to earlier vertices are skipped.
func (g *Graph) Pairs() []Pair {
	var out []Pair
	for i, v := range g.Vertices {
		for _, e := range v.Edges {
			if e.To > i+1 {
				out = append(out, Pair{From: i + 1, To: e.To, Sign: e.Sign})
			}
		}
	}
	return out
}
