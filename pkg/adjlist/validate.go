package adjlist

import (
	"github.com/matzehuels/adjcode/pkg/errors"
)

// Validate checks the preconditions the codes otherwise take on trust:
//   - vertex i is declared with id i
//   - every neighbour names a vertex of the graph
//   - every edge is listed at both endpoints, the same number of times and,
//     for signed graphs, with the same sign
//
// Dedup-based codes silently drop the half of an edge that is listed only at
// its larger endpoint, which is what the symmetry check guards against.
func Validate(g *Graph) error {
	n := g.Order()
	for i, v := range g.Vertices {
		if v.ID != i+1 {
			return errors.New(errors.ErrCodeVertexOrder, "vertex %d declared as %d", i+1, v.ID)
		}
		for _, e := range v.Edges {
			if err := errors.ValidateVertex(e.To, n); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidVertex, err, "neighbour of vertex %d", i+1)
			}
		}
	}

	type arc struct {
		from, to int
		sign     Sign
	}
	arcs := make(map[arc]int)
	for i, v := range g.Vertices {
		for _, e := range v.Edges {
			arcs[arc{i + 1, e.To, e.Sign}]++
		}
	}
	for i, v := range g.Vertices {
		for _, e := range v.Edges {
			a := arc{i + 1, e.To, e.Sign}
			if a.from == a.to {
				continue
			}
			count, back := arcs[a], arcs[arc{a.to, a.from, a.sign}]
			if back != count {
				return errors.New(errors.ErrCodeAsymmetric,
					"edge %d-%d%s listed %d time(s) at %d but %d time(s) at %d",
					a.from, a.to, a.sign, count, a.from, back, a.to)
			}
		}
	}
	return nil
}
