package core

// Reader is the read-only view of a graph that the tree algorithms consume.
// They never mutate the graph; they only ask for the vertex count and for
// the ordered adjacency list of each vertex.
//
// *Graph satisfies Reader.
type Reader interface {
	// VertexCount returns V; valid IDs are 0..V-1.
	VertexCount() int

	// Neighbors returns the outgoing records of id in a stable order, or
	// ErrVertexNotFound when id is outside [0, V).
	Neighbors(id int) ([]Edge, error)
}

// Compile-time check.
var _ Reader = (*Graph)(nil)

// IsNil reports whether g is nil or holds a nil *Graph. Algorithms taking
// a Reader use it so that a typed nil pointer yields ErrNilGraph instead of
// a panic inside the graph's lock.
func IsNil(g Reader) bool {
	if g == nil {
		return true
	}
	if p, ok := g.(*Graph); ok && p == nil {
		return true
	}

	return false
}

// Weights sums the weights of edges.
func Weights(edges []Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
