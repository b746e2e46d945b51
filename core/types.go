// Package core defines the Graph and Edge types consumed by the tree
// algorithms, together with the sentinel errors and the NewGraph constructor.
//
// Vertices are dense integers in [0, VertexCount()). Each vertex owns an
// ordered adjacency list of outgoing Edge records; an undirected edge is
// stored as two mirrored records.
//
// Errors:
//
//	ErrNilGraph          - graph pointer is nil.
//	ErrBadVertexCount    - negative vertex count passed to NewGraph.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrLoopNotAllowed    - self-loop when loops are disabled.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil graph was supplied where one is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is a directed record From→To carrying an integer Weight.
//
// The same type is used for adjacency entries, for tree edges produced by
// Prim and Dijkstra, and for the edges of reconstructed paths.
type Edge struct {
	// From is the source vertex ID.
	From int

	// To is the destination vertex ID.
	To int

	// Weight is the cost of the edge (or a cumulative distance in a
	// distance tree).
	Weight int64
}

// String renders the edge the way tree dumps print it: "(from -- to, weight)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d -- %d, %d)", e.From, e.To, e.Weight)
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes AddEdge store a single From→To record instead of a
// mirrored pair.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a fixed-size, adjacency-list graph over dense integer vertex IDs.
//
// mu guards adjacency and numEdges. The vertex set is fixed at creation.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // store one record per AddEdge
	allowLoops bool // allow self-loops

	// Storage
	adjacency [][]Edge // adjacency[v] = outgoing records of v, in insertion order
	numEdges  int      // number of stored Edge records
}

// NewGraph creates a Graph with numVertices vertices (IDs 0..numVertices-1)
// and no edges. By default the graph is undirected and rejects self-loops.
//
// Complexity: O(V)
func NewGraph(numVertices int, opts ...GraphOption) (*Graph, error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, numVertices)
	}
	g := &Graph{
		adjacency: make([][]Edge, numVertices),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
