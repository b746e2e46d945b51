// Package traversal holds the per-run state shared by Prim's and
// Dijkstra's algorithms and the greedy extract-and-relax loop they both run.
//
// A Records value is created for one run, owns its heap and scratch arrays,
// and is dropped when the run returns.
package traversal

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/heaptree/core"
	"github.com/katalvlaran/heaptree/minheap"
)

// None marks a missing predecessor and the endpoints of an unused tree slot.
const None = -1

// Records is the scratch state of one Prim or Dijkstra run.
type Records struct {
	NumVertices  int           // vertex IDs are 0..NumVertices-1
	Heap         *minheap.Heap // priority queue over all vertices
	Finished     []bool        // Finished[id] once id left the heap
	Predecessors []int         // Predecessors[id] or None
	Tree         []core.Edge   // tree edges stored predecessor→vertex
	NumTreeEdges int           // live prefix of Tree
}

// Validate checks that g is a usable graph and start one of its vertices,
// returning the vertex count. It allocates nothing.
//
// Errors: core.ErrNilGraph (nil interface or nil *core.Graph),
// core.ErrVertexNotFound (start outside the graph).
func Validate(g core.Reader, start int) (int, error) {
	if core.IsNil(g) {
		return 0, core.ErrNilGraph
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return 0, fmt.Errorf("%w: start %d not in [0,%d)", core.ErrVertexNotFound, start, n)
	}

	return n, nil
}

// New builds the records for a run over g from start: a heap holding every
// vertex at minheap.Infinity, with start lowered to 0 so that it is
// extracted first, no vertex finished, no predecessors, and a tree buffer
// of VertexCount() None edges.
//
// Errors: as Validate.
func New(g core.Reader, start int) (*Records, error) {
	n, err := Validate(g, start)
	if err != nil {
		return nil, err
	}

	h, err := minheap.New(n)
	if err != nil {
		return nil, fmt.Errorf("traversal: %w", err)
	}
	for id := 0; id < n; id++ {
		h.Insert(minheap.Infinity, id)
	}

	r := &Records{
		NumVertices:  n,
		Heap:         h,
		Finished:     make([]bool, n),
		Predecessors: make([]int, n),
		Tree:         make([]core.Edge, n),
	}
	for i := 0; i < n; i++ {
		r.Predecessors[i] = None
		r.Tree[i] = core.Edge{From: None, To: None, Weight: None}
	}
	r.Heap.DecreasePriority(start, 0)

	return r, nil
}

// AddTreeEdge stores from→to at Tree[ind] and counts it.
func (r *Records) AddTreeEdge(ind, from, to int, weight int64) {
	r.NumTreeEdges++
	r.Tree[ind] = core.Edge{From: from, To: to, Weight: weight}
}

// PlaceEdge stores the edge reversed, to→from, at dst[ind]. Algorithm
// outputs use this orientation so that each entry reads vertex→predecessor.
func PlaceEdge(dst []core.Edge, ind, from, to int, weight int64) {
	dst[ind] = core.Edge{From: to, To: from, Weight: weight}
}

// Fields snapshots the records for a debug log line.
func (r *Records) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("vertices", r.NumVertices),
		zap.Int("heap_size", r.Heap.Len()),
		zap.Bools("finished", r.Finished),
		zap.Ints("predecessors", r.Predecessors),
		zap.Array("tree", edgeArray(r.Tree[:r.NumTreeEdges])),
	}
}

type edgeArray []core.Edge

func (a edgeArray) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range a {
		enc.AppendString(e.String())
	}

	return nil
}
