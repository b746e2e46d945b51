// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a start vertex using the indexed min-heap, so each vertex sits in the
// queue exactly once and improvements are applied with DecreasePriority.
package prim_kruskal

import (
	"github.com/katalvlaran/heaptree/core"
	"github.com/katalvlaran/heaptree/internal/traversal"
)

// Prim computes the Minimum Spanning Tree of a connected, undirected graph
// starting from vertex start.
//
// Steps:
//  1. Build the run records: every vertex queued at Infinity, start at 0.
//  2. While the queue is not empty, extract the minimum (u, w) and mark u
//     finished. For u != start, output the edge u→predecessor(u) with weight w.
//  3. For each unfinished neighbour v of u, if DecreasePriority(v, weight(u,v))
//     succeeds, u becomes the predecessor of v.
//
// The result holds VertexCount()-1 edges in the order their vertices were
// finished (not sorted). Each entry reads From=vertex, To=predecessor.
//
// Preconditions: the graph is connected and undirected. A disconnected graph
// is not reported; the affected entries carry Weight=minheap.Infinity and
// To=-1.
//
// minheap.Infinity is reserved as "not yet reached": an edge of that weight
// never attaches its endpoint, so keep weights strictly below it.
//
// Errors: core.ErrNilGraph (also for a nil *core.Graph), core.ErrVertexNotFound for an invalid start, or
// an error from the graph's Neighbors.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func Prim(graph core.Reader, start int, opts ...Option) ([]core.Edge, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r, err := traversal.New(graph, start)
	if err != nil {
		return nil, err
	}

	mst := make([]core.Edge, r.NumVertices-1)
	emit := func(ind, pred, u int, priority int64) {
		traversal.PlaceEdge(mst, ind, pred, u, priority)
	}
	obs := traversal.Observer{Logger: cfg.Logger.Named("prim"), OnFinish: cfg.OnFinish}
	if err = r.Run(graph, start, edgeWeight, emit, obs); err != nil {
		return nil, err
	}

	return mst, nil
}

// edgeWeight is Prim's relaxation: a neighbour is keyed by the weight of
// the single edge that would attach it.
func edgeWeight(weight, _ int64) int64 { return weight }
