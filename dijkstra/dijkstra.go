// Package dijkstra implements Dijkstra's shortest-path tree on graphs with
// non-negative integer weights.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - Every vertex sits in the indexed min-heap exactly once; improvements use
//     DecreasePriority instead of pushing duplicates.
//   - A vertex finished at Infinity (unreachable) relaxes nothing.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/heaptree/core"
	"github.com/katalvlaran/heaptree/internal/traversal"
	"github.com/katalvlaran/heaptree/minheap"
)

// DistanceTree runs Dijkstra's algorithm on g from start and returns the
// distance tree: VertexCount() edges in the order their vertices were
// finished.
//
//   - tree[0] is the self-edge start→start with weight 0.
//   - every other entry reads From=vertex, To=predecessor, Weight=the
//     vertex's shortest distance from start.
//
// Since entries appear in extraction order, distances are non-decreasing
// along the slice and every predecessor appears before its vertex.
// ShortestPaths relies on exactly that.
//
// Preconditions and validation (in order):
//  1. g must be non-nil, nor a nil *core.Graph (core.ErrNilGraph).
//  2. start must be in [0, VertexCount()) (core.ErrVertexNotFound).
//  3. No edge may have negative weight (ErrNegativeWeight).
//  4. No edge may weigh minheap.Infinity (ErrInfiniteWeight).
//
// A disconnected graph is not reported: unreachable vertices are listed
// with To=-1 and Weight=minheap.Infinity. A distance that would reach
// minheap.Infinity saturates and is treated the same way.
//
// Complexity: O((V + E) log V) time, O(V) extra memory.
func DistanceTree(g core.Reader, start int, opts ...Option) ([]core.Edge, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph and start vertex.
	if _, err := traversal.Validate(g, start); err != nil {
		return nil, err
	}

	// 3) Pre-scan all edges before any run state is allocated.
	if err := checkWeights(g); err != nil {
		return nil, err
	}

	r, err := traversal.New(g, start)
	if err != nil {
		return nil, err
	}

	// 4) Entry 0 is the source itself; extracted vertices follow from slot 1.
	tree := make([]core.Edge, r.NumVertices)
	traversal.PlaceEdge(tree, 0, start, start, 0)
	emit := func(ind, pred, u int, distance int64) {
		traversal.PlaceEdge(tree, ind+1, pred, u, distance)
	}

	obs := traversal.Observer{Logger: cfg.Logger.Named("dijkstra"), OnFinish: cfg.OnFinish}
	if err = r.Run(g, start, cumulative, emit, obs); err != nil {
		return nil, err
	}

	return tree, nil
}

// cumulative is Dijkstra's relaxation: the neighbour's candidate distance
// is the finished vertex's distance plus the edge weight, saturating at
// Infinity.
func cumulative(weight, distance int64) int64 {
	if distance == minheap.Infinity || weight > minheap.Infinity-distance {
		return minheap.Infinity
	}

	return distance + weight
}

// checkWeights fails on the first negative edge weight or the first edge
// weighing minheap.Infinity, which relaxation could never improve on.
func checkWeights(g core.Reader) error {
	for u := 0; u < g.VertexCount(); u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
		}
		for _, e := range nbrs {
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
			if e.Weight == minheap.Infinity {
				return fmt.Errorf("%w: edge %d→%d", ErrInfiniteWeight, e.From, e.To)
			}
		}
	}

	return nil
}
