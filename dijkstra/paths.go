package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/heaptree/core"
	"github.com/katalvlaran/heaptree/minheap"
)

// ShortestPaths turns a distance tree produced by DistanceTree into one
// explicit path per vertex. paths[id] is
//
//	[(id -- id1, w0), (id1 -- id2, w1), ..., (idk -- start, wk)]
//
// with per-edge weights summing to the distance of id. paths[start] is nil.
//
// The tree is scanned in order. For an entry (vertex, pred, d) the
// predecessor's path is already complete, so the new edge weighs d minus
// the weights on paths[pred], and paths[vertex] is that edge followed by an
// independent copy of paths[pred]. The order of tree is therefore
// significant: it must be the extraction order DistanceTree produces.
//
// Every path is copied in full, making this O(V²) in the worst case.
//
// Errors: core.ErrVertexNotFound when start is outside [0, numVertices);
// ErrBadTree when tree has fewer than numVertices entries or an entry
// points outside the graph.
func ShortestPaths(tree []core.Edge, numVertices, start int) ([][]core.Edge, error) {
	if start < 0 || start >= numVertices {
		return nil, fmt.Errorf("%w: start %d not in [0,%d)", core.ErrVertexNotFound, start, numVertices)
	}
	if len(tree) < numVertices {
		return nil, fmt.Errorf("%w: %d entries for %d vertices", ErrBadTree, len(tree), numVertices)
	}

	paths := make([][]core.Edge, numVertices)
	for i := 0; i < numVertices; i++ {
		end, begin := tree[i].From, tree[i].To
		if end == start {
			continue
		}
		if end < 0 || end >= numVertices || begin < 0 || begin >= numVertices {
			return nil, fmt.Errorf("%w: entry %d is %s", ErrBadTree, i, tree[i])
		}

		weight := tree[i].Weight
		for _, e := range paths[begin] {
			weight -= e.Weight
		}

		path := make([]core.Edge, 0, len(paths[begin])+1)
		path = append(path, core.Edge{From: end, To: begin, Weight: weight})
		paths[end] = append(path, paths[begin]...)
	}

	return paths, nil
}

// Distances reads the per-vertex distances out of a distance tree.
// Vertices without an entry keep minheap.Infinity.
func Distances(tree []core.Edge, numVertices int) []int64 {
	dist := make([]int64, numVertices)
	for i := range dist {
		dist[i] = minheap.Infinity
	}
	for _, e := range tree {
		if e.From >= 0 && e.From < numVertices {
			dist[e.From] = e.Weight
		}
	}

	return dist
}
