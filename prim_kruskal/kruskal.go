// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/heaptree/core"
)

// Kruskal computes the Minimum Spanning Tree of an undirected graph with a
// disjoint-set (union-find) structure using path compression and union by rank.
// It serves as an independent reference for Prim.
//
// Error Conditions:
//   - core.ErrNilGraph : if graph is nil (including a nil *core.Graph).
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Collect each undirected edge once (the record with From < To), skipping self-loops.
//  2. Sort edges by ascending Weight (stable, so ties keep adjacency order).
//  3. Initialize parent[] and rank[] for each vertex.
//  4. For each edge (u,v), if find(u) != find(v), union them and include the edge.
//  5. Stop at |V|-1 edges; fewer after the loop means ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph core.Reader) ([]core.Edge, error) {
	if core.IsNil(graph) {
		return nil, core.ErrNilGraph
	}

	n := graph.VertexCount()
	// By convention an empty graph has no spanning tree.
	if n == 0 {
		return nil, ErrDisconnected
	}
	if n == 1 {
		return []core.Edge{}, nil
	}

	// 1. Collect undirected edges once.
	var edges []core.Edge
	for u := 0; u < n; u++ {
		nbrs, err := graph.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range nbrs {
			if e.From < e.To {
				edges = append(edges, e)
			}
		}
	}

	// 2. Stable sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. Disjoint-set forest over dense ids.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path halving to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank; reports whether two components merged.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	// 4. Build the MST.
	mst := make([]core.Edge, 0, n-1)
	for _, e := range edges {
		if union(e.From, e.To) {
			mst = append(mst, e)
			if len(mst) == n-1 {
				break
			}
		}
	}

	// 5. Fewer than |V|-1 edges means some vertex was never reached.
	if len(mst) < n-1 {
		return nil, ErrDisconnected
	}

	return mst, nil
}
