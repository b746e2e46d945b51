// Package heaptree computes spanning and shortest-path trees of weighted
// graphs on top of an indexed binary min-heap.
//
// What is inside?
//
//	• Indexed min-heap: decrease-key in O(log V) via an id→slot map
//	• Minimum spanning trees: Prim (heap driven), Kruskal (reference)
//	• Shortest paths: Dijkstra distance tree + explicit path reconstruction
//
// Prim and Dijkstra share one greedy loop: every vertex is queued once at
// Infinity, the start at 0, and the loop differs only in how a neighbour's
// candidate key is derived (edge weight vs. distance plus edge weight).
//
// Packages:
//
//	core/         — Graph (adjacency lists, integer ids), Edge, Reader
//	minheap/      — indexed min-heap keyed by vertex id
//	prim_kruskal/ — Prim and Kruskal minimum spanning trees
//	dijkstra/     — DistanceTree, ShortestPaths, Distances
//	examples/     — runnable city-route demo
//
// Quick example:
//
//	    0──10──1
//	    │      │
//	    5      6
//	    │      │
//	    3──4───2
//
//	Prim from 0 yields (3 -- 0, 5) (2 -- 3, 4) (1 -- 2, 6), total 15.
//
//	go get github.com/katalvlaran/heaptree
package heaptree
