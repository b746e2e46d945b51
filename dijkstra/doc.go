// Package dijkstra computes single-source shortest-path trees and the
// explicit per-vertex paths they encode.
//
// Dijkstra computes the minimum-cost path from a source vertex to every
// other vertex of a graph with non-negative edge weights. All vertices are
// queued once in an indexed min-heap (package minheap) at Infinity, the
// source at 0; relaxing an edge u→v lowers v's key to dist(u)+w(u,v) with
// DecreasePriority.
//
// Complexity:
//
//	– DistanceTree:  O((V + E) log V) time, O(V) extra space.
//	– ShortestPaths: O(V²) worst case, every path is an independent copy.
//
// API:
//
//	tree, err := dijkstra.DistanceTree(g, src)        // V entries, extraction order
//	paths, err := dijkstra.ShortestPaths(tree, V, src) // paths[v] ends at src
//	dist := dijkstra.Distances(tree, V)
//
// Options:
//
//	– WithLogger(*zap.Logger)               debug events of the run.
//	– WithOnFinish(func(id, distance))      hook per finalised vertex.
//
// Errors:
//
//	– core.ErrNilGraph        if the graph is nil.
//	– core.ErrVertexNotFound  if the source is outside [0, V).
//	– ErrNegativeWeight       if any edge weight is negative.
//	– ErrInfiniteWeight       if any edge weighs minheap.Infinity.
//	– ErrBadTree              if ShortestPaths gets a short or broken tree.
package dijkstra
