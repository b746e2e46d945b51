// Package core provides the in-memory graph consumed by the heaptree
// algorithms: a fixed set of dense integer vertices, each with an ordered
// adjacency list of weighted Edge records.
//
// The algorithms only need read access, expressed by the Reader interface:
//
//	VertexCount() int                   // O(1)
//	Neighbors(id int) ([]Edge, error)   // O(d), copy in insertion order
//
// Construction:
//
//	g, err := core.NewGraph(4)           // undirected, no loops
//	_ = g.AddEdge(0, 1, 10)              // stores 0→1 and 1→0
//
// Configuration Options (GraphOption):
//
//	– WithDirected()  store only the From→To record per AddEdge.
//	– WithLoops()     permit AddEdge(v, v, w).
//
// Concurrency: all methods are safe for concurrent use; mutations take a
// write lock, queries a read lock.
//
// Errors:
//
//	ErrNilGraph        – nil graph handed to an algorithm
//	ErrBadVertexCount  – NewGraph with a negative count
//	ErrVertexNotFound  – id outside [0, VertexCount())
//	ErrLoopNotAllowed  – self-loop when loops disabled
package core
