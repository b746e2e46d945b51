// Package prim_kruskal computes Minimum Spanning Trees (MST) of connected,
// undirected graphs read through core.Reader.
//
// What is an MST?
//
//	Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E
//	that connects all vertices in V with the minimum possible total weight.
//
// Algorithms Provided
//
//   - Prim(g core.Reader, start int, opts ...Option) ([]core.Edge, error)
//
//   - Strategy: every vertex is queued once in an indexed min-heap at Infinity, the start
//     at 0. Each extraction finishes a vertex and lowers the keys of its unfinished
//     neighbours to the connecting edge weight with DecreasePriority; a successful
//     decrease records the predecessor.
//
//   - Output: V-1 edges in finish order, each read as vertex→predecessor with the
//     weight of the connecting edge.
//
//   - Complexity: O((V + E) log V) time, O(V) extra memory.
//
//   - Precondition: the graph is connected. Disconnection is not detected.
//
//   - Kruskal(g core.Reader) ([]core.Edge, error)
//
//   - Strategy: stable sort of all edges by weight, then union-find.
//
//   - Complexity: O(E log E + α(V)·E).
//
//   - Detects disconnection (ErrDisconnected). Used as an independent check of Prim.
//
// Error Conditions
//
//   - core.ErrNilGraph       – nil graph.
//   - core.ErrVertexNotFound – Prim start outside [0, V).
//   - ErrDisconnected        – Kruskal only: empty graph or no spanning tree.
//   - ErrUnknownMethod       – Compute with an unknown method name.
//
// Options (Prim):
//
//	– WithLogger(*zap.Logger)             debug events of the run.
//	– WithOnFinish(func(id, priority))    hook per finished vertex.
package prim_kruskal
