package core

// AddEdge appends an edge from fromID to toID with the given weight.
// For undirected graphs the mirror record toID→fromID is appended as well,
// so one call stores two records.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(fromID, toID int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.valid(fromID) || !g.valid(toID) {
		return ErrVertexNotFound
	}
	if fromID == toID && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.adjacency[fromID] = append(g.adjacency[fromID], Edge{From: fromID, To: toID, Weight: weight})
	g.numEdges++

	// Mirror for undirected graphs; a loop is stored once.
	if !g.directed && fromID != toID {
		g.adjacency[toID] = append(g.adjacency[toID], Edge{From: toID, To: fromID, Weight: weight})
		g.numEdges++
	}

	return nil
}

// HasVertex reports whether id is a vertex of the graph.
//
// Complexity: O(1)
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.valid(id)
}

// Neighbors returns a copy of the adjacency list of id, in insertion order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(d) where d is the out-degree of id.
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(id) {
		return nil, ErrVertexNotFound
	}
	out := make([]Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of stored Edge records. In undirected graphs
// every non-loop AddEdge contributes two.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}

// Directed reports whether the graph stores single-direction records.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Edges returns a flat slice of all stored records, ordered by source
// vertex and then by insertion.
// In undirected graphs, each edge appears twice (once per direction).
//
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.numEdges)
	for _, list := range g.adjacency {
		out = append(out, list...)
	}

	return out
}

// valid must be called with mu held.
func (g *Graph) valid(id int) bool {
	return id >= 0 && id < len(g.adjacency)
}
