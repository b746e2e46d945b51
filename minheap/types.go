package minheap

import (
	"errors"
	"math"
)

// ErrBadCapacity is returned by New for a negative capacity.
var ErrBadCapacity = errors.New("minheap: capacity must be non-negative")

// ErrBrokenInvariant is wrapped by Check when the heap order or the index
// map is inconsistent.
var ErrBrokenInvariant = errors.New("minheap: invariant violated")

const (
	// Absent marks an id that is not in the heap (never inserted or
	// already extracted) and a cleared slot.
	Absent = -1

	// Infinity is the priority used for "not reached yet".
	Infinity int64 = math.MaxInt64

	// root is the slot of the minimum; slot 0 is an unused sentinel.
	root = 1
)

// Node is one entry of the heap: a vertex id and its current priority.
type Node struct {
	ID       int
	Priority int64
}

// Heap is an array-backed binary min-heap over Nodes with an id→slot table.
//
// nodes has capacity+1 slots; live nodes occupy slots 1..size. index[id] is
// the slot holding id, or Absent. Heap is not safe for concurrent use.
type Heap struct {
	nodes    []Node
	index    []int
	size     int
	capacity int
}
