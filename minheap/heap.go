package minheap

import "fmt"

// New returns an empty heap able to hold ids 0..capacity-1.
// Every id starts out Absent.
//
// Complexity: O(capacity).
func New(capacity int) (*Heap, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}

	h := &Heap{
		nodes:    make([]Node, capacity+1),
		index:    make([]int, capacity),
		capacity: capacity,
	}
	for i := range h.nodes {
		h.nodes[i] = Node{ID: Absent, Priority: Absent}
	}
	for i := range h.index {
		h.index[i] = Absent
	}

	return h, nil
}

// Insert adds id with the given priority.
//
// It is a silent no-op when id is outside [0, Cap()), when the heap is
// full, or when id is already present.
//
// Complexity: O(log n).
func (h *Heap) Insert(priority int64, id int) {
	if h.size >= h.capacity || id < 0 || id >= h.capacity || h.index[id] != Absent {
		return
	}

	h.size++
	h.nodes[h.size] = Node{ID: id, Priority: priority}
	h.index[id] = h.size
	h.up(h.size)
}

// Min returns the root without removing it. ok is false on an empty heap.
//
// Complexity: O(1).
func (h *Heap) Min() (n Node, ok bool) {
	if h.size == 0 {
		return Node{ID: Absent, Priority: Absent}, false
	}

	return h.nodes[root], true
}

// ExtractMin removes and returns the root. ok is false on an empty heap.
// The extracted id becomes Absent.
//
// Complexity: O(log n).
func (h *Heap) ExtractMin() (n Node, ok bool) {
	if h.size == 0 {
		return Node{ID: Absent, Priority: Absent}, false
	}

	n = h.nodes[root]
	last := h.size
	if last != root {
		h.nodes[root] = h.nodes[last]
		h.index[h.nodes[root].ID] = root
	}
	h.nodes[last] = Node{ID: Absent, Priority: Absent}
	h.size--
	h.index[n.ID] = Absent
	h.down(root)

	return n, true
}

// Priority returns the current priority of id. ok is false when id is not
// in the heap.
//
// Complexity: O(1).
func (h *Heap) Priority(id int) (p int64, ok bool) {
	if !h.Contains(id) {
		return Absent, false
	}

	return h.nodes[h.index[id]].Priority, true
}

// DecreasePriority lowers the priority of id to p and restores heap order,
// but only when p is strictly less than the current priority. It reports
// whether the heap changed. Absent ids are left alone and report false.
//
// Complexity: O(log n).
func (h *Heap) DecreasePriority(id int, p int64) bool {
	if !h.Contains(id) {
		return false
	}

	slot := h.index[id]
	if p >= h.nodes[slot].Priority {
		return false
	}
	h.nodes[slot].Priority = p
	h.up(slot)

	return true
}

// Contains reports whether id currently occupies a live slot.
func (h *Heap) Contains(id int) bool {
	return id >= 0 && id < h.capacity && h.index[id] != Absent
}

// IsEmpty reports whether the heap holds no nodes.
func (h *Heap) IsEmpty() bool { return h.size == 0 }

// Len returns the number of live nodes.
func (h *Heap) Len() int { return h.size }

// Cap returns the capacity fixed at construction.
func (h *Heap) Cap() int { return h.capacity }

// up moves the node at slot i towards the root while it is strictly
// smaller than its parent.
func (h *Heap) up(i int) {
	for i > root {
		parent := i / 2
		if h.nodes[parent].Priority <= h.nodes[i].Priority {
			return
		}
		h.swap(parent, i)
		i = parent
	}
}

// down moves the node at slot i towards the leaves. The right child is
// preferred only when strictly smaller than the left one.
func (h *Heap) down(i int) {
	for {
		left := 2 * i
		if left > h.size {
			return
		}
		child := left
		if right := left + 1; right <= h.size && h.nodes[right].Priority < h.nodes[left].Priority {
			child = right
		}
		if h.nodes[child].Priority >= h.nodes[i].Priority {
			return
		}
		h.swap(i, child)
		i = child
	}
}

// swap exchanges two slots and keeps both index entries in step.
func (h *Heap) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.index[h.nodes[i].ID] = i
	h.index[h.nodes[j].ID] = j
}
