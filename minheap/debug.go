package minheap

import (
	"fmt"
	"strings"
)

// String dumps every slot and the index map. After New(3), Insert(5, 0)
// and Insert(2, 1) it reads:
//
//	MinHeap size=2 capacity=3
//	slot: priority [id]	id: slot
//	0: -1 [-1]		0: 2
//	1: 2 [1]		1: 1
//	2: 5 [0]		2: -1
//	3: -1 [-1]
func (h *Heap) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MinHeap size=%d capacity=%d\n", h.size, h.capacity)
	b.WriteString("slot: priority [id]\tid: slot\n")
	for i := 0; i < h.capacity; i++ {
		fmt.Fprintf(&b, "%d: %d [%d]\t\t%d: %d\n", i, h.nodes[i].Priority, h.nodes[i].ID, i, h.index[i])
	}
	fmt.Fprintf(&b, "%d: %d [%d]\n", h.capacity, h.nodes[h.capacity].Priority, h.nodes[h.capacity].ID)

	return b.String()
}

// Check verifies heap order over slots 1..Len() and that the index map
// agrees with slot contents in both directions.
//
// Complexity: O(capacity).
func (h *Heap) Check() error {
	for i := root; i <= h.size; i++ {
		n := h.nodes[i]
		if n.ID < 0 || n.ID >= h.capacity {
			return fmt.Errorf("%w: slot %d holds id %d", ErrBrokenInvariant, i, n.ID)
		}
		if h.index[n.ID] != i {
			return fmt.Errorf("%w: index[%d]=%d, want %d", ErrBrokenInvariant, n.ID, h.index[n.ID], i)
		}
		for _, c := range [2]int{2 * i, 2*i + 1} {
			if c <= h.size && h.nodes[c].Priority < n.Priority {
				return fmt.Errorf("%w: slot %d (%d) < parent slot %d (%d)",
					ErrBrokenInvariant, c, h.nodes[c].Priority, i, n.Priority)
			}
		}
	}
	for id, slot := range h.index {
		if slot == Absent {
			continue
		}
		if slot < root || slot > h.size || h.nodes[slot].ID != id {
			return fmt.Errorf("%w: id %d mapped to dead slot %d", ErrBrokenInvariant, id, slot)
		}
	}

	return nil
}
