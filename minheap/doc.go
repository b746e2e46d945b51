// Package minheap implements an indexed binary min-heap over (id, priority)
// pairs, the priority queue behind Prim's and Dijkstra's algorithms.
//
// Ids are dense integers in [0, Cap()). Besides the usual array of nodes the
// heap keeps an id→slot table, which gives
//
//	Insert            O(log n)
//	ExtractMin        O(log n)
//	DecreasePriority  O(log n)   (no linear search for the id)
//	Priority, Min     O(1)
//
// Slot 0 of the node array is a sentinel; the root lives in slot 1 and the
// children of slot i are 2i and 2i+1.
//
// Invalid inserts (id out of range, heap full, id already present) are
// silently ignored. DecreasePriority reports through its boolean result
// whether the priority actually went down; callers use that to decide
// whether to update a predecessor link.
//
// A Heap is meant to be owned by a single goroutine.
package minheap
