package traversal

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/heaptree/core"
)

// Relaxer returns the candidate priority of a neighbour reached over an
// edge of the given weight from a vertex just finished at priority.
// Prim returns weight; Dijkstra returns priority+weight.
type Relaxer func(weight, priority int64) int64

// Emitter receives every finished vertex other than the start, before the
// records' own tree buffer is updated. ind is NumTreeEdges at that moment.
type Emitter func(ind, pred, u int, priority int64)

// Observer carries the optional instrumentation of a run.
type Observer struct {
	// Logger receives debug events; nil means zap.NewNop().
	Logger *zap.Logger

	// OnFinish, if set, is called once per extracted vertex.
	OnFinish func(id int, priority int64)
}

// Run drives the greedy loop until the heap is empty, so it performs
// exactly NumVertices extractions:
//
//  1. extract the minimum (u, p) and mark u finished;
//  2. if u is not start, emit (Predecessors[u] → u, p) and record it;
//  3. for each neighbour v of u that is not finished, set
//     Predecessors[v] = u when DecreasePriority(v, relax(w, p)) succeeds.
//
// A disconnected graph is not detected: unreachable vertices are extracted
// at minheap.Infinity with predecessor None.
func (r *Records) Run(g core.Reader, start int, relax Relaxer, emit Emitter, obs Observer) error {
	log := obs.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("traversal started", zap.Int("start", start), zap.Int("vertices", r.NumVertices))

	for !r.Heap.IsEmpty() {
		n, _ := r.Heap.ExtractMin()
		u := n.ID
		r.Finished[u] = true
		if u != start {
			pred := r.Predecessors[u]
			emit(r.NumTreeEdges, pred, u, n.Priority)
			r.AddTreeEdge(r.NumTreeEdges, pred, u, n.Priority)
		}
		if obs.OnFinish != nil {
			obs.OnFinish(u, n.Priority)
		}

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("traversal: neighbors of %d: %w", u, err)
		}
		for _, e := range nbrs {
			v := e.To
			if v < 0 || v >= r.NumVertices {
				return fmt.Errorf("%w: edge %d→%d", core.ErrVertexNotFound, u, v)
			}
			if !r.Finished[v] && r.Heap.DecreasePriority(v, relax(e.Weight, n.Priority)) {
				r.Predecessors[v] = u
			}
		}
	}

	if ce := log.Check(zap.DebugLevel, "traversal finished"); ce != nil {
		ce.Write(r.Fields()...)
	}

	return nil
}
