// Package dijkstra defines sentinel errors and configuration options
// for the distance-tree computation and path reconstruction.
package dijkstra

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by the dijkstra package. Invalid graphs and
// start vertices are reported with core.ErrNilGraph / core.ErrVertexNotFound.
var (
	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrInfiniteWeight indicates an edge weighing minheap.Infinity, the
	// value reserved for unreached vertices.
	ErrInfiniteWeight = errors.New("dijkstra: edge weight equals infinity")

	// ErrBadTree indicates that a distance tree handed to ShortestPaths is
	// shorter than numVertices or references a vertex outside [0, numVertices),
	// as happens for an unreachable vertex.
	ErrBadTree = errors.New("dijkstra: malformed distance tree")
)

// Options configures a DistanceTree run.
//
// Logger   – receives debug events; zap.NewNop() unless WithLogger is given.
// OnFinish – called once per vertex when its distance becomes final.
type Options struct {
	Logger   *zap.Logger
	OnFinish func(id int, distance int64)
}

// Option represents a functional option for configuring DistanceTree.
type Option func(*Options)

// WithLogger routes the run's debug events to l. A nil l is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnFinish registers a callback receiving each vertex with its final distance,
// in non-decreasing distance order.
func WithOnFinish(fn func(id int, distance int64)) Option {
	return func(o *Options) {
		o.OnFinish = fn
	}
}

// DefaultOptions returns Options with a no-op logger and no callback.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
	}
}
