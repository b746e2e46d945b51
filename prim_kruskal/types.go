// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Prim and Kruskal via Compute.
package prim_kruskal

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/heaptree/core"
)

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Only Kruskal detects this; Prim
// assumes a connected graph.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates that Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using the indexed min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Options configures a Prim run.
//
//	Logger   – receives debug events of the run; zap.NewNop() by default.
//	OnFinish – called once per vertex as it leaves the heap, with the
//	           weight of the edge that attached it (0 for the root).
type Options struct {
	Logger   *zap.Logger
	OnFinish func(id int, priority int64)
}

// Option configures Options.
type Option func(*Options)

// WithLogger routes debug events of the run to l. A nil l is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnFinish registers a callback run whenever a vertex is finished.
func WithOnFinish(fn func(id int, priority int64)) Option {
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

// Compute selects and runs the MST algorithm named by method.
//
//	– MethodPrim:    Prim(graph, root, opts...).
//	– MethodKruskal: Kruskal(graph); root and opts are ignored.
//	– otherwise:     ErrUnknownMethod.
//
// Note: this is optional scaffolding; Prim and Kruskal can be called directly.
func Compute(graph core.Reader, method string, root int, opts ...Option) ([]core.Edge, error) {
	switch method {
	case MethodPrim:
		return Prim(graph, root, opts...)
	case MethodKruskal:
		return Kruskal(graph)
	default:
		return nil, ErrUnknownMethod
	}
}
