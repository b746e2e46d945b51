// Package builder assembles deterministic core.Graph fixtures from small
// constructors: explicit edge lists, chains and random extra edges.
//
// Contract:
//   - One orchestrator: BuildGraph(n, gopts, bopts, cons...). Creates the
//     graph, resolves the config, runs cons in order.
//   - Constructors share one seeded RNG, so the same seed and call order
//     always yield the same graph.
//   - Constructors return sentinel errors wrapped with %w and never panic.
package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/heaptree/core"
)

var (
	// ErrTooFewVertices indicates a constructor needs more vertices than the graph has.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrBadWeightRange indicates minW > maxW.
	ErrBadWeightRange = errors.New("builder: empty weight range")

	// ErrConstructFailed indicates a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)

// config is resolved once per BuildGraph and passed by value.
type config struct {
	rng *rand.Rand
}

// Option configures BuildGraph.
type Option func(*config)

// WithSeed seeds the RNG shared by all constructors of one build.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// Constructor adds edges to g using the resolved config.
type Constructor func(g *core.Graph, cfg config) error

// BuildGraph creates an n-vertex graph with gopts and applies cons in order.
// Without WithSeed the RNG is seeded with 1.
//
// Errors: core.NewGraph errors, or the first constructor error wrapped as
// "BuildGraph: %w".
func BuildGraph(n int, gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := config{rng: rand.New(rand.NewSource(1))}
	for _, opt := range bopts {
		opt(&cfg)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Edges adds the given edges verbatim.
func Edges(edges ...core.Edge) Constructor {
	return func(g *core.Graph, _ config) error {
		for _, e := range edges {
			if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("Edges: AddEdge(%d,%d): %w", e.From, e.To, err)
			}
		}

		return nil
	}
}

// Path chains 0-1-...-(n-1) with weights drawn from [minW, maxW].
func Path(minW, maxW int64) Constructor {
	return func(g *core.Graph, cfg config) error {
		return chain(g, cfg, "Path", identity(g.VertexCount()), minW, maxW)
	}
}

// ShuffledPath chains the vertices in a random order with weights drawn
// from [minW, maxW]. Like Path it makes the graph connected.
func ShuffledPath(minW, maxW int64) Constructor {
	return func(g *core.Graph, cfg config) error {
		return chain(g, cfg, "ShuffledPath", cfg.rng.Perm(g.VertexCount()), minW, maxW)
	}
}

// RandomEdges adds k edges between random distinct endpoints with weights
// drawn from [minW, maxW]. Parallel edges may appear.
func RandomEdges(k int, minW, maxW int64) Constructor {
	return func(g *core.Graph, cfg config) error {
		n := g.VertexCount()
		if k > 0 && n < 2 {
			return fmt.Errorf("RandomEdges: n=%d: %w", n, ErrTooFewVertices)
		}
		if minW > maxW {
			return fmt.Errorf("RandomEdges: [%d,%d]: %w", minW, maxW, ErrBadWeightRange)
		}
		for k > 0 {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			if err := g.AddEdge(u, v, draw(cfg.rng, minW, maxW)); err != nil {
				return fmt.Errorf("RandomEdges: AddEdge(%d,%d): %w", u, v, err)
			}
			k--
		}

		return nil
	}
}

func chain(g *core.Graph, cfg config, method string, order []int, minW, maxW int64) error {
	if minW > maxW {
		return fmt.Errorf("%s: [%d,%d]: %w", method, minW, maxW, ErrBadWeightRange)
	}
	for i := 1; i < len(order); i++ {
		if err := g.AddEdge(order[i-1], order[i], draw(cfg.rng, minW, maxW)); err != nil {
			return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, order[i-1], order[i], err)
		}
	}

	return nil
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// draw returns a weight in [minW, maxW]; the range must fit in an int.
func draw(r *rand.Rand, minW, maxW int64) int64 {
	return minW + int64(r.Intn(int(maxW-minW+1)))
}
