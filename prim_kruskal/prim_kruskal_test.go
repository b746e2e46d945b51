package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/heaptree/core"             // core.Graph, core.Edge and core error types
	"github.com/katalvlaran/heaptree/internal/builder" // deterministic graph fixtures
	"github.com/katalvlaran/heaptree/minheap"          // Infinity sentinel
	"github.com/katalvlaran/heaptree/prim_kruskal"     // package under test
)

// buildGraph creates an undirected graph with n vertices and the given edges.
func buildGraph(t testing.TB, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil, nil, builder.Edges(edges...))
	require.NoError(t, err)

	return g
}

// buildMediumGraph creates a connected graph with n vertices and edgesCount
// undirected edges.
//   - First, a chain 0—1—...—(n-1) with random weights [1..10] ensures connectivity.
//   - Then (edgesCount - (n-1)) random extra edges with weights [1..100] are added.
//
// The generator is seeded deterministically for reproducibility.
func buildMediumGraph(t testing.TB, n, edgesCount int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, nil, []builder.Option{builder.WithSeed(seed)},
		builder.Path(1, 10), builder.RandomEdges(edgesCount-(n-1), 1, 100))
	require.NoError(t, err)

	return g
}

// spans reports whether edges connect all n vertices.
func spans(n int, edges []core.Edge) bool {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	seen := make([]bool, n)
	stack := []int{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				count++
				stack = append(stack, v)
			}
		}
	}

	return count == n
}

// TestPrim_FourVertexScenario checks the reference graph
// (0-1,10) (0-2,6) (0-3,5) (1-3,15) (2-3,4): total weight 19.
func TestPrim_FourVertexScenario(t *testing.T) {
	g := buildGraph(t, 4,
		core.Edge{From: 0, To: 1, Weight: 10},
		core.Edge{From: 0, To: 2, Weight: 6},
		core.Edge{From: 0, To: 3, Weight: 5},
		core.Edge{From: 1, To: 3, Weight: 15},
		core.Edge{From: 2, To: 3, Weight: 4},
	)

	mst, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	require.Len(t, mst, 3)
	assert.Equal(t, int64(19), core.Weights(mst))

	// Finish order 3, 2, 1; every entry reads vertex→predecessor.
	assert.Equal(t, []core.Edge{
		{From: 3, To: 0, Weight: 5},
		{From: 2, To: 3, Weight: 4},
		{From: 1, To: 0, Weight: 10},
	}, mst)
}

func TestPrim_EveryStartSameWeight(t *testing.T) {
	g := buildMediumGraph(t, 30, 80, 3)
	ref, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	for start := 0; start < 30; start++ {
		mst, err := prim_kruskal.Prim(g, start)
		require.NoError(t, err)
		assert.Len(t, mst, 29)
		assert.Equal(t, core.Weights(ref), core.Weights(mst), "start %d", start)
		assert.True(t, spans(30, mst), "start %d", start)
	}
}

// TestPrim_MatchesKruskal compares Prim against the union-find reference on
// random connected graphs: same total weight, V-1 edges, spanning.
func TestPrim_MatchesKruskal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		n := 5 + int(seed)*7
		g := buildMediumGraph(t, n, 3*n, seed)

		mst, err := prim_kruskal.Prim(g, 0)
		require.NoError(t, err)
		ref, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)

		require.Len(t, mst, n-1, "seed %d", seed)
		assert.Equal(t, core.Weights(ref), core.Weights(mst), "seed %d", seed)
		assert.True(t, spans(n, mst), "seed %d", seed)
	}
}

func TestPrim_SingleVertex(t *testing.T) {
	g := buildGraph(t, 1)
	mst, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	assert.Empty(t, mst)
}

func TestPrim_InvalidStart(t *testing.T) {
	g := buildGraph(t, 3, core.Edge{From: 0, To: 1, Weight: 1}, core.Edge{From: 1, To: 2, Weight: 1})

	_, err := prim_kruskal.Prim(g, 3)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = prim_kruskal.Prim(g, -1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = prim_kruskal.Prim(nil, 0)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	empty := buildGraph(t, 0)
	_, err = prim_kruskal.Prim(empty, 0)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestPrim_DisconnectedNotDetected documents that Prim does not report a
// disconnected graph: the unreachable vertex comes out at Infinity with no
// predecessor.
func TestPrim_DisconnectedNotDetected(t *testing.T) {
	g := buildGraph(t, 3, core.Edge{From: 0, To: 1, Weight: 2})

	mst, err := prim_kruskal.Prim(g, 0)
	require.NoError(t, err)
	require.Len(t, mst, 2)
	assert.Equal(t, core.Edge{From: 1, To: 0, Weight: 2}, mst[0])
	assert.Equal(t, core.Edge{From: 2, To: -1, Weight: minheap.Infinity}, mst[1])
}

func TestPrim_OnFinishAndLogger(t *testing.T) {
	g := buildGraph(t, 3,
		core.Edge{From: 0, To: 1, Weight: 4},
		core.Edge{From: 1, To: 2, Weight: 1},
		core.Edge{From: 0, To: 2, Weight: 9},
	)
	zc, logs := observer.New(zap.DebugLevel)

	var order []int
	var keys []int64
	_, err := prim_kruskal.Prim(g, 0,
		prim_kruskal.WithLogger(zap.New(zc)),
		prim_kruskal.WithOnFinish(func(id int, p int64) {
			order = append(order, id)
			keys = append(keys, p)
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, order)
	assert.Equal(t, []int64{0, 4, 1}, keys)
	assert.Equal(t, 1, logs.FilterMessage("traversal finished").Len())
	assert.Equal(t, "prim", logs.All()[0].LoggerName)
}

func TestKruskal(t *testing.T) {
	g := buildGraph(t, 4,
		core.Edge{From: 0, To: 1, Weight: 4},
		core.Edge{From: 0, To: 2, Weight: 1},
		core.Edge{From: 2, To: 1, Weight: 2},
		core.Edge{From: 1, To: 3, Weight: 3},
		core.Edge{From: 2, To: 3, Weight: 5},
		core.Edge{From: 3, To: 0, Weight: 4},
	)

	mst, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 1, To: 3, Weight: 3},
	}, mst)
	assert.Equal(t, int64(6), core.Weights(mst))
}

func TestTypedNilGraph(t *testing.T) {
	var g *core.Graph

	var err error
	require.NotPanics(t, func() { _, err = prim_kruskal.Prim(g, 0) })
	assert.ErrorIs(t, err, core.ErrNilGraph)

	require.NotPanics(t, func() { _, err = prim_kruskal.Kruskal(g) })
	assert.ErrorIs(t, err, core.ErrNilGraph)

	require.NotPanics(t, func() { _, err = prim_kruskal.Compute(g, prim_kruskal.MethodPrim, 0) })
	assert.ErrorIs(t, err, core.ErrNilGraph)
}

func TestKruskal_Validation(t *testing.T) {
	_, err := prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, core.ErrNilGraph)

	_, err = prim_kruskal.Kruskal(buildGraph(t, 0))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	mst, err := prim_kruskal.Kruskal(buildGraph(t, 1))
	require.NoError(t, err)
	assert.Empty(t, mst)

	_, err = prim_kruskal.Kruskal(buildGraph(t, 3, core.Edge{From: 0, To: 1, Weight: 1}))
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestCompute(t *testing.T) {
	g := buildMediumGraph(t, 12, 30, 11)

	p, err := prim_kruskal.Compute(g, prim_kruskal.MethodPrim, 5)
	require.NoError(t, err)
	k, err := prim_kruskal.Compute(g, prim_kruskal.MethodKruskal, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Weights(k), core.Weights(p))

	_, err = prim_kruskal.Compute(g, "boruvka", 0)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}
