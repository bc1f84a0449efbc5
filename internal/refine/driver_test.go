package refine

import (
	"testing"

	jet "github.com/partkit/jet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathGraph(n int) *jet.Graph {
	rowPtr := make([]int64, n+1)
	var colIdx []int32
	for v := 0; v < n; v++ {
		if v > 0 {
			colIdx = append(colIdx, int32(v-1))
		}
		if v < n-1 {
			colIdx = append(colIdx, int32(v+1))
		}
		rowPtr[v+1] = int64(len(colIdx))
	}
	return jet.NewGraph(rowPtr, colIdx, nil, nil)
}

func bipartiteK33() *jet.Graph {
	// two sides {0,1,2} and {3,4,5}, every cross edge present, no
	// same-side edges — any 2-way partition that separates the sides
	// entirely has the maximum possible cut; a good partition instead
	// mixes both sides into each part to minimize cut.
	adj := map[int32][]int32{
		0: {3, 4, 5}, 1: {3, 4, 5}, 2: {3, 4, 5},
		3: {0, 1, 2}, 4: {0, 1, 2}, 5: {0, 1, 2},
	}
	rowPtr := make([]int64, 7)
	var colIdx []int32
	for v := int32(0); v < 6; v++ {
		colIdx = append(colIdx, adj[v]...)
		rowPtr[v+1] = int64(len(colIdx))
	}
	return jet.NewGraph(rowPtr, colIdx, nil, nil)
}

func defaultTestConfig() jet.Config {
	cfg := jet.DefaultConfig()
	cfg.NumParts = 2
	cfg.MaxImbRatio = 1.2
	return cfg
}

func TestRefineImprovesTrianglePairCut(t *testing.T) {
	g := trianglePairGraph()
	// deliberately bad: split each triangle across both parts.
	part := []int32{0, 1, 0, 1, 0, 1}
	cfg := defaultTestConfig()

	before := jet.EdgeCut(g, part)
	rd := Refine(g, cfg, part)
	after := jet.EdgeCut(g, part)

	require.LessOrEqual(t, after, before)
	assert.Equal(t, rd.Cut/2, after)
	// the bridge edge 2-3 is the only edge that must be cut in an optimal
	// 2-way partition of two triangles joined by one edge.
	assert.Equal(t, int64(1), after)
}

func TestRefinePathGraphBalances(t *testing.T) {
	g := pathGraph(8)
	part := make([]int32, 8)
	for i := range part {
		part[i] = int32(i % 2)
	}
	cfg := defaultTestConfig()
	Refine(g, cfg, part)

	sizes := jet.PartSizes(g, part, cfg.NumParts)
	assert.InDelta(t, 4, sizes[0], 1)
	assert.InDelta(t, 4, sizes[1], 1)
}

func TestRefineBipartiteDoesNotIncreaseCut(t *testing.T) {
	g := bipartiteK33()
	part := []int32{0, 0, 0, 1, 1, 1}
	cfg := defaultTestConfig()

	before := jet.EdgeCut(g, part)
	Refine(g, cfg, part)
	after := jet.EdgeCut(g, part)
	assert.LessOrEqual(t, after, before)
}

func TestRefineIdempotentOnOptimalInput(t *testing.T) {
	g := trianglePairGraph()
	part := []int32{0, 0, 0, 1, 1, 1} // already optimal: cut = 1
	cfg := defaultTestConfig()

	before := jet.EdgeCut(g, part)
	Refine(g, cfg, part)
	after := jet.EdgeCut(g, part)
	assert.Equal(t, before, after)
}

func TestRefineStarGraphHeavyCenter(t *testing.T) {
	// a star with a heavy center vertex and light leaves; any partition
	// must put the center in exactly one part, so the minimum cut is the
	// number of leaves assigned to the other part.
	n := 9
	vtxWgt := make([]int64, n)
	vtxWgt[0] = 100
	for i := 1; i < n; i++ {
		vtxWgt[i] = 1
	}
	// center is vertex 0; build symmetric CSR adjacency.
	rowPtr := make([]int64, n+1)
	var colIdx []int32
	leaves := make([][]int32, n)
	for leaf := int32(1); leaf < int32(n); leaf++ {
		leaves[0] = append(leaves[0], leaf)
		leaves[leaf] = append(leaves[leaf], 0)
	}
	for v := 0; v < n; v++ {
		colIdx = append(colIdx, leaves[v]...)
		rowPtr[v+1] = int64(len(colIdx))
	}
	g := jet.NewGraph(rowPtr, colIdx, nil, vtxWgt)

	part := make([]int32, n)
	for i := 1; i < n; i++ {
		part[i] = int32(i % 2)
	}
	cfg := defaultTestConfig()
	cfg.MaxImbRatio = 2.0
	before := jet.EdgeCut(g, part)
	Refine(g, cfg, part)

	// refinement must not make the cut worse than the start.
	after := jet.EdgeCut(g, part)
	assert.LessOrEqual(t, after, before)
}
