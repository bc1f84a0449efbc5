package coarsen

import (
	"testing"

	jet "github.com/partkit/jet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trianglePairGraph mirrors internal/refine's fixture: two triangles
// {0,1,2} and {3,4,5} joined by a single bridge edge 2-3.
func trianglePairGraph() *jet.Graph {
	adj := map[int32][]int32{
		0: {1, 2},
		1: {0, 2},
		2: {0, 1, 3},
		3: {2, 4, 5},
		4: {3, 5},
		5: {3, 4},
	}
	rowPtr := make([]int64, 7)
	var colIdx []int32
	for v := int32(0); v < 6; v++ {
		colIdx = append(colIdx, adj[v]...)
		rowPtr[v+1] = int64(len(colIdx))
	}
	return jet.NewGraph(rowPtr, colIdx, nil, nil)
}

func TestHeavyEdgeMatcherProducesValidMatching(t *testing.T) {
	g := trianglePairGraph()
	m := HeavyEdgeMatcher{}
	cmap, coarseN := m.Match(g, nil)

	require.Len(t, cmap, 6)
	assert.Less(t, coarseN, int32(6))

	counts := make(map[int32]int)
	for _, c := range cmap {
		require.GreaterOrEqual(t, c, int32(0))
		require.Less(t, c, coarseN)
		counts[c]++
	}
	for c, n := range counts {
		assert.LessOrEqualf(t, n, 2, "coarse vertex %d absorbed more than 2 fine vertices", c)
	}
}

func TestHeavyEdgeMatcherPrefersHeavierEdge(t *testing.T) {
	// vertex 0 connects to 1 (weight 1) and 2 (weight 10); it must match 2.
	rowPtr := []int64{0, 2, 3, 4}
	colIdx := []int32{1, 2, 0, 0}
	edgeWgt := []int32{1, 10, 1, 10}
	g := jet.NewGraph(rowPtr, colIdx, edgeWgt, nil)

	m := HeavyEdgeMatcher{}
	cmap, _ := m.Match(g, nil)
	assert.Equal(t, cmap[0], cmap[2])
	assert.NotEqual(t, cmap[0], cmap[1])
}

func TestContractPreservesTotalVertexWeight(t *testing.T) {
	g := trianglePairGraph()
	vtxW := []int64{2, 3, 1, 4, 2, 5}
	m := HeavyEdgeMatcher{}
	cmap, coarseN := m.Match(g, vtxW)

	coarseG, coarseVtxW := Contract(g, vtxW, cmap, coarseN)
	require.Equal(t, int(coarseN), coarseG.NumVertices())

	var totalFine, totalCoarse int64
	for _, w := range vtxW {
		totalFine += w
	}
	for _, w := range coarseVtxW {
		totalCoarse += w
	}
	assert.Equal(t, totalFine, totalCoarse)
}

func TestContractDropsSelfLoops(t *testing.T) {
	g := trianglePairGraph()
	// match the whole left triangle into one coarse vertex, and the whole
	// right triangle into another, by hand: all three internal edges of
	// each triangle become self-loops and must vanish, leaving exactly one
	// coarse edge (the former bridge 2-3) between the two coarse vertices.
	cmap := []int32{0, 0, 0, 1, 1, 1}
	coarseG, _ := Contract(g, nil, cmap, 2)

	assert.Equal(t, int64(1), coarseG.NumEdges())
	assert.Equal(t, int32(1), coarseG.EdgeWeight(0))
}

func TestGenerateLevelsStopsAtCutoff(t *testing.T) {
	g := trianglePairGraph()
	levels := GenerateLevels(g, nil, HeavyEdgeMatcher{}, WithCutoff(6), WithMinAllowedVtx(1))
	require.Len(t, levels, 1)
	assert.Equal(t, 6, levels[0].Graph.NumVertices())
	assert.Nil(t, levels[0].Interp)
}

func TestGenerateLevelsCoarsensBelowCutoff(t *testing.T) {
	g := trianglePairGraph()
	levels := GenerateLevels(g, nil, HeavyEdgeMatcher{}, WithCutoff(3), WithMinAllowedVtx(1))
	require.GreaterOrEqual(t, len(levels), 2)
	for i := 1; i < len(levels); i++ {
		assert.NotNil(t, levels[i].Interp)
		assert.Less(t, levels[i].Graph.NumVertices(), levels[i-1].Graph.NumVertices())
	}
}
