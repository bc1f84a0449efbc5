package refine

import (
	"testing"

	jet "github.com/partkit/jet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trianglePairGraph returns two disjoint triangles {0,1,2} and {3,4,5}
// connected by a single bridge edge 2-3, all unit weights.
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

func TestInitConnDataRecordsNeighborParts(t *testing.T) {
	g := trianglePairGraph()
	part := []int32{0, 0, 0, 1, 1, 1}
	cdata := InitConnData(g, part, 2)

	// vertex 2 is connected to 0,1 (part 0) and 3 (part 1).
	assert.Equal(t, int64(2), cdata.Lookup(2, 0))
	assert.Equal(t, int64(1), cdata.Lookup(2, 1))
	// vertex 0 is only connected within part 0.
	assert.Equal(t, int64(2), cdata.Lookup(0, 0))
	assert.Equal(t, int64(0), cdata.Lookup(0, 1))
}

func TestUpsertAndSubtractRoundTrip(t *testing.T) {
	g := trianglePairGraph()
	part := []int32{0, 0, 0, 1, 1, 1}
	cdata := InitConnData(g, part, 2)

	before := cdata.Lookup(0, 1)
	require.Equal(t, int64(0), before)

	cdata.Upsert(0, 1, 5)
	assert.Equal(t, int64(5), cdata.Lookup(0, 1))

	cdata.Subtract(0, 1, 5)
	assert.Equal(t, int64(0), cdata.Lookup(0, 1))
}

func TestUpdateSmallMatchesFullRebuild(t *testing.T) {
	g := trianglePairGraph()
	part := []int32{0, 0, 0, 1, 1, 1}
	cdata := InitConnData(g, part, 2)

	// move vertex 2 from part 0 to part 1
	oldPart := append([]int32(nil), part...)
	part[2] = 1
	updateSmall(g, part, []int32{2}, oldPart, cdata)

	fresh := InitConnData(g, part, 2)
	for v := int32(0); v < 6; v++ {
		for p := int32(0); p < 2; p++ {
			assert.Equal(t, fresh.Lookup(v, p), cdata.Lookup(v, p), "vertex %d part %d mismatch", v, p)
		}
	}
}

func TestUpdateSmallMatchesFullRebuildWithSharedNeighbor(t *testing.T) {
	// vertices 0 and 1 are both neighbors of vertex 2 (and of each
	// other); moving both out of part 0 in the same batch means two
	// "moved vertex" iterations touch vertex 2's row at once, the case a
	// batch of 1 never exercises.
	g := trianglePairGraph()
	part := []int32{0, 0, 0, 1, 1, 1}
	cdata := InitConnData(g, part, 2)

	oldPart := append([]int32(nil), part...)
	part[0] = 1
	part[1] = 1
	updateSmall(g, part, []int32{0, 1}, oldPart, cdata)

	fresh := InitConnData(g, part, 2)
	for v := int32(0); v < 6; v++ {
		for p := int32(0); p < 2; p++ {
			assert.Equal(t, fresh.Lookup(v, p), cdata.Lookup(v, p), "vertex %d part %d mismatch", v, p)
		}
	}
}

func TestUpdateLargeMatchesFullRebuild(t *testing.T) {
	g := trianglePairGraph()
	part := []int32{0, 0, 0, 1, 1, 1}
	cdata := InitConnData(g, part, 2)

	part[2] = 1
	part[3] = 0
	updateLarge(g, part, []int32{2, 3}, 2, cdata)

	fresh := InitConnData(g, part, 2)
	for v := int32(0); v < 6; v++ {
		for p := int32(0); p < 2; p++ {
			assert.Equal(t, fresh.Lookup(v, p), cdata.Lookup(v, p), "vertex %d part %d mismatch", v, p)
		}
	}
}
