package refine

import (
	jet "github.com/partkit/jet"
	jetexec "github.com/partkit/jet/internal/exec"
)

// updateSmall maintains the connectivity table after a small batch of
// moves (at most n/10 vertices): for each moved vertex, subtract its
// contribution from its old part's connectivity entry in every neighbor's
// row, then add its contribution to its new part's entry. Subtract
// tombstones an entry that reaches exactly zero so a later Upsert can
// reuse the slot; Upsert falls back to the connectivity table's overflow
// map when a row's fixed capacity is completely full of other live
// entries (see ConnData.Overflow).
//
// Both loops below run sequentially rather than through jetexec.ParallelFor,
// unlike buildRow's per-vertex loop: here the loop is indexed by *moved*
// vertex but mutates a *neighbor*'s row, so two moved vertices that share a
// neighbor (the common case whenever a batch moves adjacent vertices)
// would otherwise race on the same ConnVals/ConnEntries slots with no lock
// and no atomics. The batch this function handles is by definition small
// (at most n/10 vertices), so the sequential cost here is minor; this
// mirrors RebalanceWeak/RebalanceStrong, which scan all n vertices
// sequentially for the same reason — their candidate selection touches
// shared per-part state that a parallel loop would need to serialize
// around anyway.
func updateSmall(g *jet.Graph, part []int32, swaps []int32, oldPart []int32, cdata *ConnData) {
	for _, i := range swaps {
		p := oldPart[i]
		neighbors := g.Neighbors(i)
		weights := g.NeighborWeights(i)
		for idx, v := range neighbors {
			wgt := int64(1)
			if weights != nil {
				wgt = int64(weights[idx])
			}
			cdata.Subtract(v, p, wgt)
		}
	}

	for _, i := range swaps {
		best := part[i]
		neighbors := g.Neighbors(i)
		weights := g.NeighborWeights(i)
		for idx, v := range neighbors {
			wgt := int64(1)
			if weights != nil {
				wgt = int64(weights[idx])
			}
			cdata.DestCache[v] = NullPart
			cdata.Upsert(v, best, wgt)
		}
	}
}

// updateLarge maintains the connectivity table after a large batch of
// moves (more than n/10 vertices): rather than patch individual entries, it
// marks every vertex adjacent to a moved vertex and fully rebuilds those
// vertices' rows from scratch, which amortizes better than incremental
// patching once enough vertices have moved.
func updateLarge(g *jet.Graph, part []int32, swaps []int32, k int32, cdata *ConnData) {
	n := g.NumVertices()
	touched := make([]int32, n)
	for _, i := range swaps {
		for _, v := range g.Neighbors(i) {
			touched[v] = 1
		}
	}
	jetexec.ParallelFor(n, func(i int) {
		if touched[i] == 0 {
			return
		}
		vi := int32(i)
		start := cdata.ConnOffsets[vi]
		size := int32(cdata.ConnOffsets[vi+1] - start)
		for j := int64(0); j < int64(size); j++ {
			cdata.ConnVals[start+j] = 0
			cdata.ConnEntries[start+j] = NullPart
		}
		cdata.overflowMu.Lock()
		delete(cdata.Overflow, vi)
		cdata.overflowMu.Unlock()
		buildRow(cdata, g, part, k, vi)
		cdata.DestCache[vi] = NullPart
	})
}
