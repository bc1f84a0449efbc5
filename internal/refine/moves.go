package refine

import (
	jetexec "github.com/partkit/jet/internal/exec"
)

// PerformMoves applies swaps (vertex ids chosen by JetLP or a rebalancer,
// with their destinations recorded in destPart) to part, updates part
// sizes, refreshes the connectivity table via updateSmall or updateLarge
// depending on batch size, and updates curr's cut and imbalance to match.
//
// The cut delta is computed in two passes around the connectivity-table
// refresh: the first pass reads each moved vertex's stale row (still
// reflecting the pre-move world) to get its pre-move connectivity to its
// old and new part, and the second pass reads the same vertex's row after
// the refresh to get its post-move connectivity — the two together give
// the exact change in total cut caused by the whole batch moving at once,
// which is cheaper than recomputing cut from scratch after every move.
func PerformMoves(prob *Problem, part []int32, swaps []int32, scratch *ScratchMem, cdata *ConnData, curr *RefineData) {
	total := len(swaps)
	if total == 0 {
		return
	}
	destPart := scratch.DestPart

	cutChange1 := jetexec.ParallelReduce(total, 0, func(x int, acc int64) int64 {
		i := swaps[x]
		best := destPart[i]
		p := part[i]
		pCon := cdata.Lookup(i, p)
		bCon := cdata.Lookup(i, best)
		return acc + (bCon - pCon)
	}, func(a, b int64) int64 { return a + b })

	partSizeDelta := make([]int64, len(curr.PartSizes))
	for _, i := range swaps {
		p := part[i]
		best := destPart[i]
		cdata.DestCache[i] = NullPart
		partSizeDelta[p] -= prob.VtxW[i]
		partSizeDelta[best] += prob.VtxW[i]
		part[i] = best
		destPart[i] = p // stash old part for the connectivity-table refresh
	}
	for p, d := range partSizeDelta {
		curr.PartSizes[p] += d
	}

	n := prob.G.NumVertices()
	if total > n/10 {
		updateLarge(prob.G, part, swaps, prob.K, cdata)
	} else {
		updateSmall(prob.G, part, swaps, destPart, cdata)
	}

	cutChange2 := jetexec.ParallelReduce(total, 0, func(x int, acc int64) int64 {
		i := swaps[x]
		p := destPart[i] // old part, stashed above
		best := part[i]
		pCon := cdata.Lookup(i, p)
		bCon := cdata.Lookup(i, best)
		return acc + (bCon - pCon)
	}, func(a, b int64) int64 { return a + b })

	var maxSize int64
	for _, s := range curr.PartSizes {
		if s > maxSize {
			maxSize = s
		}
	}
	cutChange := cutChange1 + cutChange2
	if maxSize > prob.Opt {
		curr.TotalImb = maxSize - prob.Opt
	} else {
		curr.TotalImb = 0
	}
	curr.Cut -= cutChange
}
