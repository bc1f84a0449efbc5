package refine

import (
	"math"

	jetexec "github.com/partkit/jet/internal/exec"
)

// JetLP is the label-propagation move-selection pass: for every vertex not
// already locked in place, it picks the most-connected neighboring part as
// a tentative destination (subject to filterRatio, which controls how much
// worse a move may be than staying put and still be attempted), then runs
// an "afterburner" reconciliation pass that re-derives each tentative
// move's gain as if moves with higher priority (greater gain, or equal
// gain and lower vertex id) had already happened, and only accepts moves
// whose reconciled gain is still non-negative. It returns the accepted
// vertex ids.
func JetLP(prob *Problem, part []int32, cdata *ConnData, scratch *ScratchMem, filterRatio float64) []int32 {
	n := prob.G.NumVertices()
	destPart := scratch.DestPart
	saveGains := scratch.GainPersistent

	jetexec.ParallelFor(n, func(i int) {
		vi := int32(i)
		best := cdata.DestCache[vi]
		if best != NullPart {
			destPart[vi] = best
			return
		}
		p := part[vi]
		best = NoMove
		var bConn, pConn int64
		start := cdata.ConnOffsets[vi]
		size := cdata.ConnTableSizes[vi]
		end := start + int64(size)
		for j := start; j < end; j++ {
			jConn := cdata.ConnVals[j]
			entry := cdata.ConnEntries[j]
			if jConn > bConn && entry != p && entry > NullPart {
				best = entry
				bConn = jConn
			} else if jConn > 0 && entry == p {
				pConn = jConn
			}
		}
		saveGains[vi] = 0
		if best != NoMove {
			if bConn >= pConn || (pConn-bConn) < int64(math.Floor(filterRatio*float64(pConn))) {
				saveGains[vi] = bConn - pConn
			} else {
				best = NoMove
			}
		}
		cdata.DestCache[vi] = best
		destPart[vi] = best
	})

	pregain := scratch.Gain1
	keep := make([]int32, n)
	for i := 0; i < n; i++ {
		if destPart[i] != NoMove && cdata.LockBit[i] == 0 {
			keep[i] = 1
			pregain[i] = saveGains[i]
		} else {
			pregain[i] = GainMin
			cdata.LockBit[i] = 0
		}
	}
	posMoves := compact(keep, n)

	jetexec.ParallelFor(len(posMoves), func(t int) {
		i := posMoves[t]
		best := destPart[i]
		p := part[i]
		igain := pregain[i]
		var change int64
		for idx, v := range prob.G.Neighbors(i) {
			vgain := pregain[v]
			if vgain > igain || (vgain == igain && v < i) {
				wgt := int64(1)
				if w := prob.G.NeighborWeights(i); w != nil {
					wgt = int64(w[idx])
				}
				vpart := destPart[v]
				if vpart == p {
					change -= wgt
				} else if vpart == best {
					change += wgt
				}
				vpart = part[v]
				if vpart == p {
					change += wgt
				} else if vpart == best {
					change -= wgt
				}
			}
		}
		if igain+change >= 0 {
			cdata.LockBit[i] = 1
		}
	})

	final := make([]int32, 0, len(posMoves))
	for _, v := range posMoves {
		if cdata.LockBit[v] != 0 {
			final = append(final, v)
		}
	}
	return final
}

// compact returns the indices i in [0, n) for which keep[i] != 0, in
// increasing order.
func compact(keep []int32, n int) []int32 {
	out := make([]int32, 0, n)
	for i := 0; i < n; i++ {
		if keep[i] != 0 {
			out = append(out, int32(i))
		}
	}
	return out
}
