package refine

// RebalanceWeak chooses vertices to move out of oversized parts by
// assigning each candidate vertex a destination first (its most-connected
// undersized part, or an arbitrary undersized part if none of its
// neighbors lie in one), scoring the move by gain bucket, and then
// filtering down to just enough vertices per oversized part to satisfy
// the balance constraint. It is tried before RebalanceStrong because it
// is cheaper and usually sufficient; the driver escalates to
// RebalanceStrong after two consecutive RebalanceWeak rounds fail to
// restore balance.
func RebalanceWeak(prob *Problem, part []int32, cdata *ConnData, scratch *ScratchMem, partSizes []int64) []int32 {
	n := prob.G.NumVertices()
	k := prob.K
	sizeMax := prob.SizeMax
	optSize := prob.Opt

	maxDest := float64(sizeMax) * 0.99
	if maxDest < float64(sizeMax-100) {
		maxDest = float64(sizeMax - 100)
	}

	var undersized []int32
	for p := int32(0); p < k; p++ {
		if float64(partSizes[p]) < maxDest {
			undersized = append(undersized, p)
		}
	}
	if len(undersized) == 0 {
		return nil
	}

	destPart := scratch.DestPart
	saveGains := scratch.Gain2
	candidates := make([]evictionCandidate, 0, n/8)

	for i := 0; i < n; i++ {
		vi := int32(i)
		p := part[vi]
		destPart[vi] = p
		if !(float64(partSizes[p]) > float64(sizeMax) && float64(prob.VtxW[vi]) < 1.5*float64(partSizes[p]-optSize)) {
			continue
		}
		start := cdata.ConnOffsets[vi]
		size := cdata.ConnTableSizes[vi]
		end := start + int64(size)
		var best int32 = p
		var bestGain int64
		var pGain int64
		for j := start; j < end; j++ {
			entry := cdata.ConnEntries[j]
			if entry <= NullPart {
				continue
			}
			if entry == p {
				pGain = cdata.ConnVals[j]
				continue
			}
			if float64(partSizes[entry]) < maxDest {
				g := cdata.ConnVals[j]
				if g > bestGain {
					best = entry
					bestGain = g
				}
			}
		}
		var gain int64
		if bestGain > 0 {
			gain = bestGain - pGain
		} else {
			best = undersized[int(vi)%len(undersized)]
			gain = -pGain
		}
		destPart[vi] = best
		saveGains[vi] = gain
		if best != p {
			bucket := gainBucket(gain, prob.VtxW[vi])
			candidates = append(candidates, evictionCandidate{vertex: vi, part: p, bucket: bucket, vwgt: prob.VtxW[vi]})
		}
	}

	return getEvictions(candidates, partSizes, sizeMax)
}
