package refine

// RebalanceStrong chooses vertices to move out of oversized parts using
// the average connectivity loss to any undersized neighboring part as the
// move score (rather than the single best neighboring part, as
// RebalanceWeak does), selects evictions first via the shared gain-bucket
// prefix-sum scheme, and only afterward assigns each evicted vertex a
// destination — greedily filling whichever undersized part currently has
// the most spare capacity. The driver escalates to this rebalancer once
// RebalanceWeak has failed to restore balance for two consecutive rounds,
// since it does more work per call but converges on stubborn imbalance
// that weak rebalancing alone does not resolve.
func RebalanceStrong(prob *Problem, part []int32, cdata *ConnData, scratch *ScratchMem, partSizes []int64) []int32 {
	n := prob.G.NumVertices()
	k := prob.K
	sizeMax := prob.SizeMax
	optSize := prob.Opt

	maxDest := float64(optSize + 1)
	if alt := float64(sizeMax) * 0.99; alt > maxDest {
		maxDest = alt
	}

	var maxVwgt int64
	for p := int32(0); p < k; p++ {
		if float64(partSizes[p]) < maxDest {
			cap := int64(maxDest) - partSizes[p]
			if cap > maxVwgt {
				maxVwgt = cap
			}
		}
	}

	candidates := make([]evictionCandidate, 0, n/8)
	for i := 0; i < n; i++ {
		vi := int32(i)
		p := part[vi]
		if !(partSizes[p] > sizeMax && prob.VtxW[vi] <= 2*maxVwgt && prob.VtxW[vi] < 2*(partSizes[p]-optSize)) {
			continue
		}
		start := cdata.ConnOffsets[vi]
		size := cdata.ConnTableSizes[vi]
		end := start + int64(size)
		var totalGain int64
		var totalCount int64
		var pGain int64
		for j := start; j < end; j++ {
			entry := cdata.ConnEntries[j]
			if entry == p {
				pGain = cdata.ConnVals[j]
				continue
			}
			if entry > NullPart && float64(partSizes[entry]) < maxDest {
				totalGain += cdata.ConnVals[j]
				totalCount++
			}
		}
		if totalCount == 0 {
			totalCount = 1
		}
		gain := (totalGain / totalCount) - pGain
		weight := prob.VtxW[vi]
		if cap := partSizes[p] - sizeMax; cap < weight {
			weight = cap
		}
		bucket := gainBucket(gain, weight)
		candidates = append(candidates, evictionCandidate{vertex: vi, part: p, bucket: bucket, vwgt: prob.VtxW[vi]})
	}

	evicted := getEvictions(candidates, partSizes, sizeMax)
	assignToUndersized(prob, part, evicted, partSizes, maxDest, scratch)
	return evicted
}

// assignToUndersized greedily assigns each evicted vertex to whichever
// part currently has the most spare capacity under maxDest, writing the
// choice into scratch.DestPart. Parts that fill up are skipped for
// subsequent vertices in the same call.
func assignToUndersized(prob *Problem, part []int32, evicted []int32, partSizes []int64, maxDest float64, scratch *ScratchMem) {
	k := int(prob.K)
	capacity := make([]float64, k)
	for p := 0; p < k; p++ {
		capacity[p] = maxDest - float64(partSizes[p])
	}
	for _, v := range evicted {
		best := -1
		var bestCap float64
		for p := 0; p < k; p++ {
			if capacity[p] > bestCap {
				bestCap = capacity[p]
				best = p
			}
		}
		if best == -1 {
			scratch.DestPart[v] = part[v]
			continue
		}
		scratch.DestPart[v] = int32(best)
		capacity[best] -= float64(prob.VtxW[v])
	}
}
