package refine

import "sort"

// evictionCandidate is one vertex considered for eviction from an
// oversized part, scored by its gain bucket so that getEvictions can
// select, in bucket order, just enough vertices to bring every part back
// under size_max.
type evictionCandidate struct {
	vertex int32
	part   int32
	bucket int32
	vwgt   int64
}

// getEvictions selects, from candidates (each already tagged with the
// gain bucket its move would land in), a prefix of each oversized part's
// bucket-sorted candidate list whose cumulative vertex weight brings that
// part's size back under sizeMax. Candidates are sorted by (part, bucket)
// so that the least-damaging moves (bucket 0, most positive gain) within
// each part are preferred; this is the sequential equivalent of the
// original's parallel prefix-sum-over-minibuckets eviction selection — the
// minibucket sectioning in the original exists purely to reduce atomic
// contention on a GPU and has no bearing on which vertices are ultimately
// selected, so it is not reproduced here.
func getEvictions(candidates []evictionCandidate, partSizes []int64, sizeMax int64) []int32 {
	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].part != candidates[b].part {
			return candidates[a].part < candidates[b].part
		}
		return candidates[a].bucket < candidates[b].bucket
	})
	remaining := make(map[int32]int64, len(partSizes))
	for p, s := range partSizes {
		if s > sizeMax {
			remaining[int32(p)] = s - sizeMax
		}
	}
	var chosen []int32
	for _, c := range candidates {
		left, ok := remaining[c.part]
		if !ok || left <= 0 {
			continue
		}
		chosen = append(chosen, c.vertex)
		remaining[c.part] = left - c.vwgt
	}
	return chosen
}
