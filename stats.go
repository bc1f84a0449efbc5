package jet

// OptimalSize returns opt = ceil(totalSize / k), the balance target every
// part's weight is compared against (spec.md §3).
func OptimalSize(totalSize int64, k int32) int64 {
	if k <= 0 {
		return totalSize
	}
	return (totalSize + int64(k) - 1) / int64(k)
}

// MaxPartSize returns size_max = floor(opt * imbRatio), the largest
// per-part weight a balanced partition may have.
func MaxPartSize(opt int64, imbRatio float64) int64 {
	return int64(float64(opt) * imbRatio)
}

// PartSizes computes part_sizes[p], the total vertex weight assigned to
// each part, for p in [0, k).
func PartSizes(g *Graph, part []int32, k int32) []int64 {
	sizes := make([]int64, k)
	for v := 0; v < g.NumVertices(); v++ {
		sizes[part[v]] += g.VertexWeight(int32(v))
	}
	return sizes
}

// LargestPartSize returns max_p part_sizes[p].
func LargestPartSize(partSizes []int64) int64 {
	var max int64
	for _, s := range partSizes {
		if s > max {
			max = s
		}
	}
	return max
}

// TotalImbalance returns max(0, largest part size - opt).
func TotalImbalance(partSizes []int64, opt int64) int64 {
	max := LargestPartSize(partSizes)
	if max > opt {
		return max - opt
	}
	return 0
}

// TotalCut computes 2*edge_cut: the sum, over every directed adjacency
// entry whose endpoints lie in different parts, of the entry's weight.
// This is the quantity the refiner maintains incrementally as "cut";
// divide by 2 to get the conventional edge cut.
func TotalCut(g *Graph, part []int32) int64 {
	var cut int64
	n := g.NumVertices()
	for v := 0; v < n; v++ {
		pv := part[v]
		start, end := g.RowPtr[v], g.RowPtr[v+1]
		for j := start; j < end; j++ {
			u := g.ColIdx[j]
			if part[u] != pv {
				cut += int64(g.EdgeWeight(j))
			}
		}
	}
	return cut
}

// EdgeCut computes the conventional edge cut (each cut edge counted
// once), equal to TotalCut(g, part) / 2.
func EdgeCut(g *Graph, part []int32) int64 {
	return TotalCut(g, part) / 2
}

// BalanceReport summarizes the weight distribution of a partition.
type BalanceReport struct {
	Opt        int64
	SizeMax    int64
	LargestSz  int64
	TotalImb   int64
	PartSizes  []int64
	IsBalanced bool
}

// Balance computes a BalanceReport for the given partition under the
// given imbalance ratio.
func Balance(g *Graph, part []int32, k int32, imbRatio float64) BalanceReport {
	sizes := PartSizes(g, part, k)
	total := g.TotalVertexWeight()
	opt := OptimalSize(total, k)
	sizeMax := MaxPartSize(opt, imbRatio)
	largest := LargestPartSize(sizes)
	return BalanceReport{
		Opt:        opt,
		SizeMax:    sizeMax,
		LargestSz:  largest,
		TotalImb:   TotalImbalance(sizes, opt),
		PartSizes:  sizes,
		IsBalanced: largest <= sizeMax,
	}
}
