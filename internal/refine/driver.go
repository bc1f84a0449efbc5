package refine

import (
	jet "github.com/partkit/jet"
)

// Refine runs the Jet local-search loop on graph g, starting from
// part, until no further improving temperature remains. It writes the
// best partition found back into part and returns the RefineData
// describing it.
//
// The loop follows a temperature schedule over filterRatio (JetLP's
// how-much-worse-than-staying-put tolerance): ultra settings sweep
// 0.85 down to 0.05 in steps of 0.05; otherwise a single pass at 0.25 for
// uniform edge weights or 0.75 otherwise. Within each temperature, up to
// 12 phases run; each phase either runs JetLP (when the current
// imbalance is within tolerance) or a rebalancer (RebalanceWeak for the
// first two consecutive imbalanced phases, RebalanceStrong afterward),
// and accepts the result as the new best whenever it improves balance
// while previously out of balance, or improves cut without regressing
// balance — resetting the phase counter unless the cut improvement was
// below RefineTolerance.
func Refine(g *jet.Graph, cfg jet.Config, part []int32) *RefineData {
	k := cfg.NumParts
	n := g.NumVertices()

	vtxW := make([]int64, n)
	for i := 0; i < n; i++ {
		vtxW[i] = g.VertexWeight(int32(i))
	}

	best := &RefineData{
		PartSizes: jet.PartSizes(g, part, k),
		Cut:       jet.TotalCut(g, part),
		TotalSize: g.TotalVertexWeight(),
		Init:      true,
	}
	opt := jet.OptimalSize(best.TotalSize, k)
	sizeMax := jet.MaxPartSize(opt, cfg.MaxImbRatio)
	largest := jet.LargestPartSize(best.PartSizes)
	if largest > opt {
		best.TotalImb = largest - opt
	}

	prob := &Problem{G: g, VtxW: vtxW, K: k, Imb: cfg.MaxImbRatio, Opt: opt, SizeMax: sizeMax}
	imbMax := sizeMax - opt

	curr := best.Clone()
	workingPart := append([]int32(nil), part...)
	cdata := InitConnData(g, workingPart, k)
	scratch := NewScratchMem(n, k)

	temps := temperatureSchedule(cfg, g.UniformEdgeWeights())
	balanceCounter := 0

	for _, filterRatio := range temps {
		count := 0
		for count <= 11 {
			count++
			var moves []int32
			if curr.TotalImb <= imbMax {
				moves = JetLP(prob, workingPart, cdata, scratch, filterRatio)
				balanceCounter = 0
			} else if balanceCounter < 2 {
				moves = RebalanceWeak(prob, workingPart, cdata, scratch, curr.PartSizes)
				balanceCounter++
			} else {
				moves = RebalanceStrong(prob, workingPart, cdata, scratch, curr.PartSizes)
				balanceCounter++
			}
			if len(moves) == 0 {
				continue
			}
			PerformMoves(prob, workingPart, moves, scratch, cdata, curr)

			switch {
			case best.TotalImb > imbMax && curr.TotalImb < best.TotalImb:
				best.CopyFrom(curr)
				copy(part, workingPart)
				count = 0
			case curr.Cut < best.Cut && (curr.TotalImb <= imbMax || curr.TotalImb <= best.TotalImb):
				if curr.Cut < int64(cfg.RefineTolerance*float64(best.Cut)) {
					count = 0
				}
				best.CopyFrom(curr)
				copy(part, workingPart)
			}
		}
	}

	return best
}

// temperatureSchedule returns the sequence of JetLP filter ratios the
// driver sweeps through, per cfg.UltraSettings and whether the graph has
// uniform edge weights.
func temperatureSchedule(cfg jet.Config, uniformEW bool) []float64 {
	if cfg.UltraSettings {
		var temps []float64
		for t := 0.85; t > 0; t -= 0.05 {
			temps = append(temps, t)
		}
		return temps
	}
	if uniformEW {
		return []float64{0.25}
	}
	return []float64{0.75}
}
