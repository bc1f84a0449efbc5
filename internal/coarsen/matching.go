package coarsen

import jet "github.com/partkit/jet"

// HeavyEdgeMatcher pairs each vertex with its heaviest-weight unmatched
// neighbor (breaking ties toward the lower-id neighbor for determinism),
// the heavy-edge-matching heuristic the teacher's driver selects via
// coarsening_alg == 1 ("HECv1"). Vertices with no unmatched neighbor left
// when their turn comes are left singleton.
//
// Steps, mirroring the pack's greedy-edge-selection matchers:
//  1. Visit vertices in id order; skip any already matched.
//  2. Among v's unmatched neighbors, pick the one with the heaviest
//     connecting edge weight (ties broken by lower vertex id).
//  3. If found, match v with it; otherwise v stays unmatched (singleton).
//  4. Assign every matched pair, and every singleton, a coarse vertex id.
type HeavyEdgeMatcher struct{}

// Match implements Coarsener.
func (HeavyEdgeMatcher) Match(g *jet.Graph, vtxW []int64) (cmap []int32, coarseN int32) {
	n := g.NumVertices()
	matched := make([]bool, n)
	cmap = make([]int32, n)
	for i := range cmap {
		cmap[i] = -1
	}
	var next int32
	for v := 0; v < n; v++ {
		if matched[int32(v)] {
			continue
		}
		best := int32(-1)
		var bestW int32
		neighbors := g.Neighbors(int32(v))
		weights := g.NeighborWeights(int32(v))
		for idx, u := range neighbors {
			if matched[u] || u == int32(v) {
				continue
			}
			w := int32(1)
			if weights != nil {
				w = weights[idx]
			}
			if best == -1 || w > bestW || (w == bestW && u < best) {
				best = u
				bestW = w
			}
		}
		id := next
		next++
		cmap[v] = id
		matched[int32(v)] = true
		if best != -1 {
			cmap[best] = id
			matched[best] = true
		}
	}
	return cmap, next
}

// Contract builds the coarse graph implied by cmap: coarse vertex c's
// weight is the sum of every fine vertex weight mapped to c, and an edge
// (c1, c2) in the coarse graph carries the sum of every fine edge weight
// between a vertex mapped to c1 and a vertex mapped to c2 (self-loops,
// where both endpoints map to the same coarse vertex, are dropped — the
// teacher's and original_source's coarsening both drop them, since a
// self-loop contributes nothing to any cut).
func Contract(g *jet.Graph, vtxW []int64, cmap []int32, coarseN int32) (*jet.Graph, []int64) {
	n := g.NumVertices()
	coarseVtxW := make([]int64, coarseN)
	for v := 0; v < n; v++ {
		if vtxW != nil {
			coarseVtxW[cmap[v]] += vtxW[v]
		} else {
			coarseVtxW[cmap[v]] += g.VertexWeight(int32(v))
		}
	}

	type edgeKey struct{ a, b int32 }
	agg := make(map[edgeKey]int64)
	for v := 0; v < n; v++ {
		cv := cmap[v]
		neighbors := g.Neighbors(int32(v))
		weights := g.NeighborWeights(int32(v))
		for idx, u := range neighbors {
			cu := cmap[u]
			if cu == cv {
				continue
			}
			w := int64(1)
			if weights != nil {
				w = int64(weights[idx])
			}
			agg[edgeKey{cv, cu}] += w
		}
	}

	adjacency := make([][]struct {
		to int32
		w  int64
	}, coarseN)
	for key, w := range agg {
		adjacency[key.a] = append(adjacency[key.a], struct {
			to int32
			w  int64
		}{key.b, w})
	}

	rowPtr := make([]int64, coarseN+1)
	var colIdx []int32
	var edgeWgt []int32
	for c := int32(0); c < coarseN; c++ {
		for _, e := range adjacency[c] {
			colIdx = append(colIdx, e.to)
			edgeWgt = append(edgeWgt, int32(e.w))
		}
		rowPtr[c+1] = int64(len(colIdx))
	}

	return jet.NewGraph(rowPtr, colIdx, edgeWgt, coarseVtxW), coarseVtxW
}
