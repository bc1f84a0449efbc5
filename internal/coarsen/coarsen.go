// Package coarsen builds the sequence of progressively smaller graphs the
// multilevel driver partitions top-down: a Coarsener repeatedly matches
// and contracts vertex pairs until the graph is small enough to partition
// directly.
package coarsen

import (
	jet "github.com/partkit/jet"
)

// Level is one element of a coarsening sequence. Interp maps each vertex
// of the next-finer level (levels[i-1]) onto a vertex of this level; it is
// nil for levels[0], the original graph, which has no finer predecessor.
type Level struct {
	Graph  *jet.Graph
	VtxW   []int64
	Interp []int32
}

// Coarsener selects which vertex pairs to contract at each level. The
// multilevel driver chooses an implementation via jet.Config's
// CoarseningAlg, mirroring the switch the teacher's partitioner driver
// makes over coarsening_alg (spec.md §6).
type Coarsener interface {
	// Match returns cmap, a length-n array mapping each vertex of g to a
	// coarse vertex id in [0, coarseN), and coarseN, the number of
	// distinct coarse vertices produced.
	Match(g *jet.Graph, vtxW []int64) (cmap []int32, coarseN int32)
}

// Option configures GenerateLevels, following the functional-options
// shape used throughout the pack's graph-library constructors.
type Option func(*settings)

type settings struct {
	cutoff        int
	minAllowedVtx int
}

// WithCutoff sets the coarse-vertex-count cutoff at which coarsening
// stops. The multilevel driver computes it as k*8, replaced by
// max(1024, k*2) when k*8 exceeds 1024, and passes it in here.
func WithCutoff(cutoff int) Option {
	return func(s *settings) { s.cutoff = cutoff }
}

// WithMinAllowedVtx sets the minimum number of vertices a single
// coarsening step may reduce the graph to before GenerateLevels refuses
// to add another level even if the cutoff hasn't been reached yet — this
// guards against a degenerate near-total-matching collapsing the graph to
// almost nothing in one step.
func WithMinAllowedVtx(n int) Option {
	return func(s *settings) { s.minAllowedVtx = n }
}

// GenerateLevels repeatedly matches and contracts g (via matcher) until
// the coarsest level has at most cutoff vertices, or a coarsening step
// fails to shrink the graph by at least 10%, whichever comes first. The
// returned slice is ordered finest-to-coarsest, with the original graph
// as levels[0].
func GenerateLevels(g *jet.Graph, vtxW []int64, matcher Coarsener, opts ...Option) []Level {
	s := settings{cutoff: 1024, minAllowedVtx: 256}
	for _, o := range opts {
		o(&s)
	}
	levels := []Level{{Graph: g, VtxW: vtxW}}
	for {
		cur := levels[len(levels)-1]
		n := cur.Graph.NumVertices()
		if n <= s.cutoff {
			break
		}
		cmap, coarseN := matcher.Match(cur.Graph, cur.VtxW)
		if int(coarseN) >= n {
			// matching found no pair to contract; further levels would be
			// identical to this one.
			break
		}
		coarseG, coarseVtxW := Contract(cur.Graph, cur.VtxW, cmap, coarseN)
		levels = append(levels, Level{Graph: coarseG, VtxW: coarseVtxW, Interp: cmap})
		if int(coarseN) <= s.minAllowedVtx || float64(coarseN) > 0.9*float64(n) {
			// either small enough to hand to initial partitioning, or
			// coarsening stalled (matched fewer than 10% of vertices).
			break
		}
	}
	return levels
}
