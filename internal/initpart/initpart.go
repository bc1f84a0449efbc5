// Package initpart assigns every vertex of the coarsest level in a
// multilevel run to an initial part, before refinement takes over. The
// quality bar here is low: refinement corrects a mediocre starting
// partition, but a degenerate one (e.g. a part with zero vertices) can
// leave some parts unable to recover.
package initpart

import (
	jet "github.com/partkit/jet"
)

// Initializer produces a starting partition for the coarsest graph in a
// multilevel run. The multilevel driver always uses
// GreedyGrowthInitializer; RandomInitializer is not selectable through
// jet.Config.
type Initializer interface {
	Init(g *jet.Graph, vtxW []int64, k int32, imbRatio float64) []int32
}

// Option configures an Initializer's construction, following the
// functional-options shape used throughout internal/coarsen and the
// pack's graph-library constructors.
type Option func(*settings)

type settings struct {
	seed int64
}

// WithSeed fixes the pseudo-random sequence RandomInitializer and the
// tie-breaking in GreedyGrowthInitializer's seed selection draw from,
// making a run reproducible.
func WithSeed(seed int64) Option {
	return func(s *settings) { s.seed = seed }
}
