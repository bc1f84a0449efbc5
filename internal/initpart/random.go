package initpart

import (
	"math/rand"

	jet "github.com/partkit/jet"
)

// RandomInitializer assigns every vertex to a uniformly random part,
// ignoring balance entirely. It mirrors the teacher's coarsen_mtmetis-free
// "random_init" fallback (original_source/src/partitioner.hpp references
// it as the alternative to metis_init) and exists mainly as a cheap
// baseline for tests and benchmarks.
type RandomInitializer struct {
	opts settings
}

// NewRandomInitializer builds a RandomInitializer; WithSeed fixes the
// draw sequence.
func NewRandomInitializer(opts ...Option) *RandomInitializer {
	s := settings{seed: 1}
	for _, o := range opts {
		o(&s)
	}
	return &RandomInitializer{opts: s}
}

// Init implements Initializer.
func (r *RandomInitializer) Init(g *jet.Graph, vtxW []int64, k int32, imbRatio float64) []int32 {
	rng := rand.New(rand.NewSource(r.opts.seed))
	n := g.NumVertices()
	part := make([]int32, n)
	for v := 0; v < n; v++ {
		part[v] = int32(rng.Intn(int(k)))
	}
	return part
}
