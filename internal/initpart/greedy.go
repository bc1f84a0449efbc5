package initpart

import (
	"math/rand"

	jet "github.com/partkit/jet"
)

// GreedyGrowthInitializer builds a starting partition by growing each
// part outward from a seed vertex via breadth-first search, the
// graph-growing heuristic METIS-family initial partitioners use
// (original_source/src/partitioner.hpp's metis_init). Growth stops for a
// part once it reaches its target weight share; any vertex the BFS
// frontiers never reach is assigned to the least-loaded part at the end.
type GreedyGrowthInitializer struct {
	opts settings
}

// NewGreedyGrowthInitializer builds a GreedyGrowthInitializer; WithSeed
// fixes the seed-vertex draw.
func NewGreedyGrowthInitializer(opts ...Option) *GreedyGrowthInitializer {
	s := settings{seed: 1}
	for _, o := range opts {
		o(&s)
	}
	return &GreedyGrowthInitializer{opts: s}
}

// Init implements Initializer.
func (gg *GreedyGrowthInitializer) Init(g *jet.Graph, vtxW []int64, k int32, imbRatio float64) []int32 {
	n := g.NumVertices()
	part := make([]int32, n)
	for i := range part {
		part[i] = -1
	}
	if n == 0 {
		return part
	}

	total := g.TotalVertexWeight()
	opt := jet.OptimalSize(total, k)
	target := jet.MaxPartSize(opt, imbRatio)

	rng := rand.New(rand.NewSource(gg.opts.seed))
	weight := func(v int32) int64 {
		if vtxW != nil {
			return vtxW[v]
		}
		return g.VertexWeight(v)
	}

	partSizes := make([]int64, k)
	seeds := gg.pickSeeds(g, k, rng)

	var queues [][]int32
	for p := int32(0); p < k; p++ {
		queues = append(queues, []int32{seeds[p]})
		part[seeds[p]] = p
		partSizes[p] += weight(seeds[p])
	}

	// round-robin BFS: each part's frontier advances one vertex at a time
	// so no single part races ahead and starves the others of territory.
	active := true
	for active {
		active = false
		for p := int32(0); p < k; p++ {
			if partSizes[p] >= target || len(queues[p]) == 0 {
				continue
			}
			active = true
			v := queues[p][0]
			queues[p] = queues[p][1:]
			for _, u := range g.Neighbors(v) {
				if part[u] != -1 {
					continue
				}
				part[u] = p
				partSizes[p] += weight(u)
				queues[p] = append(queues[p], u)
				if partSizes[p] >= target {
					break
				}
			}
		}
	}

	// any vertex no BFS frontier reached (disconnected components beyond
	// the seeded ones) goes to whichever part is currently lightest.
	for v := 0; v < n; v++ {
		if part[v] != -1 {
			continue
		}
		light := int32(0)
		for p := int32(1); p < k; p++ {
			if partSizes[p] < partSizes[light] {
				light = p
			}
		}
		part[v] = light
		partSizes[light] += weight(int32(v))
	}

	return part
}

// pickSeeds draws k seed vertices uniformly at random, redrawing on a
// collision; seeds are distinct when k <= n, and repeat once all n
// vertices have been used.
func (gg *GreedyGrowthInitializer) pickSeeds(g *jet.Graph, k int32, rng *rand.Rand) []int32 {
	n := g.NumVertices()
	seeds := make([]int32, k)
	used := make(map[int32]bool, k)
	for p := int32(0); p < k; p++ {
		var v int32
		for {
			v = int32(rng.Intn(n))
			if !used[v] || len(used) >= n {
				break
			}
		}
		used[v] = true
		seeds[p] = v
	}
	return seeds
}
