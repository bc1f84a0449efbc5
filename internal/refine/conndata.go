package refine

import (
	jet "github.com/partkit/jet"
	jetexec "github.com/partkit/jet/internal/exec"
)

// InitConnData builds the vertex-part connectivity table for partition
// part on graph g with k parts. Each row's on-disk capacity is
// min(degree, k); after the row is populated it is shrunk to
// used + max(3, used/4) when that is smaller, so that later scans over a
// sparsely connected vertex's row stay cheap.
//
// The original implementation branches on average degree (m/n < 8) to
// choose between a per-vertex open-addressed build and a team-parallel
// build that stages entries in GPU shared memory before writing them to
// the global table; the two builds compute the same result, and the team
// variant exists purely as a GPU occupancy optimization with no Go
// analogue (goroutines have no shared scratch distinct from a vertex's
// own row), so both branches collapse to the single buildRow below,
// parallelized across vertices instead of across edges-within-a-vertex.
func InitConnData(g *jet.Graph, part []int32, k int32) *ConnData {
	n := g.NumVertices()
	offsets := make([]int64, n+1)
	for i := 0; i < n; i++ {
		degree := g.Degree(int32(i))
		if degree > int(k) {
			degree = int(k)
		}
		offsets[i+1] = offsets[i] + int64(degree)
	}
	total := offsets[n]

	cdata := &ConnData{
		ConnVals:       make([]int64, total),
		ConnEntries:    make([]int32, total),
		ConnOffsets:    offsets,
		ConnTableSizes: make([]int32, n),
		LockBit:        make([]int32, n),
		DestCache:      make([]int32, n),
		K:              k,
		Overflow:       make(map[int32]map[int32]int64),
	}
	for i := range cdata.ConnEntries {
		cdata.ConnEntries[i] = NullPart
	}
	for i := range cdata.DestCache {
		cdata.DestCache[i] = NullPart
	}

	jetexec.ParallelFor(n, func(i int) {
		buildRow(cdata, g, part, k, int32(i))
	})
	return cdata
}

// buildRow populates vertex i's connectivity row from its current
// neighbors' part assignments, then shrinks the row's effective capacity
// if few distinct parts were found.
func buildRow(cdata *ConnData, g *jet.Graph, part []int32, k int32, i int32) {
	start := cdata.ConnOffsets[i]
	oldSize := int32(cdata.ConnOffsets[i+1] - start)
	if oldSize == 0 {
		cdata.ConnTableSizes[i] = 0
		return
	}
	entries := cdata.ConnEntries[start : start+int64(oldSize)]
	vals := cdata.ConnVals[start : start+int64(oldSize)]

	used := insertRow(entries, vals, g, part, i, oldSize, k)

	newSize := used + max32(3, used/4)
	if newSize < oldSize {
		for j := range entries {
			entries[j] = NullPart
			vals[j] = 0
		}
		entries = entries[:newSize]
		vals = vals[:newSize]
		insertRow(entries, vals, g, part, i, newSize, k)
		cdata.ConnTableSizes[i] = newSize
	} else {
		cdata.ConnTableSizes[i] = oldSize
	}
}

// insertRow scans i's neighbors, open-address-inserting each neighbor's
// part into entries/vals (linear probe mod size), and returns the number
// of distinct parts inserted.
func insertRow(entries []int32, vals []int64, g *jet.Graph, part []int32, i int32, size int32, k int32) int32 {
	var used int32
	neighbors := g.Neighbors(i)
	weights := g.NeighborWeights(i)
	for idx, v := range neighbors {
		p := part[v]
		wgt := int64(1)
		if weights != nil {
			wgt = int64(weights[idx])
		}
		slot := p % size
		if slot < 0 {
			slot += size
		}
		if size < k {
			for entries[slot] != NullPart && entries[slot] != p {
				slot = (slot + 1) % size
			}
		}
		vals[slot] += wgt
		if entries[slot] == NullPart {
			entries[slot] = p
			used++
		}
	}
	return used
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// lookup returns the connectivity weight row[start:start+size] has
// recorded for target, or 0 if target has no entry. The probe terminates
// early on an empty slot, since insertion never leaves a gap before an
// occupied slot for a key that hashes earlier (matching the original's
// bounded linear probe).
func lookup(entries []int32, vals []int64, target int32, size int32) int64 {
	if size == 0 {
		return 0
	}
	slot := target % size
	if slot < 0 {
		slot += size
	}
	for q := int32(0); q < size; q++ {
		p := (slot + q) % size
		if entries[p] == target {
			return vals[p]
		}
		if entries[p] == NullPart {
			return 0
		}
	}
	return 0
}

// Lookup returns v's connectivity weight to part target, checking the
// fixed-capacity row first and the overflow map second.
func (c *ConnData) Lookup(v int32, target int32) int64 {
	start := c.ConnOffsets[v]
	size := c.ConnTableSizes[v]
	if val := lookup(c.ConnEntries[start:start+int64(size)], c.ConnVals[start:start+int64(size)], target, size); val != 0 {
		return val
	}
	c.overflowMu.Lock()
	defer c.overflowMu.Unlock()
	if row, ok := c.Overflow[v]; ok {
		return row[target]
	}
	return 0
}

// Upsert adds delta to v's connectivity weight toward target, inserting a
// new entry if target is not yet present. It tries the fixed-capacity row
// first (reusing a HashReclaim tombstone or empty slot); if the row is
// completely full of other live entries, the entry is kept in the
// overflow map instead.
func (c *ConnData) Upsert(v int32, target int32, delta int64) {
	start := c.ConnOffsets[v]
	size := c.ConnTableSizes[v]
	if size > 0 {
		slot := target % size
		if slot < 0 {
			slot += size
		}
		for q := int32(0); q < size; q++ {
			p := (slot + q) % size
			e := c.ConnEntries[start+int64(p)]
			if e == target {
				c.ConnVals[start+int64(p)] += delta
				return
			}
			if e == NullPart {
				break
			}
		}
		for q := int32(0); q < size; q++ {
			p := (slot + q) % size
			if c.ConnEntries[start+int64(p)] <= NullPart {
				c.ConnEntries[start+int64(p)] = target
				c.ConnVals[start+int64(p)] += delta
				return
			}
		}
	}
	c.overflowMu.Lock()
	defer c.overflowMu.Unlock()
	row := c.Overflow[v]
	if row == nil {
		row = make(map[int32]int64)
		c.Overflow[v] = row
	}
	row[target] += delta
}

// Subtract removes delta from v's connectivity weight toward target,
// tombstoning the row slot (or deleting the overflow entry) if the weight
// reaches exactly zero.
func (c *ConnData) Subtract(v int32, target int32, delta int64) {
	start := c.ConnOffsets[v]
	size := c.ConnTableSizes[v]
	if size > 0 {
		slot := target % size
		if slot < 0 {
			slot += size
		}
		for q := int32(0); q < size; q++ {
			p := (slot + q) % size
			if c.ConnEntries[start+int64(p)] == target {
				c.ConnVals[start+int64(p)] -= delta
				if c.ConnVals[start+int64(p)] == 0 && size < c.K {
					// size == K means this row is direct-mapped (one slot per
					// part, never collided); the slot stays assigned to target
					// permanently, so there is nothing to reclaim.
					c.ConnEntries[start+int64(p)] = HashReclaim
				}
				return
			}
			if c.ConnEntries[start+int64(p)] == NullPart {
				break
			}
		}
	}
	c.overflowMu.Lock()
	defer c.overflowMu.Unlock()
	if row, ok := c.Overflow[v]; ok {
		row[target] -= delta
		if row[target] == 0 {
			delete(row, target)
		}
	}
}
