// Package refine implements the Jet local-search refinement engine: a
// label-propagation pass (JetLP) interleaved with two rebalancers
// (RebalanceWeak, RebalanceStrong) that together minimize k-way edge cut
// subject to a balance constraint, on top of a vertex-part connectivity
// table (ConnData) maintained incrementally as vertices move.
package refine

import (
	"math"
	"sync"

	jet "github.com/partkit/jet"
)

// PartID identifies a part in [0, k). NullPart, HashReclaim, and NoMove are
// sentinel values stored in the same slots as real part ids, the same
// three-sentinel scheme the refiner's connectivity table uses to tell an
// empty slot, a tombstoned slot, and "no beneficial move" apart.
type PartID = int32

const (
	// NullPart marks a connectivity-table slot that has never held an
	// entry, or a vertex with no cached destination.
	NullPart PartID = -1
	// HashReclaim marks a slot whose entry was evicted (its connectivity
	// weight dropped to zero) and may be reused by a future insert.
	HashReclaim PartID = -2
	// NoMove marks a vertex JetLP considered but found no beneficial
	// destination for.
	NoMove PartID = -3
)

// GainMin is the minimum representable gain, used to mark vertices that
// were not selected as candidate moves so they always lose gain
// comparisons.
const GainMin = math.MinInt64

// Sizing constants for the rebalancers' gain-bucket eviction scheme.
const (
	maxBuckets = 50
	midBucket  = 25
)

// RefineData is the state carried between coarsening levels: the current
// best partition's part sizes, cut, and imbalance.
type RefineData struct {
	PartSizes []int64
	TotalSize int64
	Cut       int64
	TotalImb  int64
	Init      bool
}

// Clone returns a deep copy of r, safe to mutate independently — used to
// snapshot the best-known state before trying a speculative round of
// moves.
func (r *RefineData) Clone() *RefineData {
	out := &RefineData{
		PartSizes: append([]int64(nil), r.PartSizes...),
		TotalSize: r.TotalSize,
		Cut:       r.Cut,
		TotalImb:  r.TotalImb,
		Init:      r.Init,
	}
	return out
}

// CopyFrom overwrites r's fields with src's, reusing r's PartSizes backing
// array.
func (r *RefineData) CopyFrom(src *RefineData) {
	copy(r.PartSizes, src.PartSizes)
	r.TotalSize = src.TotalSize
	r.Cut = src.Cut
	r.TotalImb = src.TotalImb
	r.Init = src.Init
}

// Problem bundles the fixed-for-this-level inputs every refinement
// operation needs.
type Problem struct {
	G       *jet.Graph
	VtxW    []int64 // resolved per-vertex weights (graph's own, or uniform)
	K       int32
	Imb     float64
	Opt     int64 // balance target
	SizeMax int64 // largest tolerated part size
}

// ConnData is the vertex-part connectivity table: for vertex i, slots
// [ConnOffsets[i], ConnOffsets[i]+ConnTableSizes[i]) of ConnEntries/
// ConnVals form an open-addressed hash map from part id to the total edge
// weight connecting i to that part.
type ConnData struct {
	ConnVals       []int64
	ConnEntries    []int32
	ConnOffsets    []int64 // length n+1, row capacity boundaries (not occupancy)
	ConnTableSizes []int32 // actual row capacity currently in use, <= ConnOffsets[i+1]-ConnOffsets[i]
	LockBit        []int32
	DestCache      []int32

	// K is the number of parts. A row whose ConnTableSizes equals K is
	// direct-mapped (slot = part id, one slot per possible part, never
	// collided), so Subtract never needs to tombstone it: the slot stays
	// assigned to that part id forever and a zero value is just an
	// ordinary "not currently connected" reading, the same as any other
	// direct-mapped slot that was never populated.
	K int32

	// Overflow holds entries for a vertex whose row filled completely and
	// could not accept a new part via probing; indexed by vertex id, then
	// by part id. This only ever holds data for vertices with
	// unusually high effective degree relative to their row capacity,
	// which in the original implementation is handled by writing past
	// the row's allocated region into whatever memory follows it. Go has
	// no safe equivalent of that out-of-bounds write, so overflow entries
	// are kept in an ordinary map instead; lookups and updates consult it
	// only after the fixed-capacity row comes back empty.
	Overflow map[int32]map[int32]int64

	// overflowMu guards Overflow; the fixed-capacity row arrays are
	// partitioned one row per vertex so parallel per-vertex loops never
	// touch the same row slots, but Overflow is a single shared map and
	// needs its own lock.
	overflowMu sync.Mutex
}

// ScratchMem holds the per-vertex buffers reused across refinement
// iterations. The hot path still allocates some per-call slices: JetLP's
// keep/move lists, the rebalancers' candidate lists, PerformMoves'
// part-size deltas and updateLarge's touched marks.
type ScratchMem struct {
	Gain1, Gain2, GainPersistent []int64
	VtxScratch1, VtxScratch2     []int32
	Zeros1                       []int32
	DestPart                     []int32
	Undersized                   []int32
	EvictStart, EvictEnd         []int64
}

// NewScratchMem allocates a ScratchMem sized for a graph of n vertices and
// k parts.
func NewScratchMem(n int, k int32) *ScratchMem {
	return &ScratchMem{
		Gain1:          make([]int64, n),
		Gain2:          make([]int64, n),
		GainPersistent: make([]int64, n),
		VtxScratch1:    make([]int32, n),
		VtxScratch2:    make([]int32, n),
		Zeros1:         make([]int32, n),
		DestPart:       make([]int32, n),
		Undersized:     make([]int32, k),
		EvictStart:     make([]int64, k+1),
		EvictEnd:       make([]int64, k),
	}
}
