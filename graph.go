package jet

// Graph is an undirected weighted graph in compressed sparse row (CSR)
// format. Adjacency is stored symmetrically: each undirected edge {u, v}
// contributes two directed entries, one in u's row and one in v's.
//
// RowPtr has NumVertices()+1 entries; ColIdx and EdgeWgt are parallel,
// concatenated adjacency lists of length 2*NumEdges().
type Graph struct {
	RowPtr  []int64 // index array, length n+1
	ColIdx  []int32 // adjacency lists (concatenated), length 2m
	EdgeWgt []int32 // edge weights parallel to ColIdx; nil means all weights are 1

	// VtxWgt is the per-vertex weight vector, length n. nil means all
	// vertices have weight 1.
	VtxWgt []int64
}

// NewGraph builds a Graph from CSR adjacency arrays. EdgeWgt and VtxWgt
// may be nil to indicate unit weights.
func NewGraph(rowPtr []int64, colIdx []int32, edgeWgt []int32, vtxWgt []int64) *Graph {
	return &Graph{RowPtr: rowPtr, ColIdx: colIdx, EdgeWgt: edgeWgt, VtxWgt: vtxWgt}
}

// NumVertices returns n, the number of vertices in the graph.
func (g *Graph) NumVertices() int {
	return len(g.RowPtr) - 1
}

// NumEdges returns m, the number of undirected edges (each counted once).
func (g *Graph) NumEdges() int64 {
	return int64(len(g.ColIdx)) / 2
}

// Degree returns the number of directed adjacency entries for vertex v,
// equal to v's undirected degree.
func (g *Graph) Degree(v int32) int {
	return int(g.RowPtr[v+1] - g.RowPtr[v])
}

// Neighbors returns the neighbor ids of vertex v.
func (g *Graph) Neighbors(v int32) []int32 {
	start, end := g.RowPtr[v], g.RowPtr[v+1]
	return g.ColIdx[start:end]
}

// NeighborWeights returns the edge weights parallel to Neighbors(v). If
// the graph has uniform edge weights, the returned slice is nil and
// callers should treat every weight as 1.
func (g *Graph) NeighborWeights(v int32) []int32 {
	if g.EdgeWgt == nil {
		return nil
	}
	start, end := g.RowPtr[v], g.RowPtr[v+1]
	return g.EdgeWgt[start:end]
}

// VertexWeight returns vtx_w[v], defaulting to 1 when VtxWgt is unset.
func (g *Graph) VertexWeight(v int32) int64 {
	if g.VtxWgt == nil {
		return 1
	}
	return g.VtxWgt[v]
}

// EdgeWeight returns the weight of adjacency-list entry j (an index
// returned by iterating RowPtr, not a vertex id), defaulting to 1 when
// the graph has uniform edge weights.
func (g *Graph) EdgeWeight(j int64) int32 {
	if g.EdgeWgt == nil {
		return 1
	}
	return g.EdgeWgt[j]
}

// UniformEdgeWeights reports whether every edge has weight 1. The
// refinement driver uses this to pick the default temperature schedule
// (spec.md §4.7).
func (g *Graph) UniformEdgeWeights() bool {
	return g.EdgeWgt == nil
}

// TotalVertexWeight returns total_size, the sum of all vertex weights.
func (g *Graph) TotalVertexWeight() int64 {
	n := g.NumVertices()
	if g.VtxWgt == nil {
		return int64(n)
	}
	var total int64
	for _, w := range g.VtxWgt {
		total += w
	}
	return total
}

// Clone returns a deep copy of the graph, safe to mutate independently.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		RowPtr: append([]int64(nil), g.RowPtr...),
		ColIdx: append([]int32(nil), g.ColIdx...),
	}
	if g.EdgeWgt != nil {
		out.EdgeWgt = append([]int32(nil), g.EdgeWgt...)
	}
	if g.VtxWgt != nil {
		out.VtxWgt = append([]int64(nil), g.VtxWgt...)
	}
	return out
}
