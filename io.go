package jet

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadGraphFile reads a graph in METIS format.
//
// First non-comment line: "n m fmt ncon". fmt 0 means unweighted edges,
// fmt 1 means weighted edges (interleaved neighbor, weight pairs). ncon
// must be 0 — this reader does not support vertex weights carried in the
// header line (spec.md §6). Lines beginning with '%' are comments.
// Vertex ids in the file are 1-based; ColIdx is stored 0-based. A missing
// trailing newline is tolerated because bufio.Scanner does not require one.
func ReadGraphFile(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var header []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		header = strings.Fields(line)
		break
	}
	if header == nil || len(header) < 2 {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, header)
	}

	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vertex count: %v", ErrBadHeader, err)
	}

	fmtFlag := 0
	ncon := 0
	if len(header) >= 3 {
		fmtFlag, err = strconv.Atoi(header[2])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid fmt flag: %v", ErrBadHeader, err)
		}
	}
	if len(header) >= 4 {
		ncon, err = strconv.Atoi(header[3])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid ncon: %v", ErrBadHeader, err)
		}
	}
	if fmtFlag != 0 && fmtFlag != 1 {
		return nil, fmt.Errorf("%w: fmt=%d", ErrUnsupportedFormat, fmtFlag)
	}
	if ncon != 0 {
		return nil, fmt.Errorf("%w: ncon=%d", ErrVertexWeightsUnsupported, ncon)
	}
	hasEdgeWeights := fmtFlag == 1

	rowPtr := make([]int64, n+1)
	colIdx := make([]int32, 0, n*4)
	var edgeWgt []int32
	if hasEdgeWeights {
		edgeWgt = make([]int32, 0, n*4)
	}

	rowsRead := 0
	for rowsRead < n && scanner.Scan() {
		text := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(text), "%") {
			continue
		}
		fields := strings.Fields(text)
		rowsRead++
		for j := 0; j < len(fields); {
			v, err := strconv.Atoi(fields[j])
			if err != nil {
				return nil, fmt.Errorf("%w: invalid vertex id at row %d: %v", ErrBadHeader, rowsRead, err)
			}
			colIdx = append(colIdx, int32(v-1))
			j++
			if hasEdgeWeights {
				if j >= len(fields) {
					return nil, fmt.Errorf("%w: dangling edge weight at row %d", ErrBadHeader, rowsRead)
				}
				w, err := strconv.Atoi(fields[j])
				if err != nil {
					return nil, fmt.Errorf("%w: invalid edge weight at row %d: %v", ErrBadHeader, rowsRead, err)
				}
				edgeWgt = append(edgeWgt, int32(w))
				j++
			}
		}
		rowPtr[rowsRead] = int64(len(colIdx))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if rowsRead != n {
		return nil, fmt.Errorf("%w: expected %d vertex rows, read %d", ErrShortRead, n, rowsRead)
	}

	return &Graph{RowPtr: rowPtr, ColIdx: colIdx, EdgeWgt: edgeWgt}, nil
}

// WritePartitioning writes one part id per line, in vertex order,
// matching the input graph's vertex order (spec.md §6 "Partition output").
func WritePartitioning(w io.Writer, part []int32) error {
	bw := bufio.NewWriter(w)
	for _, p := range part {
		if _, err := fmt.Fprintf(bw, "%d\n", p); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPartitionFile reads a partition file written by WritePartitioning.
func ReadPartitionFile(r io.Reader, n int) ([]int32, error) {
	part := make([]int32, 0, n)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("jet: invalid partition line %q: %w", line, err)
		}
		part = append(part, int32(p))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(part) != n {
		return nil, fmt.Errorf("%w: expected %d partition entries, read %d", ErrShortRead, n, len(part))
	}
	return part, nil
}

// CoarseLevel is one element of a coarse-graph sequence, as produced by
// coarsening (internal/coarsen.Level has the same three fields; io.go
// defines its own type so that it has no dependency on internal/coarsen).
type CoarseLevel struct {
	Graph  *Graph
	VtxW   []int64
	Interp []int32 // vertex of levels[i-1] -> vertex of levels[i]; nil for levels[0]
}

// WriteCoarseSequence dumps a sequence of coarse graphs and their
// interpolation maps to a binary file, for controlled-input experiments
// (spec.md §6 "Coarse-sequence binary format"). levels must be ordered
// finest-to-coarsest as produced by coarsening; on disk the order is
// preserved as given (original_source/src/binary_dump.hpp writes
// coarsest-last in the same order coarsening produced them).
func WriteCoarseSequence(w io.Writer, levels []CoarseLevel) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, int32(len(levels))); err != nil {
		return err
	}
	var prevN int32
	for i, lvl := range levels {
		g := lvl.Graph
		n := int32(g.NumVertices())
		m := int64(len(g.ColIdx))
		if err := binary.Write(bw, binary.LittleEndian, n); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, m); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, g.RowPtr); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, g.ColIdx); err != nil {
			return err
		}
		ew := g.EdgeWgt
		if ew == nil {
			ew = onesInt32(len(g.ColIdx))
		}
		if err := binary.Write(bw, binary.LittleEndian, ew); err != nil {
			return err
		}
		vw := lvl.VtxW
		if vw == nil {
			vw = onesInt64(int(n))
		}
		if err := binary.Write(bw, binary.LittleEndian, vw); err != nil {
			return err
		}
		if i > 0 {
			if int32(len(lvl.Interp)) != prevN {
				return fmt.Errorf("jet: level %d interpolation map has %d entries, want %d", i, len(lvl.Interp), prevN)
			}
			if err := binary.Write(bw, binary.LittleEndian, lvl.Interp); err != nil {
				return err
			}
		}
		prevN = n
	}
	return bw.Flush()
}

// ReadCoarseSequence reloads a sequence written by WriteCoarseSequence.
// Every stored value round-trips exactly. A nil EdgeWgt or VtxW is written
// as explicit unit weights, so it comes back as a non-nil slice of ones
// (and the reloaded graph's UniformEdgeWeights reports false).
func ReadCoarseSequence(r io.Reader) ([]CoarseLevel, error) {
	br := bufio.NewReader(r)
	var numLevels int32
	if err := binary.Read(br, binary.LittleEndian, &numLevels); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if numLevels <= 0 {
		return nil, ErrEmptyLevels
	}
	levels := make([]CoarseLevel, numLevels)
	var prevN int32
	for i := 0; i < int(numLevels); i++ {
		var n int32
		var m int64
		if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("%w: level %d: %v", ErrShortRead, i, err)
		}
		if err := binary.Read(br, binary.LittleEndian, &m); err != nil {
			return nil, fmt.Errorf("%w: level %d: %v", ErrShortRead, i, err)
		}
		rowPtr := make([]int64, n+1)
		if err := binary.Read(br, binary.LittleEndian, rowPtr); err != nil {
			return nil, fmt.Errorf("%w: level %d row_ptr: %v", ErrShortRead, i, err)
		}
		colIdx := make([]int32, m)
		if err := binary.Read(br, binary.LittleEndian, colIdx); err != nil {
			return nil, fmt.Errorf("%w: level %d col_idx: %v", ErrShortRead, i, err)
		}
		edgeWgt := make([]int32, m)
		if err := binary.Read(br, binary.LittleEndian, edgeWgt); err != nil {
			return nil, fmt.Errorf("%w: level %d edge_wgt: %v", ErrShortRead, i, err)
		}
		vtxW := make([]int64, n)
		if err := binary.Read(br, binary.LittleEndian, vtxW); err != nil {
			return nil, fmt.Errorf("%w: level %d vtx_w: %v", ErrShortRead, i, err)
		}
		lvl := CoarseLevel{
			Graph: &Graph{RowPtr: rowPtr, ColIdx: colIdx, EdgeWgt: edgeWgt},
			VtxW:  vtxW,
		}
		if i > 0 {
			interp := make([]int32, prevN)
			if err := binary.Read(br, binary.LittleEndian, interp); err != nil {
				return nil, fmt.Errorf("%w: level %d interp: %v", ErrShortRead, i, err)
			}
			lvl.Interp = interp
		}
		levels[i] = lvl
		prevN = n
	}
	return levels, nil
}

func onesInt32(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

func onesInt64(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
