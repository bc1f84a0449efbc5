// Package exec is a small bulk-synchronous-parallel execution space: a
// goroutine-based stand-in for the Kokkos execution-space primitives
// (parallel_for, parallel_reduce, parallel_scan, team_parallel_for) the
// refiner is specified against. Every call partitions its index range into
// runtime.GOMAXPROCS(0) chunks, runs one goroutine per chunk, and joins
// before returning — there is no persistent worker pool, matching the
// fork-join shape of a single Kokkos kernel launch.
package exec

import (
	"runtime"
	"sync"
)

// parts splits [0, n) into a number of roughly equal-size partitions,
// never more than runtime.GOMAXPROCS(0) and never more than n itself.
func parts(n int) (count, size int) {
	if n <= 0 {
		return 0, 0
	}
	if p := runtime.GOMAXPROCS(0); p <= n {
		return p, n / p
	}
	return n, 1
}

// bounds returns the [start, end) index range of partition p out of count
// partitions covering [0, n).
func bounds(p, count, size, n int) (start, end int) {
	start = size * p
	end = start + size
	if p == count-1 {
		end = n
	}
	return start, end
}

// ParallelFor calls body(i) once for every i in [0, n), distributed across
// goroutines. body must be safe to call concurrently for distinct i.
func ParallelFor(n int, body func(i int)) {
	count, size := parts(n)
	if count == 0 {
		return
	}
	var wg sync.WaitGroup
	wg.Add(count)
	for p := 0; p < count; p++ {
		start, end := bounds(p, count, size, n)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				body(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// TeamParallelFor calls body(i) once for every i in [0, n), the same
// contract as ParallelFor. It exists as a distinct entry point because the
// refiner's afterburner pass (jetlp.go) is specified in terms of Kokkos
// team policies rather than flat parallel_for; here both reduce to the
// same index-partitioned fork-join, since Go has no notion of a team's
// scratch shared memory distinct from a goroutine's own stack.
func TeamParallelFor(n int, body func(i int)) {
	ParallelFor(n, body)
}

// ParallelReduce calls body(i) for every i in [0, n), combining each
// goroutine's partial accumulator with combine, and returns the overall
// reduction. init seeds every goroutine's accumulator as well as the final
// combination, so it must be an identity of combine. combine must be associative and
// commutative, since partition order is not guaranteed; per-partition
// accumulation is sequential and deterministic within a partition.
func ParallelReduce(n int, init int64, body func(i int, acc int64) int64, combine func(a, b int64) int64) int64 {
	count, size := parts(n)
	if count == 0 {
		return init
	}
	partials := make([]int64, count)
	var wg sync.WaitGroup
	wg.Add(count)
	for p := 0; p < count; p++ {
		start, end := bounds(p, count, size, n)
		go func(p, start, end int) {
			defer wg.Done()
			acc := init
			for i := start; i < end; i++ {
				acc = body(i, acc)
			}
			partials[p] = acc
		}(p, start, end)
	}
	wg.Wait()
	total := init
	for _, pr := range partials {
		total = combine(total, pr)
	}
	return total
}

// ParallelScan computes an exclusive prefix sum of value(i) for i in
// [0, n), returning the per-index offsets and the grand total. Each
// partition computes its local prefix sums and total sequentially and in
// parallel with the other partitions, then partition totals are combined
// sequentially (necessarily — each partition's base offset depends on
// every earlier partition's total) before every index's offset is
// corrected by its partition's base. This mirrors the two-pass structure
// Kokkos's parallel_scan documents (local scan, then global fixup). The
// refiner does not call it: jetlp.go compresses its move list with a
// sequential filter.
func ParallelScan(n int, value func(i int) int64) (offsets []int64, total int64) {
	offsets = make([]int64, n)
	if n == 0 {
		return offsets, 0
	}
	count, size := parts(n)
	partitionTotals := make([]int64, count)
	var wg sync.WaitGroup
	wg.Add(count)
	for p := 0; p < count; p++ {
		start, end := bounds(p, count, size, n)
		go func(p, start, end int) {
			defer wg.Done()
			var running int64
			for i := start; i < end; i++ {
				offsets[i] = running
				running += value(i)
			}
			partitionTotals[p] = running
		}(p, start, end)
	}
	wg.Wait()

	base := make([]int64, count)
	var running int64
	for p := 0; p < count; p++ {
		base[p] = running
		running += partitionTotals[p]
	}
	total = running

	wg.Add(count)
	for p := 0; p < count; p++ {
		start, end := bounds(p, count, size, n)
		go func(p, start, end int) {
			defer wg.Done()
			b := base[p]
			if b == 0 {
				return
			}
			for i := start; i < end; i++ {
				offsets[i] += b
			}
		}(p, start, end)
	}
	wg.Wait()
	return offsets, total
}
