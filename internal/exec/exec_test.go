package exec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelForVisitsEveryIndex(t *testing.T) {
	n := 10007
	seen := make([]int32, n)
	ParallelFor(n, func(i int) {
		seen[i] = 1
	})
	for i, v := range seen {
		require.Equal(t, int32(1), v, "index %d not visited", i)
	}
}

func TestParallelReduceSum(t *testing.T) {
	n := 5000
	total := ParallelReduce(n, 0, func(i int, acc int64) int64 {
		return acc + int64(i)
	}, func(a, b int64) int64 { return a + b })
	want := int64(n-1) * int64(n) / 2
	assert.Equal(t, want, total)
}

func TestParallelScanExclusivePrefix(t *testing.T) {
	values := []int64{3, 1, 4, 1, 5, 9, 2, 6}
	offsets, total := ParallelScan(len(values), func(i int) int64 { return values[i] })
	require.Len(t, offsets, len(values))
	var running int64
	for i, v := range values {
		assert.Equal(t, running, offsets[i], "offset mismatch at %d", i)
		running += v
	}
	assert.Equal(t, running, total)
}

func TestParallelScanEmpty(t *testing.T) {
	offsets, total := ParallelScan(0, func(i int) int64 { return 1 })
	assert.Empty(t, offsets)
	assert.Equal(t, int64(0), total)
}

func TestTeamParallelForMatchesParallelFor(t *testing.T) {
	n := 257
	seen := make([]int32, n)
	TeamParallelFor(n, func(i int) {
		seen[i]++
	})
	for i, v := range seen {
		require.Equal(t, int32(1), v, "index %d not visited exactly once", i)
	}
}

func TestAtomics(t *testing.T) {
	var counter32 int32
	var counter64 int64
	ParallelFor(1000, func(i int) {
		AddInt32(&counter32, 1)
		AddInt64(&counter64, 2)
	})
	assert.Equal(t, int32(1000), counter32)
	assert.Equal(t, int64(2000), counter64)

	var max int64
	ParallelFor(1000, func(i int) {
		MaxInt64(&max, int64(i))
	})
	assert.Equal(t, int64(999), max)

	var flag int32 = -1
	ok := CompareAndSwapInt32(&flag, -1, 7)
	assert.True(t, ok)
	assert.Equal(t, int32(7), flag)
	ok = CompareAndSwapInt32(&flag, -1, 9)
	assert.False(t, ok)
}
