package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGainBucketPositiveIsZero(t *testing.T) {
	assert.Equal(t, int32(0), gainBucket(5, 1))
	assert.Equal(t, int32(0), gainBucket(1, 100))
}

func TestGainBucketZeroIsOne(t *testing.T) {
	assert.Equal(t, int32(1), gainBucket(0, 1))
}

func TestGainBucketNegativeOrdering(t *testing.T) {
	// A larger loss (relative to vertex weight) should land in a bucket
	// no smaller than a smaller loss's bucket — the log-scaled buckets
	// must be monotonic in magnitude of loss.
	small := gainBucket(-1, 100)
	medium := gainBucket(-10, 100)
	large := gainBucket(-1000, 100)
	assert.GreaterOrEqual(t, medium, small)
	assert.GreaterOrEqual(t, large, medium)
	assert.GreaterOrEqual(t, large, int32(2))
	assert.Less(t, large, int32(maxBuckets))
}

func TestGainBucketClampsToRange(t *testing.T) {
	huge := gainBucket(-1_000_000_000, 1)
	assert.Equal(t, int32(maxBuckets-1), huge)
	tiny := gainBucket(-1, 1_000_000_000)
	assert.GreaterOrEqual(t, tiny, int32(2))
}
