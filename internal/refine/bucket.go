package refine

// gainBucket maps a gain/weight ratio onto [0, maxBuckets): bucket 0 for
// any positive gain, bucket 1 for exactly zero, and for negative gains a
// bucket spaced logarithmically (base 1.5) around midBucket so that small
// losses and large losses land in different buckets without needing one
// bucket per distinct loss magnitude. Callers must never pass vwgt == 0;
// coarsening never produces a zero-weight vertex, so the ratio is always
// well-defined.
func gainBucket(g int64, vwgt int64) int32 {
	gain := float64(g) / float64(vwgt)
	switch {
	case gain > 0.0:
		return 0
	case gain == 0.0:
		return 1
	}
	bucket := int32(midBucket)
	gain = -gain
	if gain < 1.0 {
		for gain < 1.0 {
			gain *= 1.5
			bucket--
		}
		if bucket < 2 {
			bucket = 2
		}
	} else {
		for gain > 1.0 {
			gain /= 1.5
			bucket++
		}
		if bucket >= maxBuckets {
			bucket = maxBuckets - 1
		}
	}
	return bucket
}
