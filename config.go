package jet

import "fmt"

// CoarseningAlg selects the coarsening heuristic the multilevel driver
// uses. The refiner itself is agnostic to how levels were produced; this
// option exists for the pipeline, not the refiner (spec.md §6).
type CoarseningAlg int32

const (
	// CoarsenMtMetis names MtMetis-style coarsening. The multilevel driver
	// runs the heavy-edge matcher for it, the same as for CoarsenHEC.
	CoarsenMtMetis CoarseningAlg = 0
	// CoarsenHEC selects heavy-edge-matching coarsening, v1.
	CoarsenHEC CoarseningAlg = 1
	// CoarsenMatching names plain (unweighted) matching. The multilevel
	// driver runs the heavy-edge matcher for it, the same as for CoarsenHEC.
	CoarsenMatching CoarseningAlg = 2
)

// Tolerance presets named in spec.md §6: acceptance tolerance controlling
// when the refiner's phase-counter resets on a cut improvement.
const (
	ToleranceFOUR9 = 0.9999
	ToleranceTWO9  = 0.99
)

// Config holds every option recognized by the partitioner (spec.md §6's
// "Configuration (recognized options, closed set)").
type Config struct {
	// CoarseningAlg selects the coarsening heuristic (0, 1, or 2).
	CoarseningAlg CoarseningAlg

	// NumParts is k, the number of parts. Must be >= 2.
	NumParts int32

	// NumIter is the number of independent outer trials; the best-cut
	// trial wins.
	NumIter int

	// MaxImbRatio is imb_ratio >= 1.0, e.g. 1.03 for 3% imbalance.
	MaxImbRatio float64

	// RefineTolerance is the acceptance tolerance for counter-reset.
	RefineTolerance float64

	// UltraSettings switches the temperature schedule to the extended
	// sweep (spec.md §4.7).
	UltraSettings bool

	// DumpCoarse records a request to dump the coarse sequence for
	// controlled-input experiments. Nothing in this module reads it; a
	// sequence is dumped only by calling WriteCoarseSequence directly.
	DumpCoarse bool

	// Verbose records a request for per-level statistics. The multilevel
	// driver and the refiner do not read it and print nothing.
	Verbose bool
}

// DefaultConfig returns the configuration spec.md's defaults describe:
// HEC coarsening, 2 parts, a single trial, 3% imbalance tolerance, and
// the FOUR9 refine tolerance.
func DefaultConfig() Config {
	return Config{
		CoarseningAlg:   CoarsenHEC,
		NumParts:        2,
		NumIter:         1,
		MaxImbRatio:     1.03,
		RefineTolerance: ToleranceFOUR9,
		UltraSettings:   false,
		DumpCoarse:      false,
		Verbose:         false,
	}
}

// Validate checks Config fields against the closed set of valid values
// spec.md §6 and §7 describe (configuration errors are fatal, reported
// before any refinement begins).
func (c Config) Validate() error {
	if c.CoarseningAlg < CoarsenMtMetis || c.CoarseningAlg > CoarsenMatching {
		return fmt.Errorf("%w: coarsening_alg %d is not in {0,1,2}", ErrInvalidConfig, c.CoarseningAlg)
	}
	if c.NumParts < 2 {
		return fmt.Errorf("%w: num_parts must be >= 2, got %d", ErrInvalidConfig, c.NumParts)
	}
	if c.NumIter < 1 {
		return fmt.Errorf("%w: num_iter must be >= 1, got %d", ErrInvalidConfig, c.NumIter)
	}
	if c.MaxImbRatio < 1.0 {
		return fmt.Errorf("%w: max_imb_ratio must be >= 1.0, got %f", ErrInvalidConfig, c.MaxImbRatio)
	}
	if c.RefineTolerance <= 0 || c.RefineTolerance > 1.0 {
		return fmt.Errorf("%w: refine_tolerance must be in (0,1], got %f", ErrInvalidConfig, c.RefineTolerance)
	}
	return nil
}
