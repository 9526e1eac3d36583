package trigger

import (
	"errors"
	"math"

	"github.com/katalvlaran/vibrisca/trace"
)

// ErrThresholdOrder indicates ValidateThresholds found high ≤ low.
// The detector never swaps thresholds silently; the caller fixes them.
var ErrThresholdOrder = errors.New("trigger: high threshold must exceed low threshold")

// ValidateThresholds checks the detector's documented precondition.
// Use it before Detect; Detect itself does not fail.
func ValidateThresholds(high, low float64) error {
	// NaN thresholds fail the comparison and are rejected with the rest.
	if !(high > low) {
		return ErrThresholdOrder
	}
	return nil
}

// Detect classifies each intensity sample against the hysteresis band:
//
//	v > high  → Active
//	v ≤ low   → Inactive
//	otherwise → Undetermined (the value high itself lands here)
//
// NaN samples are skipped, leaving the zero-initialized Inactive state.
// The output always has the same length as the input.
func Detect(intensity []float64, high, low float64) trace.EventSignal {
	sig := make(trace.EventSignal, len(intensity))
	for i, v := range intensity {
		switch {
		case math.IsNaN(v):
			// unmeasured frame: stays Inactive
		case v > high:
			sig[i] = trace.Active
		case v <= low:
			// stays Inactive
		default:
			sig[i] = trace.Undetermined
		}
	}
	return sig
}
