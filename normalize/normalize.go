// SPDX-License-Identifier: MIT
// Package: vibrisca/normalize
//
// normalize.go — range normalization with special-value preservation.

package normalize

import (
	"fmt"
	"math"
)

// spanTol is the relative tolerance below which an input span counts as
// degenerate and the output fills with the range midpoint.
const spanTol = 1e-12

// Options configures one normalization call.
type Options struct {
	// OutputRange is the target [lo, hi]. Nil means [0, 1]. A reversed
	// range (hi < lo) is allowed and inverts the mapping.
	OutputRange []float64
	// InputLimits optionally fixes the source [min, max]. Values outside
	// are pinned to the nearest bound before scaling. Nil derives the
	// limits from the finite data values.
	InputLimits []float64
}

// DefaultOptions returns the default configuration: output range [0, 1],
// input limits derived from the data.
func DefaultOptions() Options {
	return Options{}
}

// Normalize rescales data onto opts.OutputRange. The input is never
// mutated; the result is a fresh slice of identical length. Empty input
// short-circuits to an empty result. ±Inf inputs pass through unscaled
// and NaN inputs stay NaN, both overriding the affine result at their
// positions.
func Normalize(data []float64, opts Options) ([]float64, error) {
	lo, hi, err := resolveRange("OutputRange", opts.OutputRange, 0, 1, true)
	if err != nil {
		return nil, err
	}
	// Validate limits even when the data is empty: a malformed argument
	// is an error regardless of input size.
	var minV, maxV float64
	haveLimits := opts.InputLimits != nil
	if haveLimits {
		minV, maxV, err = resolveRange("InputLimits", opts.InputLimits, 0, 0, false)
		if err != nil {
			return nil, err
		}
	}

	if len(data) == 0 {
		return []float64{}, nil
	}
	if !haveLimits {
		minV, maxV = finiteBounds(data)
	}

	out := make([]float64, len(data))
	span := maxV - minV
	scale := hi - lo
	mid := lo + scale/2
	degenerate := !(span > spanTol*maxAbs1(minV, maxV))

	for i, v := range data {
		switch {
		case math.IsNaN(v):
			out[i] = v
		case math.IsInf(v, 0):
			out[i] = v
		case degenerate:
			out[i] = mid
		default:
			if haveLimits {
				v = clamp(v, minV, maxV)
			}
			out[i] = (v-minV)/span*scale + lo
		}
	}
	return out, nil
}

// resolveRange validates a two-value range argument. A nil slice resolves
// to the provided defaults; anything other than exactly two finite values
// fails with ErrBadRange, as does an inverted range when order is
// required (allowReversed=false).
func resolveRange(name string, r []float64, defLo, defHi float64, allowReversed bool) (float64, float64, error) {
	if r == nil {
		return defLo, defHi, nil
	}
	if len(r) != 2 {
		return 0, 0, fmt.Errorf("%w: %s has %d values", ErrBadRange, name, len(r))
	}
	if !isFinite(r[0]) || !isFinite(r[1]) {
		return 0, 0, fmt.Errorf("%w: %s contains a non-finite value", ErrBadRange, name)
	}
	if !allowReversed && r[0] > r[1] {
		return 0, 0, fmt.Errorf("%w: %s min exceeds max", ErrBadRange, name)
	}
	return r[0], r[1], nil
}

// finiteBounds scans the finite values of data for min and max. With no
// finite values both bounds are zero, which the degenerate-span policy
// then handles.
func finiteBounds(data []float64) (minV, maxV float64) {
	first := true
	for _, v := range data {
		if !isFinite(v) {
			continue
		}
		if first {
			minV, maxV = v, v
			first = false
			continue
		}
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return minV, maxV
}

// clamp pins v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// maxAbs1 returns max(1, |a|, |b|), the scale for the relative span check.
func maxAbs1(a, b float64) float64 {
	m := 1.0
	if ab := math.Abs(a); ab > m {
		m = ab
	}
	if bb := math.Abs(b); bb > m {
		m = bb
	}
	return m
}
