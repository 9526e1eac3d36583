// Package normalize rescales a numeric array onto a target range while
// preserving special values and handling degenerate spans.
//
// What:
//
//   - Normalize applies the affine map (x−min)/(max−min)·(hi−lo)+lo,
//     where [lo,hi] is the output range (default [0,1]) and [min,max] is
//     either supplied via InputLimits — with out-of-range values pinned
//     to the nearest bound — or derived from the finite data values.
//   - Special values override the affine result position-wise: ±Inf pass
//     through unscaled, NaN stays NaN.
//   - A degenerate span (width below a small tolerance) fills with the
//     midpoint of the output range — never a near-zero division.
//   - Empty input returns unchanged. These degenerate policies are
//     contracts, not errors.
//
// Errors:
//
//   - ErrBadRange — OutputRange or InputLimits is not exactly two finite
//     numbers, or InputLimits is inverted. Validation happens before any
//     computation; a failed call observes no partial result.
//
// Properties:
//
//   - Round trip: for non-degenerate x, normalizing to [0,1] and back to
//     [min(x),max(x)] reconstructs x within floating-point tolerance.
//   - Deterministic: identical inputs give bit-identical outputs.
//
// Complexity: O(N) time, O(N) memory.
package normalize
