// Package trigger detects when an external synchronization signal was
// asserted, using hysteresis thresholding over a noisy per-frame
// intensity trace.
//
// What:
//
//   - Detect classifies every sample of an intensity trace into a ternary
//     event signal: Active (intensity strictly above the high threshold),
//     Inactive (at or below the low threshold), or Undetermined (inside
//     the band, the high threshold itself included).
//   - The ternary policy is deliberate: inside the band the detector
//     refuses to guess rather than rounding, and callers decide how to
//     treat Undetermined samples (commonly: discard via align).
//   - Samples whose intensity could not be measured (NaN) are left at
//     their zero-initialized Inactive state — "no event", not missing data.
//
// Precondition:
//
//   - high must strictly exceed low. Detect does not validate or swap the
//     thresholds; call ValidateThresholds first. With high ≤ low the band
//     is empty or inverted and the classification is meaningless.
//
// Errors:
//
//   - ErrThresholdOrder — ValidateThresholds found high ≤ low.
//
// Complexity: O(N) time, O(N) memory for the output signal. Pure and
// deterministic; safe to call from any goroutine.
package trigger
