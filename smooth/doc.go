// Package smooth applies Gaussian smoothing to a 1-D signal in the
// frequency domain.
//
// What:
//
//   - Smooth builds a symmetric Gaussian kernel in the sample domain,
//     centered at the midpoint of the sequence, with shape
//     exp(-0.5·((i−c)/(n·σ))²), normalizes it to unit sum, multiplies the
//     signal's Fourier coefficients by the kernel's, and transforms back.
//     The kernel's midpoint centering introduces a linear phase — a
//     circular shift of n/2 — which is undone before returning.
//   - Only the real component is returned: the round trip introduces
//     negligible imaginary residue from floating-point rounding, which is
//     discarded, not reported.
//
// Why frequency domain:
//
//   - The kernel width is a fraction of the whole sequence length, so at
//     large σ a direct sliding-window convolution touches most of the
//     sequence per sample. The transform keeps the cost at O(N log N)
//     regardless of σ.
//
// Errors:
//
//   - ErrNonPositiveSigma — σ ≤ 0 (NaN included).
//
// Properties:
//
//   - Output length equals input length.
//   - Linearity: Smooth(k·x, σ) == k·Smooth(x, σ) for any scalar k.
//   - Deterministic: identical inputs give bit-identical outputs.
//
// Complexity: O(N log N) time, O(N) memory.
package smooth
