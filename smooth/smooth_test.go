package smooth_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vibrisca/smooth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

const tol = 1e-8 // FFT round-trip tolerance

// TestSmooth_BadSigma verifies σ ≤ 0 and NaN fail with
// ErrNonPositiveSigma before any computation.
func TestSmooth_BadSigma(t *testing.T) {
	for _, sigma := range []float64{0, -0.1, math.NaN()} {
		out, err := smooth.Smooth([]float64{1, 2, 3}, sigma)
		assert.ErrorIs(t, err, smooth.ErrNonPositiveSigma, "sigma=%v", sigma)
		assert.Nil(t, out)
	}
}

// TestSmooth_LengthPreserved verifies identical output length, empty
// input included.
func TestSmooth_LengthPreserved(t *testing.T) {
	out, err := smooth.Smooth(make([]float64, 33), 0.05)
	require.NoError(t, err)
	assert.Len(t, out, 33)

	out, err = smooth.Smooth([]float64{}, 0.05)
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestSmooth_SingleSample verifies the degenerate one-sample sequence
// passes through unchanged.
func TestSmooth_SingleSample(t *testing.T) {
	out, err := smooth.Smooth([]float64{42}, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 42, out[0], tol)
}

// TestSmooth_ConstantInvariant verifies a constant signal is a fixed
// point: the kernel has unit sum, so smoothing changes nothing.
func TestSmooth_ConstantInvariant(t *testing.T) {
	in := make([]float64, 64)
	for i := range in {
		in[i] = 7.25
	}

	out, err := smooth.Smooth(in, 0.03)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(in, out, tol),
		"constant signal must survive smoothing unchanged")
}

// TestSmooth_Linearity verifies Smooth(k·x, σ) == k·Smooth(x, σ).
func TestSmooth_Linearity(t *testing.T) {
	in := []float64{1, 4, 2, 8, 5, 7, 1, 9, 3, 6, 2, 4}
	const k = -3.5

	base, err := smooth.Smooth(in, 0.08)
	require.NoError(t, err)

	scaled := make([]float64, len(in))
	for i, v := range in {
		scaled[i] = k * v
	}
	got, err := smooth.Smooth(scaled, 0.08)
	require.NoError(t, err)

	want := make([]float64, len(base))
	for i, v := range base {
		want[i] = k * v
	}
	assert.True(t, floats.EqualApprox(want, got, tol))
}

// TestSmooth_MeanPreserved verifies the unit-sum kernel preserves the
// signal mean (the DC coefficient is untouched).
func TestSmooth_MeanPreserved(t *testing.T) {
	in := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}

	out, err := smooth.Smooth(in, 0.07)
	require.NoError(t, err)
	assert.InDelta(t, floats.Sum(in), floats.Sum(out), tol)
}

// TestSmooth_ImpulseCentered verifies the phase-shift compensation: the
// smoothed impulse peaks at the impulse position and falls off
// symmetrically around it (circularly).
func TestSmooth_ImpulseCentered(t *testing.T) {
	const n = 21
	in := make([]float64, n)
	in[0] = 1

	out, err := smooth.Smooth(in, 0.04)
	require.NoError(t, err)

	peak := 0
	for i, v := range out {
		if v > out[peak] {
			peak = i
		}
	}
	assert.Equal(t, 0, peak, "response must peak at the impulse position")
	for d := 1; d <= n/2; d++ {
		assert.InDelta(t, out[d], out[n-d], tol,
			"response must be circularly symmetric at offset %d", d)
	}
}

// TestSmooth_WiderSigmaFlattens verifies a larger σ attenuates the peak
// of an impulse response more strongly.
func TestSmooth_WiderSigmaFlattens(t *testing.T) {
	const n = 64
	in := make([]float64, n)
	in[n/2] = 1

	narrow, err := smooth.Smooth(in, 0.01)
	require.NoError(t, err)
	wide, err := smooth.Smooth(in, 0.1)
	require.NoError(t, err)

	assert.Greater(t, narrow[n/2], wide[n/2])
}

// TestSmooth_Deterministic verifies bit-identical reruns.
func TestSmooth_Deterministic(t *testing.T) {
	in := []float64{1, 4, 2, 8, 5, 7, 1, 9, 3}

	first, err := smooth.Smooth(in, 0.05)
	require.NoError(t, err)
	second, err := smooth.Smooth(in, 0.05)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestSmooth_InputUntouched verifies the input slice is never mutated.
func TestSmooth_InputUntouched(t *testing.T) {
	in := []float64{1, 2, 3, 4}
	orig := append([]float64(nil), in...)

	_, err := smooth.Smooth(in, 0.05)
	require.NoError(t, err)
	assert.Equal(t, orig, in)
}
