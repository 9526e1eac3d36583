package smooth

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// ErrNonPositiveSigma indicates a kernel width σ ≤ 0 (or NaN).
var ErrNonPositiveSigma = errors.New("smooth: sigma must be positive")

// Smooth returns signal convolved with a unit-sum Gaussian kernel of
// relative width sigma (a fraction of the sequence length), computed in
// the frequency domain. The output has the same length as the input.
// σ ≤ 0 fails with ErrNonPositiveSigma; an empty signal smooths to an
// empty signal.
func Smooth(signal []float64, sigma float64) ([]float64, error) {
	// The negated comparison also rejects NaN.
	if !(sigma > 0) {
		return nil, ErrNonPositiveSigma
	}
	n := len(signal)
	if n == 0 {
		return []float64{}, nil
	}

	kernel := gaussianKernel(n, sigma)

	fft := fourier.NewCmplxFFT(n)
	sc := make([]complex128, n)
	kc := make([]complex128, n)
	for i := 0; i < n; i++ {
		sc[i] = complex(signal[i], 0)
		kc[i] = complex(kernel[i], 0)
	}
	sc = fft.Coefficients(nil, sc)
	kc = fft.Coefficients(nil, kc)
	for i := range sc {
		sc[i] *= kc[i]
	}
	sc = fft.Sequence(nil, sc)

	// The inverse is unnormalized (scale by n), and the midpoint-centered
	// kernel rotated the result by c samples; undo both, keeping only the
	// real component.
	c := n / 2
	inv := 1 / float64(n)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = real(sc[(i+c)%n]) * inv
	}
	return out, nil
}

// gaussianKernel builds the unit-sum sample-domain kernel
// k[i] = exp(-0.5·((i−c)/(n·σ))²) / Σk with c = n/2.
func gaussianKernel(n int, sigma float64) []float64 {
	c := n / 2
	den := float64(n) * sigma
	kernel := make([]float64, n)
	for i := range kernel {
		off := float64(i-c) / den
		kernel[i] = math.Exp(-0.5 * off * off)
	}
	floats.Scale(1/floats.Sum(kernel), kernel)
	return kernel
}
