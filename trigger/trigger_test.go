package trigger_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vibrisca/trace"
	"github.com/katalvlaran/vibrisca/trigger"
	"github.com/stretchr/testify/assert"
)

// TestDetect_Canonical pins the reference classification: with
// high=254, low=245, the trace [260, 250, 240, 255] yields
// [Active, Undetermined, Inactive, Active].
func TestDetect_Canonical(t *testing.T) {
	sig := trigger.Detect([]float64{260, 250, 240, 255}, 254, 245)

	want := trace.EventSignal{
		trace.Active, trace.Undetermined, trace.Inactive, trace.Active,
	}
	assert.Equal(t, want, sig)
}

// TestDetect_BandBoundaries pins the exact boundary policy: a value equal
// to low is Inactive; a value equal to high is Undetermined, not Active.
// Downstream behavior depends on this; do not "fix" it.
func TestDetect_BandBoundaries(t *testing.T) {
	high, low := 254.0, 245.0
	sig := trigger.Detect([]float64{low, high}, high, low)

	assert.Equal(t, trace.Inactive, sig[0], "v == low must be Inactive")
	assert.Equal(t, trace.Undetermined, sig[1], "v == high must be Undetermined")
}

// TestDetect_NaNStaysInactive verifies unmeasured frames keep the
// zero-initialized state and read as "no event".
func TestDetect_NaNStaysInactive(t *testing.T) {
	sig := trigger.Detect([]float64{math.NaN(), 260, math.NaN()}, 254, 245)

	assert.Equal(t, trace.Inactive, sig[0])
	assert.Equal(t, trace.Active, sig[1])
	assert.Equal(t, trace.Inactive, sig[2])
}

// TestDetect_LengthPreserved verifies output length matches input length,
// including the empty trace.
func TestDetect_LengthPreserved(t *testing.T) {
	assert.Len(t, trigger.Detect(make([]float64, 17), 254, 245), 17)
	assert.Len(t, trigger.Detect(nil, 254, 245), 0)
}

// TestDetect_Infinities verifies ±Inf intensities classify like any other
// magnitude: +Inf is above any finite high, -Inf below any finite low.
func TestDetect_Infinities(t *testing.T) {
	sig := trigger.Detect([]float64{math.Inf(1), math.Inf(-1)}, 254, 245)

	assert.Equal(t, trace.Active, sig[0])
	assert.Equal(t, trace.Inactive, sig[1])
}

// TestValidateThresholds covers the precondition check, including NaN.
func TestValidateThresholds(t *testing.T) {
	cases := []struct {
		name      string
		high, low float64
		wantErr   bool
	}{
		{"Valid", 254, 245, false},
		{"Equal", 245, 245, true},
		{"Inverted", 245, 254, true},
		{"NaNHigh", math.NaN(), 245, true},
		{"NaNLow", 254, math.NaN(), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := trigger.ValidateThresholds(tc.high, tc.low)
			if tc.wantErr {
				assert.ErrorIs(t, err, trigger.ErrThresholdOrder)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestDetect_Deterministic verifies bit-identical reruns on the same input.
func TestDetect_Deterministic(t *testing.T) {
	in := []float64{260, 250, 240, 255, math.NaN(), 246}

	first := trigger.Detect(in, 254, 245)
	second := trigger.Detect(in, 254, 245)
	assert.Equal(t, first, second)
}
