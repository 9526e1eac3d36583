package trace_test

import (
	"testing"

	"github.com/katalvlaran/vibrisca/trace"
	"github.com/stretchr/testify/assert"
)

// TestEventState_ZeroValue pins the invariant the whole module relies on:
// an uninitialized EventState means Inactive ("no event"), never missing data.
func TestEventState_ZeroValue(t *testing.T) {
	var s trace.EventState
	assert.Equal(t, trace.Inactive, s, "zero value must be Inactive")

	sig := make(trace.EventSignal, 4)
	assert.Equal(t, 0, sig.CountActive(), "fresh signal has no active entries")
}

// TestEventState_String covers the Stringer for all states plus an
// out-of-range value.
func TestEventState_String(t *testing.T) {
	cases := []struct {
		state trace.EventState
		want  string
	}{
		{trace.Inactive, "inactive"},
		{trace.Active, "active"},
		{trace.Undetermined, "undetermined"},
		{trace.EventState(42), "invalid"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.state.String())
	}
}

// TestEventSignal_CountActive checks the count on a mixed signal.
func TestEventSignal_CountActive(t *testing.T) {
	sig := trace.EventSignal{
		trace.Active, trace.Inactive, trace.Undetermined, trace.Active,
	}
	assert.Equal(t, 2, sig.CountActive())
}

// TestTrace_Clone ensures clones are independent and nil stays nil.
func TestTrace_Clone(t *testing.T) {
	orig := trace.Trace{1, 2, 3}
	cp := orig.Clone()
	cp[0] = 99
	assert.Equal(t, 1.0, orig[0], "mutating the clone must not touch the original")

	var nilTr trace.Trace
	assert.Nil(t, nilTr.Clone())
}

// TestNewChannelSet_Defaults verifies the canonical registry initializes
// every declared channel with a zero-filled trace of the requested length.
func TestNewChannelSet_Defaults(t *testing.T) {
	cs := trace.NewChannelSet(5)
	assert.Len(t, cs, len(trace.DefaultChannels()))
	for _, name := range trace.DefaultChannels() {
		tr, ok := cs[name]
		assert.True(t, ok, "channel %q must be present", name)
		assert.Len(t, tr, 5)
	}
}

// TestNewChannelSet_Subset verifies explicit names override the registry.
func TestNewChannelSet_Subset(t *testing.T) {
	cs := trace.NewChannelSet(3, trace.ChannelPupil, trace.ChannelAccelZ)
	assert.Len(t, cs, 2)
	assert.Contains(t, cs, trace.ChannelPupil)
	assert.Contains(t, cs, trace.ChannelAccelZ)
}

// TestChannelSet_Clone ensures deep copies: new map and new traces.
func TestChannelSet_Clone(t *testing.T) {
	cs := trace.ChannelSet{trace.ChannelPupil: trace.Trace{1, 2}}
	cp := cs.Clone()
	cp[trace.ChannelPupil][0] = 7
	assert.Equal(t, 1.0, cs[trace.ChannelPupil][0])
}
