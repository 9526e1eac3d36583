package align

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/vibrisca/trace"
)

// ErrShapeMismatch indicates a channel whose length differs from the
// event signal's. Reported before any channel is compacted.
var ErrShapeMismatch = errors.New("align: channel length must match event signal length")

// Align trims every channel to the indices where event is Active, in
// lock-step. The returned map holds one freshly allocated slice per input
// channel; all outputs have length event.CountActive(). An empty retained
// set is a valid outcome and yields zero-length channels.
func Align(event trace.EventSignal, channels map[string][]float64) (map[string][]float64, error) {
	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)

	// Validate every shape first: no partial output on failure.
	for _, name := range names {
		if len(channels[name]) != len(event) {
			return nil, fmt.Errorf("%w: channel %q has %d samples, event signal has %d",
				ErrShapeMismatch, name, len(channels[name]), len(event))
		}
	}

	keep := RetainedIndices(event)
	out := make(map[string][]float64, len(channels))
	for _, name := range names {
		src := channels[name]
		dst := make([]float64, len(keep))
		for k, idx := range keep {
			dst[k] = src[idx]
		}
		out[name] = dst
	}
	return out, nil
}

// RetainedIndices returns the positions where event is Active, ascending.
// This is the shared index set every aligned channel is built from.
func RetainedIndices(event trace.EventSignal) []int {
	keep := make([]int, 0, event.CountActive())
	for i, s := range event {
		if s == trace.Active {
			keep = append(keep, i)
		}
	}
	return keep
}

// Mask returns channel at full length with every non-Active sample
// replaced by NaN. Align is equivalent to Mask followed by dropping the
// NaN positions; Mask is exposed for callers that need to keep the
// original time base.
func Mask(event trace.EventSignal, channel []float64) ([]float64, error) {
	if len(channel) != len(event) {
		return nil, fmt.Errorf("%w: channel has %d samples, event signal has %d",
			ErrShapeMismatch, len(channel), len(event))
	}
	out := make([]float64, len(channel))
	for i, v := range channel {
		if event[i] == trace.Active {
			out[i] = v
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}
