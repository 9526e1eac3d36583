package pipeline

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/vibrisca/align"
	"github.com/katalvlaran/vibrisca/natsort"
	"github.com/katalvlaran/vibrisca/normalize"
	"github.com/katalvlaran/vibrisca/smooth"
	"github.com/katalvlaran/vibrisca/trace"
	"github.com/katalvlaran/vibrisca/trigger"
)

// ErrNoTriggerChannel indicates the input ChannelSet lacks the trigger
// intensity channel the event detection runs on.
var ErrNoTriggerChannel = errors.New("pipeline: channel set lacks the trigger channel")

// Options configures a Conditioner.
type Options struct {
	// High and Low are the hysteresis thresholds applied to the trigger
	// intensity channel. High must strictly exceed Low.
	High, Low float64
	// Sigma is the Gaussian kernel width as a fraction of the trace
	// length. Must be positive.
	Sigma float64
	// OutputRange is the normalization target per channel. Nil means [0,1].
	OutputRange []float64
	// SkipSmoothing lists channels conditioned without the smoothing step,
	// for measurements where temporal detail must survive (e.g. raw
	// accelerometer spikes).
	SkipSmoothing []string
}

// DefaultOptions returns the stock configuration: an 8-bit LED hysteresis
// band of 245/254 and a 1% kernel width.
func DefaultOptions() Options {
	return Options{High: 254, Low: 245, Sigma: 0.01}
}

// Conditioner runs the conditioning pass with a fixed, validated
// configuration. A Conditioner is immutable after New and safe for
// concurrent use.
type Conditioner struct {
	opts Options
	skip map[string]bool
}

// New validates opts and builds a Conditioner. Failures are the
// underlying sentinels: trigger.ErrThresholdOrder,
// smooth.ErrNonPositiveSigma, or normalize.ErrBadRange.
func New(opts Options) (*Conditioner, error) {
	if err := trigger.ValidateThresholds(opts.High, opts.Low); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	if !(opts.Sigma > 0) {
		return nil, fmt.Errorf("pipeline: %w", smooth.ErrNonPositiveSigma)
	}
	// A dry run over empty data validates the range argument up front.
	if _, err := normalize.Normalize(nil, normalize.Options{OutputRange: opts.OutputRange}); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	skip := make(map[string]bool, len(opts.SkipSmoothing))
	for _, name := range opts.SkipSmoothing {
		skip[name] = true
	}
	return &Conditioner{opts: opts, skip: skip}, nil
}

// Run conditions channels into the synchronized dataset. The trigger
// channel drives event detection and is not part of the output; every
// other channel is normalized, smoothed (unless skipped), and trimmed to
// the trigger-active frames in lock-step.
func (c *Conditioner) Run(channels trace.ChannelSet) (trace.ChannelSet, error) {
	raw, ok := channels[trace.ChannelTrigger]
	if !ok {
		return nil, ErrNoTriggerChannel
	}
	event := trigger.Detect(raw, c.opts.High, c.opts.Low)

	names := make([]string, 0, len(channels))
	for name := range channels {
		if name != trace.ChannelTrigger {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	conditioned := make(map[string][]float64, len(names))
	for _, name := range names {
		ch, err := normalize.Normalize(channels[name],
			normalize.Options{OutputRange: c.opts.OutputRange})
		if err != nil {
			return nil, fmt.Errorf("pipeline: normalize %q: %w", name, err)
		}
		if !c.skip[name] {
			ch, err = smooth.Smooth(ch, c.opts.Sigma)
			if err != nil {
				return nil, fmt.Errorf("pipeline: smooth %q: %w", name, err)
			}
		}
		conditioned[name] = ch
	}

	aligned, err := align.Align(event, conditioned)
	if err != nil {
		return nil, fmt.Errorf("pipeline: align: %w", err)
	}

	out := make(trace.ChannelSet, len(aligned))
	for name, ch := range aligned {
		out[name] = trace.Trace(ch)
	}
	return out, nil
}

// Event exposes the detector stage alone: the event signal Run would
// align against, for callers that keep the full time base.
func (c *Conditioner) Event(channels trace.ChannelSet) (trace.EventSignal, error) {
	raw, ok := channels[trace.ChannelTrigger]
	if !ok {
		return nil, ErrNoTriggerChannel
	}
	return trigger.Detect(raw, c.opts.High, c.opts.Low), nil
}

// OrderFrames establishes the canonical frame order for a raw directory
// listing: natural order with "." and ".." dropped. The permutation maps
// output positions to original listing positions.
func OrderFrames(names []string) ([]string, []int, error) {
	return natsort.Sort(names, natsort.RemoveDotEntries())
}
