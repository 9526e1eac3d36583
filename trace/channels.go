package trace

// Canonical channel names. The set is fixed and statically declared;
// channel identifiers are never assembled at runtime.
const (
	// ChannelTrigger is the intensity trace of the external synchronization
	// signal, consumed by the hysteresis detector.
	ChannelTrigger = "trigger"
	// ChannelPupil is the per-frame pupil size measurement.
	ChannelPupil = "pupil"
	// ChannelWhiskerPad is the whisker-pad motion energy measurement.
	ChannelWhiskerPad = "whisker_pad"
	// ChannelWhiskerLong is the long-whisker motion energy measurement.
	ChannelWhiskerLong = "whisker_long"
	// ChannelAccelX is the accelerometer X axis.
	ChannelAccelX = "accel_x"
	// ChannelAccelY is the accelerometer Y axis.
	ChannelAccelY = "accel_y"
	// ChannelAccelZ is the accelerometer Z axis.
	ChannelAccelZ = "accel_z"
)

// DefaultChannels returns the canonical channel list in declaration order.
// The slice is freshly allocated on each call so callers may reorder or
// trim it freely.
func DefaultChannels() []string {
	return []string{
		ChannelTrigger,
		ChannelPupil,
		ChannelWhiskerPad,
		ChannelWhiskerLong,
		ChannelAccelX,
		ChannelAccelY,
		ChannelAccelZ,
	}
}

// ChannelSet maps channel names to their sample traces. All traces in a
// set cover the same frame range; after alignment they additionally share
// one length.
type ChannelSet map[string]Trace

// NewChannelSet builds a ChannelSet with one zero-filled Trace of n samples
// per name. With no names it initializes the full canonical channel list.
func NewChannelSet(n int, names ...string) ChannelSet {
	if len(names) == 0 {
		names = DefaultChannels()
	}
	cs := make(ChannelSet, len(names))
	for _, name := range names {
		cs[name] = make(Trace, n)
	}
	return cs
}

// Clone returns a deep copy of cs: new map, new traces.
func (cs ChannelSet) Clone() ChannelSet {
	if cs == nil {
		return nil
	}
	out := make(ChannelSet, len(cs))
	for name, tr := range cs {
		out[name] = tr.Clone()
	}
	return out
}
