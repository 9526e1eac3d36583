package trace

// Trace is an ordered sequence of real-valued samples indexed by frame
// position. A Trace is owned by the stage that produced it; consumers
// treat it as read-only.
type Trace []float64

// Clone returns an independent copy of t. A nil Trace clones to nil.
func (t Trace) Clone() Trace {
	if t == nil {
		return nil
	}
	out := make(Trace, len(t))
	copy(out, t)
	return out
}

// EventState is the ternary outcome of hysteresis trigger detection for a
// single frame. The zero value is Inactive: frames whose intensity could
// not be measured stay at their initialized state and read as "no event".
type EventState int8

const (
	// Inactive means the synchronization pulse was not asserted (intensity
	// at or below the low threshold), or the frame could not be measured.
	Inactive EventState = iota
	// Active means the synchronization pulse was asserted (intensity
	// strictly above the high threshold).
	Active
	// Undetermined means the intensity fell inside the hysteresis band;
	// the detector refuses to guess and callers decide (commonly: discard).
	Undetermined
)

// String implements fmt.Stringer for diagnostics and test output.
func (s EventState) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	case Undetermined:
		return "undetermined"
	default:
		return "invalid"
	}
}

// EventSignal is a per-frame sequence of EventStates, produced once by the
// trigger detector and consumed read-only by the aligner.
type EventSignal []EventState

// CountActive returns the number of Active entries in s. This is exactly
// the length every channel will have after trigger-masked alignment.
func (s EventSignal) CountActive() int {
	n := 0
	for _, st := range s {
		if st == Active {
			n++
		}
	}
	return n
}
