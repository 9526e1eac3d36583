// Package align reduces multiple time-aligned channels to the common
// subset of samples where a trigger event was active, preserving
// cross-channel correspondence by position.
//
// What:
//
//   - Align takes one event signal and any number of equal-length raw
//     channels, retains exactly the Active indices for every channel in
//     lock-step, and returns the compacted channel set. All outputs share
//     one retained-index set and therefore one length: the number of
//     Active entries in the signal.
//   - Mask exposes the intermediate form: the channel with every
//     non-Active sample replaced by NaN, at full length.
//
// Why:
//
//   - Inactive and Undetermined samples carry no usable measurement for a
//     synchronized dataset; compacting them away in lock-step keeps index
//     i of every output channel referring to the same frame.
//
// Errors:
//
//   - ErrShapeMismatch — a channel's length differs from the event
//     signal's. All channels are checked before any compaction, so a
//     failed call observes no partial output.
//
// Edge cases:
//
//   - An all-inactive signal yields zero-length channels, not an error;
//     callers must treat an empty aligned set as a valid degenerate
//     outcome.
//
// Complexity: O(C·N) time for C channels of N samples. Pure and
// deterministic; channel names are visited in sorted order so error
// selection never depends on map iteration order.
package align
