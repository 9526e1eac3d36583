// Package pipeline chains the conditioning primitives into the canonical
// end-to-end pass: order frames, normalize and smooth every behavioral
// channel, detect the trigger, and align everything to it.
//
// What:
//
//   - OrderFrames establishes the canonical frame order from a raw file
//     listing (natural order, dot entries dropped) before any per-frame
//     measurement extraction happens.
//   - Conditioner.Run takes a ChannelSet of raw per-frame measurements —
//     one of which must be the trigger intensity — and produces the
//     synchronized dataset: every behavioral channel range-normalized,
//     Gaussian-smoothed, and trimmed to the frames where the trigger was
//     active. Normalization runs before smoothing so resulting units stay
//     comparable across channels.
//
// Boundaries:
//
//   - Measurement extraction (regions of interest, image decoding) and
//     downstream plotting/export are external collaborators; this package
//     consumes pre-extracted scalar-per-frame traces and hands back plain
//     ChannelSets.
//
// Errors:
//
//   - ErrNoTriggerChannel — the input set lacks the trigger channel.
//   - New and Run otherwise surface the underlying packages' sentinels
//     (trigger.ErrThresholdOrder, smooth.ErrNonPositiveSigma,
//     normalize.ErrBadRange, align.ErrShapeMismatch), wrapped with the
//     failing stage and channel. Match with errors.Is.
//
// Determinism: channels are processed in sorted name order; identical
// inputs produce bit-identical outputs.
package pipeline
