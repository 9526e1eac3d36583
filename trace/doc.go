// Package trace defines the shared data model for behavioral-signal
// conditioning: per-frame sample traces, ternary event signals, and the
// fixed registry of recording channels.
//
// What:
//
//   - Trace is an ordered sequence of real-valued samples indexed by frame
//     position, one per channel.
//   - EventState/EventSignal encode the ternary outcome of trigger
//     detection: Inactive, Active, or Undetermined. The zero value is
//     Inactive, so unmeasured frames read as "no event" without a sentinel.
//   - ChannelSet maps channel names to equal-purpose Traces. The channel
//     names are a fixed, statically declared set — never constructed at
//     runtime.
//
// Why:
//
//   - Every package in this module consumes or produces these types; keeping
//     them in one dependency-free package avoids import cycles and keeps the
//     algorithm packages focused on their transformations.
//
// Concurrency:
//
//   - All types are plain values. Nothing here locks or shares mutable
//     state; a Trace is mutated only by the stage that produced it.
package trace
