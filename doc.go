// Package vibrisca conditions and synchronizes multi-channel behavioral
// recordings — pupil size, whisker motion, accelerometer traces — derived
// from long sequences of individually numbered image frames.
//
// 🚀 What is vibrisca?
//
//	A deterministic, pure-Go toolkit that brings together:
//		• Natural ordering: "frame_9" before "frame_10", by numeric value
//		• Hysteresis trigger detection over noisy intensity traces
//		• Trigger-masked alignment of any number of channels in lock-step
//		• Frequency-domain Gaussian smoothing of 1-D signals
//		• Range normalization with Inf/NaN preservation
//
// ✨ Why choose vibrisca?
//
//   - Deterministic – identical inputs produce bit-identical outputs, always
//   - Pure functions – no I/O, no shared state, safe from any goroutine
//   - Explicit errors – sentinel values, errors.Is-friendly, no panics
//   - Composable – each stage stands alone or chains through pipeline/
//
// Under the hood, everything is organized per concern:
//
//	trace/     — shared sample/event/channel types & the channel registry
//	natsort/   — natural-order sequencing of hierarchical frame names
//	trigger/   — hysteresis event detection
//	align/     — trigger-masked channel alignment
//	smooth/    — frequency-domain Gaussian smoothing
//	normalize/ — range normalization
//	pipeline/  — the end-to-end conditioning pass
//
// Typical flow:
//
//	frames ──natsort──▶ per-frame measurements (external)
//	   │                        │
//	   ▼                        ▼
//	trigger channel      behavioral channels
//	   │                        │
//	   ▼                  normalize → smooth
//	 detect ────────────────────┤
//	   ▼                        ▼
//	 event signal ────▶ trigger-masked align ──▶ synchronized dataset
//
// Dive into README.md and the examples/ directory for full scenarios.
//
//	go get github.com/katalvlaran/vibrisca
package vibrisca
