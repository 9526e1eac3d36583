// SPDX-License-Identifier: MIT
// Package: vibrisca/natsort
//
// errors.go — sentinel errors for the natsort package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     call sites attach context via %w.
//   • All validation happens before any sorting — a returned error
//     guarantees no partial result was produced.

package natsort

import "errors"

// ErrMissingBase indicates a structured Entry whose base name is empty.
// Classification: validation error (input), reported before sorting begins.
// Usage: if errors.Is(err, ErrMissingBase) { /* fix the offending entry */ }.
var ErrMissingBase = errors.New("natsort: entry base name must be non-empty")

// ErrDuplicateOption indicates the same configuration option was applied
// more than once in a single call.
// Classification: configuration error.
// Usage: if errors.Is(err, ErrDuplicateOption) { /* deduplicate options */ }.
var ErrDuplicateOption = errors.New("natsort: option applied more than once")

// ErrBadMode indicates WithNumberMode received a value outside the declared
// NumberMode set.
// Classification: configuration error.
// Usage: if errors.Is(err, ErrBadMode) { /* use Digits/SignedInts/Decimals */ }.
var ErrBadMode = errors.New("natsort: unknown number mode")
