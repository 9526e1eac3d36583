// Package natsort orders hierarchical names — typically numbered frame
// files — so that numeric runs embedded in a name compare by value, not
// lexically: "frame_9.tif" sorts before "frame_10.tif".
//
// What:
//
//   - Sort orders a list of path-like names; SortEntries orders structured
//     (parent, base) pairs whose base name is never re-split on separators.
//   - Every name is decomposed into parent-path components, a base name,
//     and an extension; the decomposition is reversible.
//   - Each comparison key is partitioned into maximal digit / non-digit
//     runs. Numeric runs compare by arbitrary-precision value ("007" and
//     "7" are equal-ranked), text runs compare case-folded.
//   - The multi-level order is achieved by composing stable single-key
//     sorts from the deepest key (extension) up to the shallowest path
//     component, so shallower components dominate while deeper keys break
//     ties.
//
// Options:
//
//   - RemoveDotEntries — drop "." and ".." entries before sorting.
//   - TreatAsDirectory — fold the extension back into the base name.
//   - PathOnly         — compare base names only, ignoring parent paths.
//   - CaseSensitive    — compare text runs byte-wise instead of case-folded.
//   - WithNumberMode   — Digits (default), SignedInts, or Decimals.
//
// Errors:
//
//   - ErrMissingBase     — a structured entry has an empty base name
//     (reported before any sorting begins; no partial order is observable).
//   - ErrDuplicateOption — the same option was applied more than once.
//   - ErrBadMode         — WithNumberMode received an unknown mode.
//
// Complexity:
//
//   - O(K·N·log N) comparisons for N names and K key levels, plus O(N·L)
//     tokenization for total input length L. Memory: O(N·L).
//
// Determinism: the sort is stable at every level; identical inputs always
// produce the identical permutation.
package natsort
