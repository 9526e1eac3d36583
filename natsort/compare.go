// SPDX-License-Identifier: MIT
// Package: vibrisca/natsort
//
// compare.go — the single-key natural comparator composed by the sorter.

package natsort

import "strings"

// compareTokens orders two tokenized keys. Rules, applied token by token:
//
//   - numeric vs numeric: by parsed value; equal values with different
//     digit strings ("007" vs "7") are equal, leaving the order to the
//     stable sort.
//   - text vs text: by comparison form (case-folded unless CaseSensitive).
//   - numeric vs text: the numeric token ranks first, consistently at
//     every key level.
//   - exhaustion: the key that runs out of tokens first ranks first.
//
// Returns -1, 0, or +1.
func compareTokens(a, b []token) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ta, tb := a[i], b[i]
		switch {
		case ta.numeric() && tb.numeric():
			if c := ta.num.Cmp(tb.num); c != 0 {
				return c
			}
		case ta.numeric():
			return -1
		case tb.numeric():
			return 1
		default:
			if c := strings.Compare(ta.fold, tb.fold); c != 0 {
				return c
			}
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
