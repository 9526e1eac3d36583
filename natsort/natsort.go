// SPDX-License-Identifier: MIT
// Package: vibrisca/natsort
//
// natsort.go — decomposition of hierarchical names and the composed
// multi-level stable sort.

package natsort

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a structured input: an explicit parent path plus a base name.
// A separator inside Base is part of the name and is never re-split;
// Parent alone is decomposed into hierarchy levels.
type Entry struct {
	Parent string
	Base   string
}

// record is one item's reversible decomposition: parent components
// (shallow to deep), base name, extension. Concatenating raw, which
// preserves the original separators, restores the input identifier.
type record struct {
	orig int      // position in the original input
	dirs []string // parent path components, shallow → deep
	base string
	ext  string
}

// Sort orders names naturally and returns the reordered list plus the
// permutation achieving it (perm[k] is the original position of the k-th
// output item). An empty input returns an empty list and permutation.
func Sort(names []string, opts ...Option) ([]string, []int, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	recs := make([]record, len(names))
	for i, name := range names {
		recs[i] = decomposeName(name, cfg, i)
	}
	perm := sortRecords(recs, cfg)
	ordered := make([]string, len(perm))
	for k, p := range perm {
		ordered[k] = names[p]
	}
	return ordered, perm, nil
}

// SortEntries orders structured entries naturally. Every entry is
// validated before any sorting begins: an empty base name fails with
// ErrMissingBase and no partial order is observable.
func SortEntries(entries []Entry, opts ...Option) ([]Entry, []int, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	for i, e := range entries {
		if e.Base == "" {
			return nil, nil, fmt.Errorf("%w: entry %d", ErrMissingBase, i)
		}
	}
	recs := make([]record, len(entries))
	for i, e := range entries {
		recs[i] = decomposeEntry(e, cfg, i)
	}
	perm := sortRecords(recs, cfg)
	ordered := make([]Entry, len(perm))
	for k, p := range perm {
		ordered[k] = entries[p]
	}
	return ordered, perm, nil
}

// Compare orders two names as Sort would, returning -1, 0, or +1.
// Composing stable single-key passes deepest-first is equivalent to
// comparing key levels shallowest-first, which is what Compare does.
func Compare(a, b string, opts ...Option) (int, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return 0, err
	}
	ra := decomposeName(a, cfg, 0)
	rb := decomposeName(b, cfg, 1)
	depth := len(ra.dirs)
	if len(rb.dirs) > depth {
		depth = len(rb.dirs)
	}
	tk := newTokenizer(cfg)
	cols := keyColumns(depth, cfg)
	for col := 0; col < cols; col++ {
		c := compareTokens(
			tk.split(keyAt(ra, col, depth, cfg)),
			tk.split(keyAt(rb, col, depth, cfg)),
		)
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

// decomposeName splits a path-like name into parent components, base, and
// extension. The extension is the substring after the last dot of the
// file part, only when that dot has a preceding character ("." and ".."
// entries, and dot-files like ".profile", keep their full name as base).
func decomposeName(name string, cfg config, pos int) record {
	dir, file := filepath.Split(name)
	base, ext := splitExt(file, cfg)
	return record{orig: pos, dirs: splitDirs(dir), base: base, ext: ext}
}

// decomposeEntry decomposes a structured entry. Base is taken verbatim —
// embedded separators stay inside the base name — while Parent is split
// into hierarchy levels.
func decomposeEntry(e Entry, cfg config, pos int) record {
	base, ext := splitExt(e.Base, cfg)
	return record{orig: pos, dirs: splitDirs(e.Parent), base: base, ext: ext}
}

// splitExt separates the extension unless directory mode folds it back.
func splitExt(file string, cfg config) (base, ext string) {
	if cfg.asDirectory || file == "." || file == ".." {
		return file, ""
	}
	if idx := strings.LastIndexByte(file, '.'); idx > 0 {
		return file[:idx], file[idx:]
	}
	return file, ""
}

// splitDirs breaks a parent path into its components using the platform
// separator. A rooted path contributes a leading empty component, which
// ranks before every named component and keeps rooted items first.
func splitDirs(dir string) []string {
	sep := string(filepath.Separator)
	dir = strings.TrimSuffix(dir, sep)
	if dir == "" {
		return nil
	}
	return strings.Split(dir, sep)
}

// keyColumns returns the number of key levels for the given table depth.
func keyColumns(depth int, cfg config) int {
	if cfg.pathOnly {
		return 1
	}
	if cfg.asDirectory {
		return depth + 1 // components + base; extension folded into base
	}
	return depth + 2 // components + base + extension
}

// keyAt returns the comparison key of r at column col. Columns run from
// the shallowest path component (0) through base and extension; records
// shallower than the table depth pad with empty keys.
func keyAt(r record, col, depth int, cfg config) string {
	if cfg.pathOnly {
		return r.base
	}
	switch {
	case col < depth:
		if col < len(r.dirs) {
			return r.dirs[col]
		}
		return ""
	case col == depth:
		return r.base
	default:
		return r.ext
	}
}

// sortRecords produces the permutation of kept records in natural order.
// It composes stable single-key sorts from the deepest key level up to
// the shallowest: each pass reorders only within the previous pass's
// order, so shallower components dominate while deeper keys break ties.
func sortRecords(recs []record, cfg config) []int {
	if cfg.removeDot {
		kept := recs[:0]
		for _, r := range recs {
			if r.base == "." || r.base == ".." {
				continue
			}
			kept = append(kept, r)
		}
		recs = kept
	}
	if len(recs) == 0 {
		return []int{}
	}

	depth := 0
	for _, r := range recs {
		if len(r.dirs) > depth {
			depth = len(r.dirs)
		}
	}

	perm := make([]int, len(recs))
	for i := range perm {
		perm[i] = i
	}

	tk := newTokenizer(cfg)
	toks := make([][]token, len(recs))
	for col := keyColumns(depth, cfg) - 1; col >= 0; col-- {
		for i, r := range recs {
			toks[i] = tk.split(keyAt(r, col, depth, cfg))
		}
		sort.SliceStable(perm, func(i, j int) bool {
			return compareTokens(toks[perm[i]], toks[perm[j]]) < 0
		})
	}

	out := make([]int, len(perm))
	for k, p := range perm {
		out[k] = recs[p].orig
	}
	return out
}
