// SPDX-License-Identifier: MIT
// Package: vibrisca/natsort
//
// options.go — functional options for natural-order sorting.
//
// Contract (strict):
//   • Options are functional (type Option func(*config) error).
//   • Applying the same option twice in one call is a configuration error
//     (ErrDuplicateOption); conflicting or repeated flags never win silently.
//   • No hidden globals; everything flows through config.

package natsort

import "fmt"

// NumberMode selects how numeric runs are recognized inside a name.
type NumberMode int

const (
	// Digits recognizes bare digit runs only; "-" and "+" are text. Default.
	Digits NumberMode = iota
	// SignedInts additionally consumes an immediately preceding sign, so
	// "t-5" carries the numeric value -5.
	SignedInts
	// Decimals additionally consumes a fractional part, so "v1.25" carries
	// the numeric value 1.25 (and signs, as in SignedInts).
	Decimals
)

// option keys for duplicate detection.
const (
	optRemoveDot     = "RemoveDotEntries"
	optAsDirectory   = "TreatAsDirectory"
	optPathOnly      = "PathOnly"
	optCaseSensitive = "CaseSensitive"
	optNumberMode    = "WithNumberMode"
)

// config is the resolved option set for one sorting call.
type config struct {
	removeDot     bool
	asDirectory   bool
	pathOnly      bool
	caseSensitive bool
	mode          NumberMode

	applied map[string]bool // duplicate-application guard
}

// Option customizes one sorting call. Options validate on application and
// return an error rather than panicking, so a bad configuration can never
// produce a partial sort.
type Option func(*config) error

// mark records one application of key, failing on the second.
func (c *config) mark(key string) error {
	if c.applied[key] {
		return fmt.Errorf("%w: %s", ErrDuplicateOption, key)
	}
	c.applied[key] = true
	return nil
}

// RemoveDotEntries drops items whose base name is exactly "." or ".."
// before sorting. The permutation then indexes only the surviving items'
// original positions.
func RemoveDotEntries() Option {
	return func(c *config) error {
		if err := c.mark(optRemoveDot); err != nil {
			return err
		}
		c.removeDot = true
		return nil
	}
}

// TreatAsDirectory folds the extension back into the base name, so
// "v1.2" orders as a whole rather than as base "v1" + extension ".2".
func TreatAsDirectory() Option {
	return func(c *config) error {
		if err := c.mark(optAsDirectory); err != nil {
			return err
		}
		c.asDirectory = true
		return nil
	}
}

// PathOnly compares base names only; parent paths and extensions carry no
// weight in the order.
func PathOnly() Option {
	return func(c *config) error {
		if err := c.mark(optPathOnly); err != nil {
			return err
		}
		c.pathOnly = true
		return nil
	}
}

// CaseSensitive compares text runs byte-wise. The default folds case via
// Unicode case folding, so "Frame" and "frame" rank together.
func CaseSensitive() Option {
	return func(c *config) error {
		if err := c.mark(optCaseSensitive); err != nil {
			return err
		}
		c.caseSensitive = true
		return nil
	}
}

// WithNumberMode selects how numeric runs are recognized. Unknown modes
// fail with ErrBadMode.
func WithNumberMode(m NumberMode) Option {
	return func(c *config) error {
		if err := c.mark(optNumberMode); err != nil {
			return err
		}
		if m < Digits || m > Decimals {
			return fmt.Errorf("%w: %d", ErrBadMode, m)
		}
		c.mode = m
		return nil
	}
}

// newConfig resolves opts over the defaults. The first failing option
// aborts resolution; no sorting happens after a configuration error.
func newConfig(opts []Option) (config, error) {
	c := config{applied: make(map[string]bool, len(opts))}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return config{}, err
		}
	}
	return c, nil
}
