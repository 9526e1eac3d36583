// SPDX-License-Identifier: MIT
// Package: vibrisca/normalize
//
// errors.go — sentinel errors for the normalize package.

package normalize

import "errors"

// ErrBadRange indicates an OutputRange or InputLimits argument that is
// not exactly two finite numeric values, or InputLimits with min > max.
// Classification: validation error, reported before any computation.
// Usage: if errors.Is(err, ErrBadRange) { /* fix the range argument */ }.
var ErrBadRange = errors.New("normalize: range must be exactly two finite values")
