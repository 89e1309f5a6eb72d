// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels wrapped with call-site context; callers
// match them via errors.Is. The state a failed call was given stays untouched.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEdge is returned when an edge argument is not exactly two indices.
	ErrInvalidEdge = errors.New("matrix: invalid edge")

	// ErrInvalidVertex is returned when an index is negative or not below the
	// matrix size.
	ErrInvalidVertex = errors.New("matrix: invalid vertex")
)

// matrixErrorf attaches a method tag and detail to a sentinel, preserving it
// for errors.Is.
func matrixErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
