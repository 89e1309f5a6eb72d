// SPDX-License-Identifier: MIT
// Package: bfsviz/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Call sites attach context with %w via builderErrorf.
//   - Validation panics are confined to WithX option constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size or depth parameter is smaller than
// the allowed minimum for the requested constructor.
// Typical origins: Grid(size<1), BinaryTree(depth<0).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrUnknownKind indicates an unsupported preset name or Kind value.
var ErrUnknownKind = errors.New("builder: unknown preset kind")

// builderErrorf wraps err with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
