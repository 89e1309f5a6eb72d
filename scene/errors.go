// SPDX-License-Identifier: MIT
// Package: bfsviz/scene
//
// errors.go - sentinel errors for scene operations.

package scene

import "errors"

// ErrWrongMode indicates an operation that the current Mode does not allow.
var ErrWrongMode = errors.New("scene: operation not allowed in current mode")

// ErrUnknownNode indicates a node index outside [0, NodeCount).
var ErrUnknownNode = errors.New("scene: unknown node")
