// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrUnknownFormat indicates a config path with an unsupported extension.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalidConfig indicates a struct-tag validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrBadGraph indicates an explicit graph whose edges or start/goal name
	// nodes that do not exist.
	ErrBadGraph = errors.New("config: bad graph")
)
