// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"strings"
)

// Mode gates which edits a Scene accepts.
type Mode int

const (
	// ModeMove allows dragging nodes.
	ModeMove Mode = iota
	// ModeAdd allows placing new nodes.
	ModeAdd
	// ModeConnect allows drawing edges leg by leg.
	ModeConnect
	// ModeSetStart makes a node click choose the start.
	ModeSetStart
	// ModeSetEnd makes a node click choose the goal.
	ModeSetEnd
)

var modeNames = [...]string{"move", "add", "connect", "set-start", "set-end"}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Modes returns every mode in toolbar order.
func Modes() []Mode { return []Mode{ModeMove, ModeAdd, ModeConnect, ModeSetStart, ModeSetEnd} }

// ParseMode resolves a mode name as printed by String.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("ParseMode: %q: %w", s, ErrWrongMode)
}
