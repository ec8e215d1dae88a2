package boarddb

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which database a lookup consults.
type Mode int

const (
	// ModeAuto searches the offline snapshot first and falls back to the
	// online database when the board is not found. This is the default.
	ModeAuto Mode = iota
	// ModeOffline only ever uses the bundled snapshot.
	ModeOffline
	// ModeOnline only ever uses the online database.
	ModeOnline
)

// ErrUnsupportedMode indicates a database mode string that is not one of
// "auto", "offline" or "online".
var ErrUnsupportedMode = errors.New("unsupported database mode")

// String returns the canonical lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeOffline:
		return "offline"
	case ModeOnline:
		return "online"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name into a Mode, case-insensitively. The
// empty string parses as ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ModeAuto, nil
	case "offline":
		return ModeOffline, nil
	case "online":
		return ModeOnline, nil
	default:
		return ModeAuto, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
}
