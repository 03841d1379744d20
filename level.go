package rlog

import (
	"fmt"
	"strconv"
	"strings"
)

// Level follows slog numeric semantics: larger is more important.
// Only two tiers exist; LevelLog is the always-shown default threshold.
type Level int

const (
	LevelVerbose Level = -4
	LevelLog     Level = 0
)

// String returns the display name used in formatted lines.
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelLog:
		return "log"
	default:
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLevel maps "verbose" or "log" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose":
		return LevelVerbose, nil
	case "log":
		return LevelLog, nil
	default:
		return LevelLog, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
