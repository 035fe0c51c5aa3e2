package pipeline

import (
	"fmt"
	"strings"
)

// Mode selects which danger moments form the focus set.
type Mode string

const (
	ModeAll      Mode = "all"      // no filter
	ModeGoals    Mode = "goals"    // only moments that resulted in a goal
	ModeCritical Mode = "critical" // only critical-severity moments
)

// ParseMode validates a mode string. An unknown mode is a configuration
// error and fails before any work is performed.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeAll:
		return ModeAll, nil
	case ModeGoals:
		return ModeGoals, nil
	case ModeCritical:
		return ModeCritical, nil
	default:
		return "", fmt.Errorf("mode must be one of: all, goals, critical (got %q)", s)
	}
}
