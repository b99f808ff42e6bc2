package tui

import (
	"os"

	"golang.org/x/term"
)

// ColorMode decides whether rendered output carries ANSI styling.
type ColorMode int

const (
	// ColorAuto enables styling only when stdout is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces styling on.
	ColorAlways
	// ColorNever forces styling off.
	ColorNever
)

// ParseColorMode maps the config/flag value to a ColorMode.
// Unrecognized values fall back to auto.
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}

// UseColor reports whether output should be styled under the given mode.
//
// In auto mode styling is off when:
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - stdout is not a terminal (piped output)
func UseColor(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
