// Package detector chooses between interactive and linear progress output.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is the rendering mode of the run reporter.
type OutputMode int

const (
	// ModeAuto defers to environment detection.
	ModeAuto OutputMode = iota
	// ModeInteractive rewrites each scheme's line in place.
	ModeInteractive
	// ModeLinear appends results, for CI logs and pipes.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns ModeInteractive when stdout is a terminal outside CI,
// ModeLinear otherwise.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

// TerminalWidth returns the width of the terminal attached to stdout, or 0 when unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func detect(isTTY bool, ci string) OutputMode {
	if !isTTY || ci == "true" || ci == "1" {
		return ModeLinear
	}
	return ModeInteractive
}

// ResolveMode applies the --output flag to the detected mode.
// Unknown values fall back to detection.
func ResolveMode(detected OutputMode, flag string) OutputMode {
	switch flag {
	case "interactive", "tty":
		return ModeInteractive
	case "linear", "ci":
		return ModeLinear
	default:
		return detected
	}
}
