// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how session progress is reported.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeDots prints one progress character per unit.
	ModeDots
	// ModeVerbose prints one line per unit.
	ModeVerbose
)

// String returns the flag value of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeDots:
		return "dots"
	case ModeVerbose:
		return "verbose"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode based on the environment.
// Logs captured by CI or redirected to a file get one line per unit.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if !isTTY || IsCI() {
		return ModeVerbose
	}
	return ModeDots
}

// IsCI reports whether the CI environment variable is set to a truthy value.
func IsCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolveMode applies user override flag to auto-detection.
// userFlag should be one of: "auto", "verbose", "dots", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "dots":
		return ModeDots
	case "verbose", "ci":
		return ModeVerbose
	default:
		return autoDetected
	}
}
