package linear

import (
	"io"

	"go.trai.ch/blackcheck/internal/adapters/detector"
)

// ForMode returns a renderer printing to stdout in the given output mode.
// ModeAuto is resolved against the environment first.
func ForMode(stdout io.Writer, mode detector.OutputMode) *Renderer {
	if mode == detector.ModeAuto {
		mode = detector.DetectEnvironment()
	}
	if mode == detector.ModeDots {
		return NewRenderer(stdout, FormatDots)
	}
	return NewRenderer(stdout, FormatVerbose)
}
