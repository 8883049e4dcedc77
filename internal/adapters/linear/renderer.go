// Package linear provides a synchronous, line-oriented renderer for check sessions.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/blackcheck/internal/core/domain"
	"go.trai.ch/blackcheck/internal/core/ports"
	"go.trai.ch/blackcheck/internal/ui/output"
	"go.trai.ch/blackcheck/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Format selects how unit outcomes are printed.
type Format int

const (
	// FormatVerbose prints one line per unit.
	FormatVerbose Format = iota
	// FormatDots prints one character per unit.
	FormatDots
)

const bannerFill = 10

// Renderer implements ports.Renderer by writing a report to stdout.
type Renderer struct {
	stdout io.Writer
	format Format
	output *termenv.Output

	mu    sync.Mutex
	units map[string]string // spanID -> node id
	dots  int
}

// NewRenderer creates a new Renderer writing to stdout.
// Colours follow NO_COLOR and otherwise use plain ANSI.
func NewRenderer(stdout io.Writer, format Format) *Renderer {
	return NewRendererWithProfile(stdout, format, output.ColorProfileANSI)
}

// NewRendererWithProfile creates a new Renderer using the colour profile returned by profileFn.
func NewRendererWithProfile(stdout io.Writer, format Format, profileFn func() termenv.Profile) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Renderer{
		stdout: stdout,
		format: format,
		output: output.NewWithProfile(stdout, profileFn),
		units:  make(map[string]string),
	}
}

// Start is a no-op for the linear renderer (synchronous).
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop terminates a pending line of progress dots.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.endDotsLocked()
	return nil
}

// OnSessionStart prints the root directory.
func (r *Renderer) OnSessionStart(rootDir string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("rootdir: %s\n", rootDir)
}

// OnPlanEmit prints the number of collected units.
func (r *Renderer) OnPlanEmit(nodeIDs []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	noun := "items"
	if len(nodeIDs) == 1 {
		noun = "item"
	}
	r.printf("collected %d %s\n\n", len(nodeIDs), noun)
}

// OnUnitStart remembers the unit behind spanID.
func (r *Renderer) OnUnitStart(spanID, nodeID string, _ time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.units[spanID] = nodeID
}

// OnUnitComplete prints the outcome of the unit behind spanID.
func (r *Renderer) OnUnitComplete(spanID string, _ time.Time, outcome domain.Outcome, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nodeID, ok := r.units[spanID]
	if !ok {
		return
	}
	delete(r.units, spanID)

	if r.format == FormatDots {
		r.printf("%s", r.colorize(outcome, dot(outcome)))
		r.dots++
		return
	}

	line := nodeID + " " + r.colorize(outcome, outcome.Label())
	if outcome == domain.OutcomeSkipped && reason != "" {
		line += " (" + reason + ")"
	}
	r.printf("%s\n", line)
}

// OnSessionFinish prints the failure details and the summary line.
func (r *Renderer) OnSessionFinish(results []domain.Result, summary domain.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.endDotsLocked()

	var failed []domain.Result
	for _, res := range results {
		if res.Outcome == domain.OutcomeFailed {
			failed = append(failed, res)
		}
	}

	if len(failed) > 0 {
		r.printf("\n%s\n", banner("=", "FAILURES"))
		for _, res := range failed {
			r.printf("%s\n", banner("_", res.Unit.NodeID))
			detail := res.Detail
			if detail != "" && !strings.HasSuffix(detail, "\n") {
				detail += "\n"
			}
			r.printf("%s", detail)
		}
	}

	line := banner("=", summary.String())
	switch {
	case summary.Failed > 0:
		line = r.output.String(line).Foreground(r.output.Color(string(style.Red))).String()
	case summary.Passed > 0:
		line = r.output.String(line).Foreground(r.output.Color(string(style.Green))).String()
	default:
		line = r.output.String(line).Foreground(r.output.Color(string(style.Yellow))).String()
	}
	r.printf("%s\n", line)
}

// endDotsLocked terminates the progress line. Must be called with r.mu held.
func (r *Renderer) endDotsLocked() {
	if r.dots > 0 {
		r.printf("\n")
		r.dots = 0
	}
}

func (r *Renderer) colorize(outcome domain.Outcome, s string) string {
	var color string
	switch outcome {
	case domain.OutcomePassed:
		color = string(style.Green)
	case domain.OutcomeFailed:
		color = string(style.Red)
	default:
		color = string(style.Yellow)
	}
	return r.output.String(s).Foreground(r.output.Color(color)).String()
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.stdout, format, args...)
}

func dot(outcome domain.Outcome) string {
	switch outcome {
	case domain.OutcomePassed:
		return style.DotPassed
	case domain.OutcomeFailed:
		return style.DotFailed
	default:
		return style.DotSkipped
	}
}

func banner(fill, title string) string {
	edge := strings.Repeat(fill, bannerFill)
	return edge + " " + title + " " + edge
}
