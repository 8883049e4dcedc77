// Package domain contains the core types of blackcheck.
package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// NodeIDSuffix is appended to a unit's relative path to form its node id.
	NodeIDSuffix = "::BLACK"

	// Marker is the marker attached to every unit.
	Marker = "black"

	// ReportInfo describes what a unit checks.
	ReportInfo = "Black format check"

	// ReasonPreviouslyPassed is the skip reason for units whose mtime is unchanged since they last passed.
	ReasonPreviouslyPassed = "file(s) previously passed black format checks"

	// ReasonExcluded is the skip reason for units excluded by the include/exclude configuration.
	ReasonExcluded = "file(s) excluded by pyproject.toml"

	// ReasonFormatterMissingPrefix prefixes the skip reason for units skipped because the formatter is missing.
	ReasonFormatterMissingPrefix = "black is not available"
)

// Unit is a single source file subjected to a formatting check.
type Unit struct {
	// Path is the absolute path of the file.
	Path string
	// NodeID identifies the unit in reports, e.g. "pkg/mod.py::BLACK".
	NodeID string
	// Markers are the markers attached to the unit.
	Markers []string
}

// NewUnit creates a unit for the file at path. rel is the path shown in reports.
func NewUnit(path, rel string) Unit {
	return Unit{
		Path:    path,
		NodeID:  rel + NodeIDSuffix,
		Markers: []string{Marker},
	}
}

// HasMarker reports whether the unit carries the given marker.
func (u Unit) HasMarker(name string) bool {
	for _, m := range u.Markers {
		if m == name {
			return true
		}
	}
	return false
}

// Outcome is the result of checking a unit.
type Outcome string

const (
	// OutcomePassed indicates the file is formatted canonically.
	OutcomePassed Outcome = "passed"
	// OutcomeFailed indicates the formatter reported a violation.
	OutcomeFailed Outcome = "failed"
	// OutcomeSkipped indicates the check did not run.
	OutcomeSkipped Outcome = "skipped"
)

// Label returns the upper-case report label of the outcome.
func (o Outcome) Label() string {
	return strings.ToUpper(string(o))
}

// Result is the outcome of checking one unit.
type Result struct {
	Unit    Unit
	Outcome Outcome
	// Reason is the human-readable skip reason.
	Reason string
	// Detail is the failure detail, the formatter's diff output verbatim.
	Detail string
	// Mtime is the modification time observed before the check, in UnixNano.
	Mtime    int64
	Duration time.Duration
}

// Summary counts results of a session.
type Summary struct {
	Passed   int
	Failed   int
	Skipped  int
	Duration time.Duration
}

// Summarize counts the outcomes of results.
func Summarize(results []Result, elapsed time.Duration) Summary {
	s := Summary{Duration: elapsed}
	for _, r := range results {
		switch r.Outcome {
		case OutcomePassed:
			s.Passed++
		case OutcomeFailed:
			s.Failed++
		case OutcomeSkipped:
			s.Skipped++
		}
	}
	return s
}

// Total returns the number of counted results.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// String renders the summary line, e.g. "1 failed, 1 passed, 2 skipped in 0.12s".
// Zero counts are omitted; an empty session renders as "no tests ran".
func (s Summary) String() string {
	var parts []string
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", s.Failed))
	}
	if s.Passed > 0 {
		parts = append(parts, fmt.Sprintf("%d passed", s.Passed))
	}
	if s.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", s.Skipped))
	}
	head := "no tests ran"
	if len(parts) > 0 {
		head = strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%s in %.2fs", head, s.Duration.Seconds())
}
