// Package session runs the format check for each collected unit.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/blackcheck/internal/core/domain"
	"go.trai.ch/blackcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

// fallbackDetail is reported for a failing unit whose formatter printed nothing.
const fallbackDetail = "black reported a formatting violation but printed no diff (exit code %d)\n"

// Config is the per-session input of Run.
type Config struct {
	// Command is the formatter command prefix.
	Command []string
	// Probe is the formatter capability probed once for the session.
	Probe domain.Probe
	// Cache is the recheck cache. It must already be loaded.
	Cache ports.RecheckCache
	// Filter decides which units are excluded. A nil filter excludes nothing.
	Filter *domain.Filter
}

// Session checks units one at a time.
type Session struct {
	formatter ports.Formatter
	tracer    ports.Tracer
	mtime     func(path string) (int64, error)
	now       func() time.Time
}

// New creates a new Session.
func New(formatter ports.Formatter, tracer ports.Tracer) *Session {
	return &Session{
		formatter: formatter,
		tracer:    tracer,
		mtime:     statMtime,
		now:       time.Now,
	}
}

// Run checks units in order and returns one result per unit.
// A cancelled context stops the session before the next unit; the results of
// units already checked are returned along with the context error.
func (s *Session) Run(ctx context.Context, units []domain.Unit, cfg Config) ([]domain.Result, error) {
	nodeIDs := make([]string, len(units))
	for i, u := range units {
		nodeIDs[i] = u.NodeID
	}
	s.tracer.EmitPlan(ctx, nodeIDs)

	results := make([]domain.Result, 0, len(units))
	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, s.checkUnit(ctx, unit, cfg))
	}

	return results, nil
}

func (s *Session) checkUnit(ctx context.Context, unit domain.Unit, cfg Config) domain.Result {
	ctx, span := s.tracer.Start(ctx, unit.NodeID, ports.WithAttribute(ports.AttrPath, unit.Path))
	defer span.End()

	start := s.now()
	res := s.evaluate(ctx, unit, cfg, span)
	res.Duration = s.now().Sub(start)

	span.SetAttribute(ports.AttrOutcome, string(res.Outcome))
	if res.Reason != "" {
		span.SetAttribute(ports.AttrReason, res.Reason)
	}
	if res.Outcome == domain.OutcomeFailed {
		_, _ = io.WriteString(span, res.Detail)
	}

	return res
}

// evaluate applies the skip rules in order: missing formatter, unchanged
// since last pass, excluded by configuration. Only then is the formatter run.
func (s *Session) evaluate(ctx context.Context, unit domain.Unit, cfg Config, span ports.Span) domain.Result {
	res := domain.Result{Unit: unit}

	if !cfg.Probe.Usable() {
		res.Outcome = domain.OutcomeSkipped
		res.Reason = missingReason(cfg.Probe)
		return res
	}

	mtime, err := s.mtime(unit.Path)
	if err != nil {
		span.RecordError(err)
		res.Outcome = domain.OutcomeFailed
		res.Detail = err.Error() + "\n"
		return res
	}
	res.Mtime = mtime
	span.SetAttribute(ports.AttrMtime, mtime)

	if cfg.Cache != nil && cfg.Cache.IsFresh(unit.Path, mtime) {
		res.Outcome = domain.OutcomeSkipped
		res.Reason = domain.ReasonPreviouslyPassed
		return res
	}

	if cfg.Filter.Skips(unit.Path) {
		res.Outcome = domain.OutcomeSkipped
		res.Reason = domain.ReasonExcluded
		return res
	}

	report, err := s.formatter.Check(ctx, cfg.Command, unit.Path)
	if err != nil {
		span.RecordError(err)
		res.Outcome = domain.OutcomeFailed
		res.Detail = err.Error() + "\n"
		return res
	}

	if !report.Passed() {
		res.Outcome = domain.OutcomeFailed
		res.Detail = report.Stdout
		if res.Detail == "" {
			res.Detail = fmt.Sprintf(fallbackDetail, report.ExitCode)
		}
		return res
	}

	res.Outcome = domain.OutcomePassed
	if cfg.Cache != nil {
		cfg.Cache.Record(unit.Path, mtime)
	}
	return res
}

func missingReason(p domain.Probe) string {
	if p.Detail == "" {
		return domain.ReasonFormatterMissingPrefix
	}
	return domain.ReasonFormatterMissingPrefix + ": " + p.Detail
}

func statMtime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrStatFailed.Error()), "path", path)
	}
	return info.ModTime().UnixNano(), nil
}
