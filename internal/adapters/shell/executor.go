// Package shell runs the external formatter as a child process.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/blackcheck/internal/core/domain"
	"go.trai.ch/blackcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

// probeTimeout bounds the version probe run once per session.
const probeTimeout = 30 * time.Second

var _ ports.Formatter = (*Executor)(nil)

// Executor implements ports.Formatter using os/exec.
type Executor struct {
	logger   ports.Logger
	lookPath func(file string) (string, error)
}

// NewExecutor creates a new Executor. Formatter stderr is forwarded to logger.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger:   logger,
		lookPath: exec.LookPath,
	}
}

// Probe locates the formatter executable and asks it for its version.
//
// The result is Unavailable if the command is empty, the executable is not on
// PATH, or the version probe exits non-zero (e.g. "python -m black" without
// black installed). It is Unknown if the probe could not complete for any
// other reason, and Available otherwise.
func (e *Executor) Probe(ctx context.Context, command []string) domain.Probe {
	if len(command) == 0 {
		return domain.Probe{
			Capability: domain.CapabilityUnavailable,
			Detail:     domain.ErrEmptyFormatterCommand.Error(),
		}
	}

	if _, err := e.lookPath(command[0]); err != nil {
		return domain.Probe{
			Capability: domain.CapabilityUnavailable,
			Detail:     fmt.Sprintf("%s: %q", domain.ErrFormatterNotFound.Error(), command[0]),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	args := append(append([]string{}, command[1:]...), "--version")
	//nolint:gosec // command comes from the user's settings file
	cmd := exec.CommandContext(ctx, command[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			return domain.Probe{
				Capability: domain.CapabilityUnavailable,
				Detail:     firstLine(stderr.String(), exitErr.Error()),
			}
		}
		return domain.Probe{
			Capability: domain.CapabilityUnknown,
			Detail:     err.Error(),
		}
	}

	return domain.Probe{
		Capability: domain.CapabilityAvailable,
		Version:    firstLine(stdout.String(), ""),
	}
}

// Check runs "<command> --check --diff --quiet <path>" and captures its stdout.
func (e *Executor) Check(ctx context.Context, command []string, path string) (domain.FormatReport, error) {
	if len(command) == 0 {
		return domain.FormatReport{}, domain.ErrEmptyFormatterCommand
	}

	args := make([]string, 0, len(command)+len(domain.CheckArgs))
	args = append(args, command[1:]...)
	args = append(args, domain.CheckArgs...)
	args = append(args, path)

	//nolint:gosec // command comes from the user's settings file
	cmd := exec.CommandContext(ctx, command[0], args...)

	var stdout bytes.Buffer
	stderrLog := &logWriter{logger: e.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = stderrLog

	err := cmd.Run()
	_ = stderrLog.Close()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			return domain.FormatReport{ExitCode: exitErr.ExitCode(), Stdout: stdout.String()}, nil
		}
		err = zerr.Wrap(err, domain.ErrFormatterStartFailed.Error())
		return domain.FormatReport{ExitCode: -1, Stdout: stdout.String()}, zerr.With(err, "path", path)
	}

	return domain.FormatReport{ExitCode: 0, Stdout: stdout.String()}, nil
}

// logWriter forwards complete lines written to it as logger warnings.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" || w.logger == nil {
		return
	}
	w.logger.Warn(msg)
}

func firstLine(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
