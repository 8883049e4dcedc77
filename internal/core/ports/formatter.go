// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/blackcheck/internal/core/domain"
)

// Formatter defines the interface for the external code formatter.
//
//go:generate mockgen -source=formatter.go -destination=mocks/mock_formatter.go -package=mocks
type Formatter interface {
	// Probe reports whether the formatter invoked through command can be used.
	// It is consulted once per session.
	Probe(ctx context.Context, command []string) domain.Probe

	// Check runs command in check-only mode against a single file.
	//
	// A non-zero exit code is not an error: it is reported through the returned
	// FormatReport. An error is returned only if the formatter could not be run.
	Check(ctx context.Context, command []string, path string) (domain.FormatReport, error)
}
