package logger

import "io"

// Exported for white-box testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// NewWithOutput creates a Logger writing to w.
func NewWithOutput(w io.Writer) *Logger {
	return newLogger(w)
}
