package domain

// Capability reports whether the formatter can be used in this environment.
type Capability uint8

const (
	// CapabilityUnknown indicates the formatter was found but could not be probed.
	CapabilityUnknown Capability = iota
	// CapabilityAvailable indicates the formatter is installed and responds.
	CapabilityAvailable
	// CapabilityUnavailable indicates the formatter is not installed.
	CapabilityUnavailable
)

// String returns the name of the capability state.
func (c Capability) String() string {
	switch c {
	case CapabilityAvailable:
		return "available"
	case CapabilityUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Probe is the result of probing the formatter once per session.
type Probe struct {
	Capability Capability
	// Version is the formatter's self-reported version, if known.
	Version string
	// Detail explains an unavailable or unknown capability.
	Detail string
}

// Usable reports whether checks should be attempted.
// Only an explicitly unavailable formatter causes units to be skipped.
func (p Probe) Usable() bool {
	return p.Capability != CapabilityUnavailable
}

// FormatReport is what the formatter returned for one file.
type FormatReport struct {
	ExitCode int
	// Stdout is the captured standard output (the diff when the check fails).
	Stdout string
}

// Passed reports whether the formatter accepted the file.
func (r FormatReport) Passed() bool {
	return r.ExitCode == 0
}
