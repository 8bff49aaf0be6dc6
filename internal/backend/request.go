// Package backend invokes the external backend CLI that performs the actual
// work described by an expanded prompt.
//
// The backend is opaque: it receives a prompt, a tool allow-list, and an
// output format, and reports back only an exit status plus optional text
// output. This package never retries and never interprets backend output.
//
// IMPORTANT: This package may import internal/constants, internal/errors,
// and internal/config. It MUST NOT import internal/workflow or internal/cli.
package backend

import "context"

// Mode selects how the backend subprocess is driven. A third mode
// (interactive) exists alongside capture and stream, so this is an explicit
// enumeration rather than a pair of booleans.
type Mode int

const (
	// ModeCapture runs the backend headlessly and captures stdout as text.
	ModeCapture Mode = iota

	// ModeStream runs the backend headlessly with stdout and stderr
	// inherited from the controlling terminal.
	ModeStream

	// ModeInteractive starts a long-lived backend session and delivers the
	// prompt via stdin. No output is captured.
	ModeInteractive
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeCapture:
		return "capture"
	case ModeStream:
		return "stream"
	case ModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// Request describes a single backend invocation.
type Request struct {
	// Prompt is the fully expanded prompt text.
	Prompt string

	// Mode selects interactive, capture, or stream invocation.
	Mode Mode

	// OutputFormat is the headless output format (text, json, stream-json).
	// Empty means the configured default.
	OutputFormat string

	// AllowedTools is the tool allow-list for this invocation.
	// Empty means the configured default.
	AllowedTools []string

	// WorkingDir is the directory the backend runs in. Empty means the
	// current directory.
	WorkingDir string
}

// Result is the outcome of a backend invocation.
type Result struct {
	// ExitCode is the backend process exit code.
	ExitCode int

	// Output is the captured stdout text. Only populated in capture mode.
	Output string
}

// Success reports whether the backend exited zero.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// Runner defines the interface for backend invocation. Implementations
// handle subprocess execution and surface failures as wrapped
// errors.ErrBackendInvocation.
//
// Context is plumbed through for interface consistency; the workflow is
// strictly sequential and applies no timeout of its own.
type Runner interface {
	// Invoke runs the backend once and blocks until it exits.
	Invoke(ctx context.Context, req *Request) (*Result, error)
}
