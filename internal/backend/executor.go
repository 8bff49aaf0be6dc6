package backend

import (
	"context"
	"os/exec"
)

// CommandExecutor abstracts subprocess execution for testing.
// The production implementation runs the prepared command as-is; tests can
// provide a mock that inspects the command and writes canned output to its
// configured stdout writer.
//
// The ctx parameter is included for interface consistency, even though the
// production implementation embeds context via exec.CommandContext(). Mock
// implementations may use ctx to simulate cancellation behavior.
type CommandExecutor interface {
	// Run executes the command and blocks until it exits.
	Run(ctx context.Context, cmd *exec.Cmd) error
}

// DefaultExecutor is the production implementation of CommandExecutor.
type DefaultExecutor struct{}

// Run executes the command using the operating system's process execution.
// Stdin/stdout/stderr wiring is the caller's responsibility; the runner
// configures them per invocation mode before calling Run.
func (e *DefaultExecutor) Run(_ context.Context, cmd *exec.Cmd) error {
	return cmd.Run()
}
