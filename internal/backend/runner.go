package backend

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrz1836/prpflow/internal/config"
	"github.com/mrz1836/prpflow/internal/constants"
	"github.com/mrz1836/prpflow/internal/errors"
	"github.com/mrz1836/prpflow/internal/logging"
)

// CLIRunner implements Runner by invoking the backend CLI as a subprocess.
type CLIRunner struct {
	cfg      *config.BackendConfig
	executor CommandExecutor
	logger   zerolog.Logger
}

// CLIRunnerOption is a functional option for configuring CLIRunner.
type CLIRunnerOption func(*CLIRunner)

// WithLogger sets the logger for the CLIRunner.
func WithLogger(logger zerolog.Logger) CLIRunnerOption {
	return func(r *CLIRunner) {
		r.logger = logger
	}
}

// NewCLIRunner creates a CLIRunner with the given configuration.
// If executor is nil, a DefaultExecutor is used for production subprocess execution.
func NewCLIRunner(cfg *config.BackendConfig, executor CommandExecutor, opts ...CLIRunnerOption) *CLIRunner {
	if executor == nil {
		executor = &DefaultExecutor{}
	}
	r := &CLIRunner{
		cfg:      cfg,
		executor: executor,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Invoke runs the backend once and blocks until it exits. A non-zero exit is
// returned as a failed Result alongside a wrapped errors.ErrBackendInvocation.
// There is no retry and no timeout; a hung backend hangs the invocation.
func (r *CLIRunner) Invoke(ctx context.Context, req *Request) (*Result, error) {
	if req.Prompt == "" && req.Mode != ModeInteractive {
		return nil, errors.Wrap(errors.ErrEmptyValue, "prompt")
	}

	cmd, capture := r.buildCommand(ctx, req)

	r.logger.Debug().
		Str("backend", r.cfg.Command).
		Str("mode", req.Mode.String()).
		Str("output_format", r.outputFormat(req)).
		Int("prompt_len", len(req.Prompt)).
		Msg("invoking backend")

	err := r.executor.Run(ctx, cmd)
	result := &Result{}
	if capture != nil {
		result.Output = capture.String()
	}
	if err == nil {
		return result, nil
	}

	// Prefer cancellation over a generic invocation failure.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, errors.Wrapf(errors.ErrBackendInvocation,
			"%s exited with status %d", r.cfg.Command, result.ExitCode)
	}

	return nil, r.wrapStartError(err)
}

// wrapStartError classifies errors that occur before the backend produced an
// exit status, such as a missing executable.
func (r *CLIRunner) wrapStartError(err error) error {
	if strings.Contains(err.Error(), "executable file not found") {
		return errors.Wrapf(errors.ErrBackendInvocation,
			"%s CLI not found - please install it and ensure it is on PATH", r.cfg.Command)
	}
	return errors.Wrapf(errors.ErrBackendInvocation, "%s: %s",
		r.cfg.Command, logging.FilterSensitiveValue(err.Error()))
}

// buildCommand constructs the backend command for the request's mode.
// It returns the command and, for capture mode, the buffer receiving stdout.
func (r *CLIRunner) buildCommand(ctx context.Context, req *Request) (*exec.Cmd, *bytes.Buffer) {
	tools := req.AllowedTools
	if len(tools) == 0 {
		tools = r.cfg.AllowedTools
	}

	var args []string
	if req.Mode != ModeInteractive {
		args = append(args, constants.HeadlessFlag, req.Prompt)
		args = append(args, constants.OutputFormatFlag, r.outputFormat(req))
	}
	if len(tools) > 0 {
		args = append(args, constants.AllowedToolsFlag, strings.Join(tools, ","))
	}

	cmd := exec.CommandContext(ctx, r.cfg.Command, args...) //nolint:gosec // backend command comes from config
	if req.WorkingDir != "" {
		cmd.Dir = req.WorkingDir
	}

	var capture *bytes.Buffer
	switch req.Mode {
	case ModeInteractive:
		// The prompt seeds a long-lived session via stdin; the terminal
		// belongs to the backend until it exits.
		cmd.Stdin = strings.NewReader(req.Prompt)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	case ModeCapture:
		capture = &bytes.Buffer{}
		cmd.Stdout = capture
		cmd.Stderr = os.Stderr
	case ModeStream:
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	return cmd, capture
}

// outputFormat resolves the headless output format: request > config.
func (r *CLIRunner) outputFormat(req *Request) string {
	if req.OutputFormat != "" {
		return req.OutputFormat
	}
	return r.cfg.OutputFormat
}

// Compile-time check that CLIRunner implements Runner.
var _ Runner = (*CLIRunner)(nil)
