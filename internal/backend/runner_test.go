package backend

// This test suite uses MockExecutor to simulate backend CLI subprocess
// execution. Tests never invoke a real backend; responses are canned data
// written to the command's configured stdout writer.

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/prpflow/internal/config"
	"github.com/mrz1836/prpflow/internal/constants"
	prperrors "github.com/mrz1836/prpflow/internal/errors"
)

// MockExecutor is a test implementation of CommandExecutor. It records the
// prepared command and optionally writes canned stdout before returning a
// pre-configured error.
type MockExecutor struct {
	Stdout string
	Err    error
	// CapturedCmd stores the last executed command for verification.
	CapturedCmd *exec.Cmd
}

func (m *MockExecutor) Run(_ context.Context, cmd *exec.Cmd) error {
	m.CapturedCmd = cmd
	if m.Stdout != "" && cmd.Stdout != nil {
		_, _ = io.WriteString(cmd.Stdout, m.Stdout)
	}
	return m.Err
}

func testBackendConfig() *config.BackendConfig {
	return &config.BackendConfig{
		Command:      "claude",
		OutputFormat: constants.OutputFormatText,
		AllowedTools: []string{"Edit", "Bash"},
	}
}

func TestNewCLIRunner(t *testing.T) {
	t.Run("uses provided executor", func(t *testing.T) {
		mockExec := &MockExecutor{}
		runner := NewCLIRunner(testBackendConfig(), mockExec)
		require.NotNil(t, runner)
		assert.Equal(t, mockExec, runner.executor)
	})

	t.Run("defaults to DefaultExecutor when nil", func(t *testing.T) {
		runner := NewCLIRunner(testBackendConfig(), nil)
		require.NotNil(t, runner)
		assert.IsType(t, &DefaultExecutor{}, runner.executor)
	})
}

func TestCLIRunner_Invoke_Capture(t *testing.T) {
	mockExec := &MockExecutor{Stdout: "created PRPs/test.md\n"}
	runner := NewCLIRunner(testBackendConfig(), mockExec)

	result, err := runner.Invoke(context.Background(), &Request{
		Prompt: "do the thing",
		Mode:   ModeCapture,
	})
	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.Equal(t, "created PRPs/test.md\n", result.Output)

	args := mockExec.CapturedCmd.Args
	assert.Equal(t, "claude", args[0])
	assert.Contains(t, args, constants.HeadlessFlag)
	assert.Contains(t, args, "do the thing")
	assert.Contains(t, args, constants.OutputFormatFlag)
	assert.Contains(t, args, constants.OutputFormatText)
	assert.Contains(t, args, constants.AllowedToolsFlag)
	assert.Contains(t, args, "Edit,Bash")
}

func TestCLIRunner_Invoke_Stream(t *testing.T) {
	mockExec := &MockExecutor{}
	runner := NewCLIRunner(testBackendConfig(), mockExec)

	result, err := runner.Invoke(context.Background(), &Request{
		Prompt:       "stream it",
		Mode:         ModeStream,
		OutputFormat: constants.OutputFormatStreamJSON,
	})
	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.Empty(t, result.Output, "stream mode must not capture output")
	assert.Contains(t, mockExec.CapturedCmd.Args, constants.OutputFormatStreamJSON)
}

func TestCLIRunner_Invoke_Interactive(t *testing.T) {
	mockExec := &MockExecutor{}
	runner := NewCLIRunner(testBackendConfig(), mockExec)

	_, err := runner.Invoke(context.Background(), &Request{
		Prompt: "session seed",
		Mode:   ModeInteractive,
	})
	require.NoError(t, err)

	args := mockExec.CapturedCmd.Args
	assert.NotContains(t, args, constants.HeadlessFlag, "interactive mode must not use print mode")
	assert.NotContains(t, args, constants.OutputFormatFlag)
	assert.Contains(t, args, constants.AllowedToolsFlag)
	assert.NotNil(t, mockExec.CapturedCmd.Stdin, "prompt must be delivered via stdin")
}

func TestCLIRunner_Invoke_RequestOverrides(t *testing.T) {
	mockExec := &MockExecutor{}
	runner := NewCLIRunner(testBackendConfig(), mockExec)

	_, err := runner.Invoke(context.Background(), &Request{
		Prompt:       "p",
		Mode:         ModeCapture,
		OutputFormat: constants.OutputFormatJSON,
		AllowedTools: []string{"Read"},
		WorkingDir:   t.TempDir(),
	})
	require.NoError(t, err)
	assert.Contains(t, mockExec.CapturedCmd.Args, constants.OutputFormatJSON)
	assert.Contains(t, mockExec.CapturedCmd.Args, "Read")
	assert.NotContains(t, mockExec.CapturedCmd.Args, "Edit,Bash")
	assert.NotEmpty(t, mockExec.CapturedCmd.Dir)
}

func TestCLIRunner_Invoke_Errors(t *testing.T) {
	t.Run("empty headless prompt is rejected", func(t *testing.T) {
		runner := NewCLIRunner(testBackendConfig(), &MockExecutor{})
		_, err := runner.Invoke(context.Background(), &Request{Mode: ModeCapture})
		require.ErrorIs(t, err, prperrors.ErrEmptyValue)
	})

	t.Run("missing executable maps to backend invocation failure", func(t *testing.T) {
		mockExec := &MockExecutor{Err: errors.New(`exec: "claude": executable file not found in $PATH`)}
		runner := NewCLIRunner(testBackendConfig(), mockExec)

		_, err := runner.Invoke(context.Background(), &Request{Prompt: "p", Mode: ModeCapture})
		require.ErrorIs(t, err, prperrors.ErrBackendInvocation)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("generic failure maps to backend invocation failure", func(t *testing.T) {
		mockExec := &MockExecutor{Err: errors.New("boom")}
		runner := NewCLIRunner(testBackendConfig(), mockExec)

		_, err := runner.Invoke(context.Background(), &Request{Prompt: "p", Mode: ModeCapture})
		require.ErrorIs(t, err, prperrors.ErrBackendInvocation)
	})

	t.Run("canceled context is surfaced as context error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		mockExec := &MockExecutor{Err: errors.New("signal: killed")}
		runner := NewCLIRunner(testBackendConfig(), mockExec)

		_, err := runner.Invoke(ctx, &Request{Prompt: "p", Mode: ModeCapture})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "capture", ModeCapture.String())
	assert.Equal(t, "stream", ModeStream.String())
	assert.Equal(t, "interactive", ModeInteractive.String())
	assert.Equal(t, "unknown", Mode(99).String())
}
