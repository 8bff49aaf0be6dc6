package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/prpflow/internal/constants"
	"github.com/mrz1836/prpflow/internal/errors"
)

// execRoot runs the root command with the given args against a temp home,
// returning combined output and the execution error.
func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PRPFLOW_HOME", t.TempDir())

	var buf bytes.Buffer
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// seedProject creates a temp project root with a commands directory.
func seedProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, constants.CommandsRoot)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "commit.md"),
		[]byte("---\ndescription: commit staged work\n---\nCommit now.\n"), 0o600))
	return root
}

func TestRootCommand(t *testing.T) {
	t.Run("no args shows help", func(t *testing.T) {
		out, err := execRoot(t)
		require.NoError(t, err)
		assert.Contains(t, out, "prpflow")
		assert.Contains(t, out, "Available Commands")
	})

	t.Run("invalid output format is rejected", func(t *testing.T) {
		_, err := execRoot(t, "--output", "xml")
		require.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})

	t.Run("verbose and quiet are mutually exclusive", func(t *testing.T) {
		_, err := execRoot(t, "--verbose", "--quiet")
		require.Error(t, err)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})
}

func TestFlowCommand_Validation(t *testing.T) {
	t.Run("skip-create without prp-path fails fast", func(t *testing.T) {
		root := seedProject(t)
		_, err := execRoot(t, "flow", "--skip-create", "--project-root", root)
		require.ErrorIs(t, err, errors.ErrInvalidFlags)
		assert.Equal(t, ExitInvalidInput, ExitCodeForError(err))
	})

	t.Run("missing feature description fails fast", func(t *testing.T) {
		root := seedProject(t)
		_, err := execRoot(t, "flow", "--project-root", root)
		require.ErrorIs(t, err, errors.ErrInvalidFlags)
	})
}

func TestRunCommand_Validation(t *testing.T) {
	t.Run("unknown command fails resolution", func(t *testing.T) {
		root := seedProject(t)
		_, err := execRoot(t, "run", "no-such-command", "--project-root", root)
		require.ErrorIs(t, err, errors.ErrCommandNotFound)
	})

	t.Run("bad backend output format is rejected", func(t *testing.T) {
		root := seedProject(t)
		_, err := execRoot(t, "run", "commit", "--output-format", "xml", "--project-root", root)
		require.ErrorIs(t, err, errors.ErrInvalidOutputFormat)
	})

	t.Run("outside a project directory fails", func(t *testing.T) {
		tmp := t.TempDir()
		cwd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(tmp))
		t.Cleanup(func() { _ = os.Chdir(cwd) })

		_, err = execRoot(t, "run", "commit")
		require.ErrorIs(t, err, errors.ErrNotInProjectDir)
	})
}

func TestCommandsCommand(t *testing.T) {
	t.Run("lists templates with descriptions", func(t *testing.T) {
		root := seedProject(t)
		out, err := execRoot(t, "commands", "--project-root", root)
		require.NoError(t, err)
		assert.Contains(t, out, "commit")
		assert.Contains(t, out, "commit staged work")
	})

	t.Run("json output", func(t *testing.T) {
		root := seedProject(t)
		out, err := execRoot(t, "commands", "--project-root", root, "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"name":"commit"`)
	})
}

func TestShowCommand(t *testing.T) {
	root := seedProject(t)
	out, err := execRoot(t, "show", "commit", "--project-root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Commit now.")
}
