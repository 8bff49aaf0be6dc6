package command

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/prpflow/internal/config"
	"github.com/mrz1836/prpflow/internal/constants"
	"github.com/mrz1836/prpflow/internal/errors"
)

// newTestResolver builds a resolver over a temp project root and returns both.
func newTestResolver(t *testing.T) (*Resolver, string) {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ProjectRoot = root
	return NewResolver(cfg, zerolog.Nop()), root
}

// writeCommand creates a command document under the commands root.
func writeCommand(t *testing.T, projectRoot, subdir, name string) string {
	t.Helper()
	dir := filepath.Join(projectRoot, constants.CommandsRoot, subdir)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, name+constants.TemplateSuffix)
	require.NoError(t, os.WriteFile(path, []byte("# "+name+"\n"), 0o600))
	return path
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("finds command in commands root", func(t *testing.T) {
		r, root := newTestResolver(t)
		want := writeCommand(t, root, "", "commit")

		got, err := r.Resolve("commit")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("finds command in conventional subdirectory", func(t *testing.T) {
		r, root := newTestResolver(t)
		want := writeCommand(t, root, "prps", "prp-create")

		got, err := r.Resolve("prp-create")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("probes subdirectories in priority order", func(t *testing.T) {
		r, root := newTestResolver(t)
		want := writeCommand(t, root, "prps", "review")
		writeCommand(t, root, "development", "review")

		got, err := r.Resolve("review")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("falls back to recursive scan", func(t *testing.T) {
		r, root := newTestResolver(t)
		want := writeCommand(t, root, "experimental/nested", "deep-command")

		got, err := r.Resolve("deep-command")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("relative path identifier resolves against project root", func(t *testing.T) {
		r, root := newTestResolver(t)
		want := writeCommand(t, root, "development", "custom")

		got, err := r.Resolve(filepath.Join(constants.CommandsRoot, "development", "custom.md"))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("absolute path identifier is used as-is", func(t *testing.T) {
		r, root := newTestResolver(t)
		want := writeCommand(t, root, "", "standalone")

		got, err := r.Resolve(want)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing path identifier fails", func(t *testing.T) {
		r, _ := newTestResolver(t)

		_, err := r.Resolve("nowhere/nothing.md")
		require.ErrorIs(t, err, errors.ErrCommandNotFound)
	})

	t.Run("unknown name fails with not found", func(t *testing.T) {
		r, root := newTestResolver(t)
		writeCommand(t, root, "", "commit")

		_, err := r.Resolve("does-not-exist")
		require.ErrorIs(t, err, errors.ErrCommandNotFound)
	})

	t.Run("empty identifier fails", func(t *testing.T) {
		r, _ := newTestResolver(t)

		_, err := r.Resolve("")
		require.ErrorIs(t, err, errors.ErrEmptyValue)
	})
}

func TestList(t *testing.T) {
	t.Run("lists templates sorted by dir then name", func(t *testing.T) {
		root := t.TempDir()
		cfg := config.Default()
		cfg.Paths.ProjectRoot = root

		writeCommand(t, root, "prps", "prp-create")
		writeCommand(t, root, "", "commit")
		commitPath := filepath.Join(root, constants.CommandsRoot, "commit.md")
		require.NoError(t, os.WriteFile(commitPath,
			[]byte("---\ndescription: commit staged work\n---\nbody\n"), 0o600))

		infos, err := List(cfg)
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, "commit", infos[0].Name)
		assert.Empty(t, infos[0].Dir)
		assert.Equal(t, "commit staged work", infos[0].Description)
		assert.Equal(t, "prp-create", infos[1].Name)
		assert.Equal(t, "prps", infos[1].Dir)
	})

	t.Run("empty commands root lists nothing", func(t *testing.T) {
		cfg := config.Default()
		cfg.Paths.ProjectRoot = t.TempDir()

		infos, err := List(cfg)
		require.NoError(t, err)
		assert.Empty(t, infos)
	})
}
