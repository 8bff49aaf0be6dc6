// Package cli provides the command-line interface for prpflow.
package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/mrz1836/prpflow/internal/command"
)

var (
	glamourRenderer     *glamour.TermRenderer //nolint:gochecknoglobals // cached renderer for performance
	glamourRendererOnce sync.Once             //nolint:gochecknoglobals // sync.Once for renderer initialization
)

// getGlamourRenderer returns a cached glamour renderer for markdown rendering.
// The renderer is initialized once and reused across all calls.
func getGlamourRenderer() *glamour.TermRenderer {
	glamourRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			glamourRenderer = r
		}
	})
	return glamourRenderer
}

// AddShowCommand adds the show command to the root command.
func AddShowCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newShowCmd(flags))
}

// newShowCmd creates the show command, which renders a command template.
func newShowCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <command>",
		Short: "Render a command template as markdown",
		Long: `Resolve a command and render its template body (frontmatter stripped)
as markdown in the terminal.

Examples:
  prpflow show prp-create
  prpflow show development/my-command.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), flags, args[0])
		},
	}
}

// runShow executes the show command.
func runShow(w io.Writer, flags *GlobalFlags, identifier string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	resolver := command.NewResolver(cfg, GetLogger())
	path, err := resolver.Resolve(identifier)
	if err != nil {
		return err
	}

	tmpl, err := command.LoadTemplate(path)
	if err != nil {
		return err
	}

	if tmpl.Meta.Description != "" {
		_, _ = fmt.Fprintf(w, "# %s\n\n", tmpl.Meta.Description)
	}

	if renderer := getGlamourRenderer(); renderer != nil {
		if rendered, renderErr := renderer.Render(tmpl.Body); renderErr == nil {
			_, _ = fmt.Fprint(w, rendered)
			return nil
		}
	}

	// Renderer unavailable (e.g. no usable terminal profile): plain body.
	_, _ = fmt.Fprintln(w, tmpl.Body)
	return nil
}
