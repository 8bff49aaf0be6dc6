// Package cli provides the command-line interface for prpflow.
package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mrz1836/prpflow/internal/command"
	"github.com/mrz1836/prpflow/internal/tui"
)

// AddCommandsCommand adds the commands command to the root command.
func AddCommandsCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newCommandsCmd(flags))
}

// newCommandsCmd creates the commands command, which lists every resolvable
// command template under the commands root.
func newCommandsCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List available command templates",
		Long: `List every command template under the commands root, with its
subdirectory and frontmatter description.

Examples:
  prpflow commands
  prpflow commands -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommands(cmd.OutOrStdout(), flags)
		},
	}
}

// runCommands executes the commands command.
func runCommands(w io.Writer, flags *GlobalFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	infos, err := command.List(cfg)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return tui.NewJSONOutput(w).JSON(infos)
	}

	if len(infos) == 0 {
		_, _ = fmt.Fprintf(w, "no command templates found under %s\n", cfg.CommandsRoot())
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tDIR\tDESCRIPTION")
	for _, info := range infos {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Name, info.Dir, info.Description)
	}
	return tw.Flush()
}
