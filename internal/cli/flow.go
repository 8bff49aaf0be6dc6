// Package cli provides the command-line interface for prpflow.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mrz1836/prpflow/internal/backend"
	"github.com/mrz1836/prpflow/internal/command"
	"github.com/mrz1836/prpflow/internal/tui"
	"github.com/mrz1836/prpflow/internal/workflow"
)

// AddFlowCommand adds the flow command to the root command.
func AddFlowCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newFlowCmd(flags))
}

// newFlowCmd creates the flow command, which runs the full PRP pipeline.
func newFlowCmd(flags *GlobalFlags) *cobra.Command {
	var opts workflow.Options

	cmd := &cobra.Command{
		Use:   "flow [feature]",
		Short: "Run the PRP workflow: create, execute, commit, open PR",
		Long: `Run the four-step PRP workflow for a feature description:

  1. create   - invoke the create command and extract the PRP document path
  2. execute  - invoke the execute command against the PRP document
  3. commit   - invoke the commit command (skipped with --no-commit)
  4. open-pr  - invoke the PR command (skipped with --no-pr or --no-commit)

Any step failure halts the workflow; completed steps are not rolled back.

Examples:
  prpflow flow "add retry logic to the HTTP client"
  prpflow flow "fix parser crash" --no-pr
  prpflow flow --skip-create --prp-path PRPs/retry-logic.md
  prpflow flow "ship dark mode" --pr-title "feat: dark mode"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Feature = args[0]
			}
			return runFlow(cmd.Context(), cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.PRPPath, "prp-path", "",
		"Existing PRP document path (required with --skip-create)")
	cmd.Flags().BoolVar(&opts.SkipCreate, "skip-create", false,
		"Skip the create step and use --prp-path directly")
	cmd.Flags().BoolVar(&opts.NoCommit, "no-commit", false,
		"Skip the commit step (also skips open-pr)")
	cmd.Flags().BoolVar(&opts.NoPR, "no-pr", false,
		"Skip the open-pr step")
	cmd.Flags().StringVar(&opts.PRTitle, "pr-title", "",
		"Pull request title (default: configured title)")

	return cmd
}

// runFlow executes the flow command.
func runFlow(ctx context.Context, cmd *cobra.Command, flags *GlobalFlags, opts workflow.Options) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	logger := GetLogger()

	tui.CheckNoColor()
	out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)

	resolver := command.NewResolver(cfg, logger)
	runner := backend.NewCLIRunner(&cfg.Backend, nil, backend.WithLogger(logger))
	pipeline := workflow.NewPipeline(cfg, resolver, runner, out, logger)

	if err := pipeline.Run(ctx, opts); err != nil {
		out.Error(err)
		return err
	}
	return nil
}
