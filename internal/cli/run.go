// Package cli provides the command-line interface for prpflow.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/prpflow/internal/backend"
	"github.com/mrz1836/prpflow/internal/command"
	"github.com/mrz1836/prpflow/internal/constants"
	"github.com/mrz1836/prpflow/internal/errors"
)

// AddRunCommand adds the run command to the root command.
func AddRunCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newRunCmd(flags))
}

// runOptions contains all options for the run command.
type runOptions struct {
	interactive  bool
	outputFormat string
	allowedTools string
}

// newRunCmd creates the run command, the direct surface over the command
// invoker: resolve a command, expand its template, invoke the backend once.
func newRunCmd(flags *GlobalFlags) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <command> [arguments]",
		Short: "Resolve a command template and invoke the backend with it",
		Long: `Resolve a command by name or path, expand its template with the given
arguments, and invoke the backend CLI.

The command is resolved against the commands root (.claude/commands by
default): an identifier ending in .md is treated as a path, otherwise the
conventional subdirectories are probed in order, falling back to a recursive
scan.

Examples:
  prpflow run prp-create "add retry logic to the HTTP client"
  prpflow run development/my-command.md "arg1 arg2"
  prpflow run commit
  prpflow run prp-execute PRPs/retry-logic.md --output-format json
  prpflow run debug-session -i`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments := ""
			if len(args) > 1 {
				arguments = args[1]
			}
			return runRun(cmd.Context(), flags, args[0], arguments, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false,
		"Deliver the prompt to a long-lived backend session via stdin")
	cmd.Flags().StringVar(&opts.outputFormat, "output-format", constants.OutputFormatText,
		"Backend output format (text|json|stream-json)")
	cmd.Flags().StringVar(&opts.allowedTools, "allowed-tools", "",
		"Comma-separated tool allow-list (default: editing/shell/search/task tools)")

	return cmd
}

// runRun executes the run command.
func runRun(ctx context.Context, flags *GlobalFlags, identifier, arguments string, opts runOptions) error {
	if !isValidBackendFormat(opts.outputFormat) {
		return fmt.Errorf("%w: %q must be one of text, json, stream-json",
			errors.ErrInvalidOutputFormat, opts.outputFormat)
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	logger := GetLogger()

	resolver := command.NewResolver(cfg, logger)
	path, err := resolver.Resolve(identifier)
	if err != nil {
		logger.Error().Err(err).Str("command", identifier).Msg("command resolution failed")
		return err
	}

	tmpl, err := command.LoadTemplate(path)
	if err != nil {
		return err
	}

	mode := backend.ModeStream
	if opts.interactive {
		mode = backend.ModeInteractive
	}

	// Allow-list precedence: flag > template frontmatter > configured default.
	tools := splitToolList(opts.allowedTools)
	if len(tools) == 0 {
		tools = tmpl.Meta.AllowedTools
	}

	req := &backend.Request{
		Prompt:       command.Expand(tmpl.Body, arguments),
		Mode:         mode,
		OutputFormat: opts.outputFormat,
		AllowedTools: tools,
		WorkingDir:   cfg.Paths.ProjectRoot,
	}

	runner := backend.NewCLIRunner(&cfg.Backend, nil, backend.WithLogger(logger))
	result, err := runner.Invoke(ctx, req)
	if err != nil {
		logger.Error().Err(err).Str("command", identifier).Str("path", path).Msg("backend invocation failed")
		return err
	}

	logger.Debug().Int("exit_code", result.ExitCode).Str("command", identifier).Msg("backend finished")
	return nil
}

// isValidBackendFormat checks a backend --output-format value.
func isValidBackendFormat(format string) bool {
	switch format {
	case constants.OutputFormatText, constants.OutputFormatJSON, constants.OutputFormatStreamJSON:
		return true
	}
	return false
}

// splitToolList parses a comma-separated allow-list flag value.
func splitToolList(raw string) []string {
	var tools []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tools = append(tools, trimmed)
		}
	}
	return tools
}
