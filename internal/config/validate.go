package config

import (
	"fmt"

	"github.com/mrz1836/prpflow/internal/constants"
	"github.com/mrz1836/prpflow/internal/errors"
)

// validOutputFormats is the set of backend output formats accepted in config.
var validOutputFormats = map[string]bool{ //nolint:gochecknoglobals // Constant-like set
	constants.OutputFormatText:       true,
	constants.OutputFormatJSON:       true,
	constants.OutputFormatStreamJSON: true,
}

// Validate checks a Config for structural errors. It does not verify that
// paths exist on disk; resolution handles that per invocation.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := validatePaths(&cfg.Paths); err != nil {
		return err
	}
	if err := validateBackend(&cfg.Backend); err != nil {
		return err
	}
	return validateWorkflow(&cfg.Workflow)
}

func validatePaths(paths *PathsConfig) error {
	if paths.CommandsDir == "" {
		return fmt.Errorf("%w: commands_dir cannot be empty", errors.ErrConfigInvalidPaths)
	}
	return nil
}

func validateBackend(backend *BackendConfig) error {
	if backend.Command == "" {
		return fmt.Errorf("%w: command cannot be empty", errors.ErrConfigInvalidBackend)
	}
	if !validOutputFormats[backend.OutputFormat] {
		return fmt.Errorf("%w: output_format %q is not one of text, json, stream-json",
			errors.ErrConfigInvalidBackend, backend.OutputFormat)
	}
	return nil
}

func validateWorkflow(workflow *WorkflowConfig) error {
	names := map[string]string{
		"create_command":  workflow.CreateCommand,
		"execute_command": workflow.ExecuteCommand,
		"commit_command":  workflow.CommitCommand,
		"open_pr_command": workflow.OpenPRCommand,
	}
	for key, value := range names {
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", errors.ErrConfigInvalidWorkflow, key)
		}
	}
	return nil
}
