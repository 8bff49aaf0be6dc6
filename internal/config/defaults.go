package config

import (
	"github.com/spf13/viper"

	"github.com/mrz1836/prpflow/internal/constants"
)

// setDefaults registers built-in defaults on a Viper instance.
// These form the lowest-precedence configuration layer.
func setDefaults(v *viper.Viper) {
	v.SetDefault("paths.commands_dir", constants.CommandsRoot)

	v.SetDefault("backend.command", constants.DefaultBackendCommand)
	v.SetDefault("backend.output_format", constants.OutputFormatText)
	v.SetDefault("backend.allowed_tools", constants.DefaultAllowedTools)

	v.SetDefault("workflow.create_command", constants.CommandCreate)
	v.SetDefault("workflow.execute_command", constants.CommandExecute)
	v.SetDefault("workflow.commit_command", constants.CommandCommit)
	v.SetDefault("workflow.open_pr_command", constants.CommandOpenPR)
	v.SetDefault("workflow.pr_title", constants.DefaultPRTitle)
}

// Default returns a Config populated with built-in defaults only.
// This is primarily useful for tests that need a valid baseline config.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			CommandsDir: constants.CommandsRoot,
		},
		Backend: BackendConfig{
			Command:      constants.DefaultBackendCommand,
			OutputFormat: constants.OutputFormatText,
			AllowedTools: append([]string(nil), constants.DefaultAllowedTools...),
		},
		Workflow: WorkflowConfig{
			CreateCommand:  constants.CommandCreate,
			ExecuteCommand: constants.CommandExecute,
			CommitCommand:  constants.CommandCommit,
			OpenPRCommand:  constants.CommandOpenPR,
			PRTitle:        constants.DefaultPRTitle,
		},
	}
}
