// Package config provides configuration management for prpflow with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (applied by the caller after Load)
//  2. Environment variables (PRPFLOW_* prefix)
//  3. Project config (.prpflow.yaml in the project root)
//  4. Global config (~/.prpflow/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import "path/filepath"

// Config is the root configuration structure for prpflow.
type Config struct {
	// Paths contains filesystem locations. The project root is resolved
	// once at startup and passed explicitly so tests can inject a
	// temporary root.
	Paths PathsConfig `yaml:"paths" mapstructure:"paths"`

	// Backend contains settings for the external backend CLI that performs
	// the actual work described by expanded prompts.
	Backend BackendConfig `yaml:"backend" mapstructure:"backend"`

	// Workflow contains settings for the four-step PRP workflow.
	Workflow WorkflowConfig `yaml:"workflow" mapstructure:"workflow"`
}

// PathsConfig contains filesystem locations used by resolution.
type PathsConfig struct {
	// ProjectRoot is the absolute path of the project being operated on.
	// Empty in config files; populated at startup from --project-root,
	// PRPFLOW_PATHS_PROJECT_ROOT, or git discovery.
	ProjectRoot string `yaml:"project_root" mapstructure:"project_root"`

	// CommandsDir is the directory holding command template documents,
	// relative to the project root. Default: ".claude/commands"
	CommandsDir string `yaml:"commands_dir" mapstructure:"commands_dir"`
}

// BackendConfig contains settings for the backend CLI.
type BackendConfig struct {
	// Command is the backend executable name. Default: "claude"
	Command string `yaml:"command" mapstructure:"command"`

	// OutputFormat is the default headless output format
	// (text, json, or stream-json). Default: "text"
	OutputFormat string `yaml:"output_format" mapstructure:"output_format"`

	// AllowedTools is the default tool allow-list passed to the backend.
	AllowedTools []string `yaml:"allowed_tools" mapstructure:"allowed_tools"`
}

// WorkflowConfig contains settings for the PRP workflow steps.
type WorkflowConfig struct {
	// CreateCommand is the command name invoked by the create step.
	CreateCommand string `yaml:"create_command" mapstructure:"create_command"`

	// ExecuteCommand is the command name invoked by the execute step.
	ExecuteCommand string `yaml:"execute_command" mapstructure:"execute_command"`

	// CommitCommand is the command name invoked by the commit step.
	CommitCommand string `yaml:"commit_command" mapstructure:"commit_command"`

	// OpenPRCommand is the command name invoked by the open-pr step.
	OpenPRCommand string `yaml:"open_pr_command" mapstructure:"open_pr_command"`

	// PRTitle is the default pull request title when --pr-title is not given.
	PRTitle string `yaml:"pr_title" mapstructure:"pr_title"`
}

// CommandsRoot returns the absolute path of the commands directory.
func (c *Config) CommandsRoot() string {
	return filepath.Join(c.Paths.ProjectRoot, c.Paths.CommandsDir)
}
