// Package constants provides centralized constant values used throughout prpflow.
// This file contains backend tool capability constants.
package constants

// Backend CLI defaults.
const (
	// DefaultBackendCommand is the backend CLI invoked for command execution.
	DefaultBackendCommand = "claude"

	// HeadlessFlag is the backend flag that selects single-shot (print) mode.
	HeadlessFlag = "-p"

	// OutputFormatFlag is the backend flag that selects the output format.
	OutputFormatFlag = "--output-format"

	// AllowedToolsFlag is the backend flag that configures the tool allow-list.
	AllowedToolsFlag = "--allowedTools"
)

// DefaultAllowedTools is the fixed tool allow-list passed to the backend when
// neither the command template frontmatter nor the --allowed-tools flag
// overrides it. It covers editing, shell, search, and task capabilities.
//
//nolint:gochecknoglobals // Constant-like ordered list
var DefaultAllowedTools = []string{
	"Edit",
	"MultiEdit",
	"Write",
	"NotebookEdit",
	"Bash",
	"LS",
	"Read",
	"NotebookRead",
	"Grep",
	"Glob",
	"WebFetch",
	"WebSearch",
	"TodoRead",
	"TodoWrite",
	"Agent",
	"Task",
}
