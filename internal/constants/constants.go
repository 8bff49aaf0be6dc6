// Package constants provides centralized constant values used throughout prpflow.
package constants

// Home directory layout.
const (
	// AppHome is the per-user prpflow home directory name (under $HOME).
	AppHome = ".prpflow"

	// LogsDir is the subdirectory of the prpflow home that holds log files.
	LogsDir = "logs"

	// CLILogFileName is the name of the global CLI log file for host operations.
	// This file is located in ~/.prpflow/logs/prpflow.log
	CLILogFileName = "prpflow.log"
)

// Configuration file names.
const (
	// GlobalConfigName is the name of the global prpflow configuration file.
	// This file is located in the prpflow home directory.
	GlobalConfigName = "config.yaml"

	// ProjectConfigName is the name of the project-specific prpflow
	// configuration file. This file is located in the project root directory.
	ProjectConfigName = ".prpflow.yaml"
)

// Log rotation settings for the global CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of a rotated file.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated files.
	LogCompress = true
)

// Command template layout.
const (
	// TemplateSuffix is the file suffix of command template documents.
	TemplateSuffix = ".md"

	// CommandsRoot is the directory under the project root that holds
	// command template documents.
	CommandsRoot = ".claude/commands"

	// FrontmatterDelimiter is the line that opens and closes the optional
	// metadata block at the top of a command template.
	FrontmatterDelimiter = "---"

	// ArgumentsPlaceholder is the whole-arguments token substituted in
	// command templates.
	ArgumentsPlaceholder = "$ARGUMENTS"
)

// Backend output formats for headless invocations.
const (
	// OutputFormatText is the default human-readable backend output format.
	OutputFormatText = "text"

	// OutputFormatJSON is the single JSON object backend output format.
	OutputFormatJSON = "json"

	// OutputFormatStreamJSON is the line-delimited JSON backend output format.
	OutputFormatStreamJSON = "stream-json"
)

// CommandSubdirs are the conventional subdirectories probed, in order, when
// resolving a command name under the commands root. The empty entry is the
// commands root itself.
//
//nolint:gochecknoglobals // Constant-like ordered list
var CommandSubdirs = []string{"", "prps", "development", "code-quality", "git-operations"}

// Workflow step command names and conventions.
const (
	// CommandCreate is the command invoked by the create step.
	CommandCreate = "prp-create"

	// CommandExecute is the command invoked by the execute step.
	CommandExecute = "prp-execute"

	// CommandCommit is the command invoked by the commit step.
	CommandCommit = "commit"

	// CommandOpenPR is the command invoked by the open-pr step.
	CommandOpenPR = "create-pr"

	// PRPDir is the directory convention for generated PRP documents,
	// relative to the project root. The create command is expected to
	// report paths under this prefix.
	PRPDir = "PRPs"

	// DefaultPRTitle is used when the open-pr step runs without an
	// explicit --pr-title.
	DefaultPRTitle = "Automated PRP implementation"
)
