// Package errors provides centralized error handling for prpflow.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrCommandNotFound indicates that a command identifier could not be
	// resolved to any template document under the commands root.
	ErrCommandNotFound = errors.New("command not found")

	// ErrBackendInvocation indicates that the backend CLI failed to execute
	// or returned a non-zero exit code.
	ErrBackendInvocation = errors.New("backend invocation failed")

	// ErrPRPPathNotFound indicates that no PRP document path could be
	// extracted from the create step's captured output.
	ErrPRPPathNotFound = errors.New("prp path not found in output")

	// ErrMissingArtifact indicates that an extracted or supplied PRP path
	// does not exist on disk.
	ErrMissingArtifact = errors.New("prp document does not exist")

	// ErrInvalidFlags indicates an invalid combination of CLI flags
	// (e.g. --skip-create without --prp-path).
	ErrInvalidFlags = errors.New("invalid flag combination")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidBackend indicates an invalid backend configuration value.
	ErrConfigInvalidBackend = errors.New("invalid backend configuration")

	// ErrConfigInvalidPaths indicates an invalid paths configuration value.
	ErrConfigInvalidPaths = errors.New("invalid paths configuration")

	// ErrConfigInvalidWorkflow indicates an invalid workflow configuration value.
	ErrConfigInvalidWorkflow = errors.New("invalid workflow configuration")

	// ErrNotInProjectDir indicates that no project root could be located
	// from the current working directory.
	ErrNotInProjectDir = errors.New("not in a project directory")

	// ErrCommandNotConfigured indicates that a mock command was not configured in tests.
	ErrCommandNotConfigured = errors.New("command not configured")
)
