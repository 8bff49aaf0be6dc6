// Package command resolves command identifiers to template documents and
// prepares prompt text from them.
//
// A command reference is either a filesystem path to a .md document or a
// short name searched under the commands root. Resolution is deterministic:
// an ordered list of strategies is tried until one yields an existing
// document, and failure is surfaced as errors.ErrCommandNotFound.
package command

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mrz1836/prpflow/internal/config"
	"github.com/mrz1836/prpflow/internal/constants"
	"github.com/mrz1836/prpflow/internal/errors"
)

// strategy is a single resolution attempt. Implementations report whether
// they located an existing document for the identifier.
type strategy interface {
	// Try returns the document path for the identifier, and whether one was found.
	Try(identifier string) (string, bool)
}

// fixedLocationStrategy probes the conventional subdirectories under the
// commands root, in priority order, for <identifier>.md.
type fixedLocationStrategy struct {
	commandsRoot string
}

func (s *fixedLocationStrategy) Try(identifier string) (string, bool) {
	for _, subdir := range constants.CommandSubdirs {
		candidate := filepath.Join(s.commandsRoot, subdir, identifier+constants.TemplateSuffix)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// recursiveScanStrategy walks the whole commands root looking for a document
// whose base name (suffix stripped) equals the identifier. This is the
// fallback for commands living outside the conventional subdirectories.
type recursiveScanStrategy struct {
	commandsRoot string
}

func (s *recursiveScanStrategy) Try(identifier string) (string, bool) {
	var found string
	_ = filepath.WalkDir(s.commandsRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil //nolint:nilerr // unreadable entries are skipped, not fatal
		}
		name := d.Name()
		if strings.TrimSuffix(name, constants.TemplateSuffix) == identifier &&
			strings.HasSuffix(name, constants.TemplateSuffix) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	return found, found != ""
}

// Resolver turns command identifiers into template document paths.
type Resolver struct {
	projectRoot  string
	commandsRoot string
	strategies   []strategy
	logger       zerolog.Logger
}

// NewResolver creates a Resolver for the given configuration.
func NewResolver(cfg *config.Config, logger zerolog.Logger) *Resolver {
	commandsRoot := cfg.CommandsRoot()
	return &Resolver{
		projectRoot:  cfg.Paths.ProjectRoot,
		commandsRoot: commandsRoot,
		strategies: []strategy{
			&fixedLocationStrategy{commandsRoot: commandsRoot},
			&recursiveScanStrategy{commandsRoot: commandsRoot},
		},
		logger: logger,
	}
}

// Resolve maps an identifier to an existing template document path.
//
// An identifier ending in the template suffix is treated as a path: absolute
// paths are used as-is, relative ones are joined to the project root. Any
// other identifier is tried against each resolution strategy in order.
func (r *Resolver) Resolve(identifier string) (string, error) {
	if identifier == "" {
		return "", errors.Wrap(errors.ErrEmptyValue, "command identifier")
	}

	if strings.HasSuffix(identifier, constants.TemplateSuffix) {
		path := identifier
		if !filepath.IsAbs(path) {
			path = filepath.Join(r.projectRoot, path)
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
		return "", errors.Wrapf(errors.ErrCommandNotFound, "no such document: %s", path)
	}

	for _, s := range r.strategies {
		if path, ok := s.Try(identifier); ok {
			r.logger.Debug().
				Str("command", identifier).
				Str("path", path).
				Msg("resolved command")
			return path, nil
		}
	}

	return "", errors.Wrapf(errors.ErrCommandNotFound, "%q not found under %s",
		identifier, r.commandsRoot)
}
