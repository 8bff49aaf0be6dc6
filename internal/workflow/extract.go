// Package workflow runs the four-step PRP pipeline: create a PRP document,
// execute it, commit the result, and open a pull request.
package workflow

import (
	"fmt"
	"regexp"

	"github.com/mrz1836/prpflow/internal/constants"
	"github.com/mrz1836/prpflow/internal/errors"
)

// The create command reports the generated document as a path under the PRPs
// directory with a lowercase alphanumeric/hyphen/underscore filename. This is
// a fixed integration contract with the command templates, not configurable.
var (
	barePRPPattern     = regexp.MustCompile(fmt.Sprintf(`%s/[a-z0-9_-]+\%s`, regexp.QuoteMeta(constants.PRPDir), constants.TemplateSuffix))
	backtickPRPPattern = regexp.MustCompile(fmt.Sprintf("`(%s/[a-z0-9_-]+\\%s)`", regexp.QuoteMeta(constants.PRPDir), constants.TemplateSuffix))
)

// ExtractPRPPath scans captured create-step output for a PRP document path.
// A bare path is tried first, then the same path wrapped in backticks.
// Returns errors.ErrPRPPathNotFound when neither pattern matches.
func ExtractPRPPath(output string) (string, error) {
	if match := barePRPPattern.FindString(output); match != "" {
		return match, nil
	}
	if match := backtickPRPPattern.FindStringSubmatch(output); len(match) == 2 {
		return match[1], nil
	}
	return "", errors.Wrap(errors.ErrPRPPathNotFound, "create step output")
}
