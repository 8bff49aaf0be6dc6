package command

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/prpflow/internal/constants"
	"github.com/mrz1836/prpflow/internal/errors"
)

// positionalPattern matches 1-based positional placeholders like $1, $2, $12.
var positionalPattern = regexp.MustCompile(`\$(\d+)`)

// StringList is a frontmatter field that accepts either a YAML sequence or a
// comma-separated scalar. Command files in the wild use both spellings for
// allowed-tools.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	case yaml.ScalarNode:
		var raw string
		if err := value.Decode(&raw); err != nil {
			return err
		}
		var items []string
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				items = append(items, trimmed)
			}
		}
		*l = items
		return nil
	default:
		return errors.Wrap(errors.ErrEmptyValue, "allowed-tools must be a list or string")
	}
}

// Frontmatter is the optional metadata block at the top of a command template.
type Frontmatter struct {
	// Description is a short summary shown by `prpflow commands`.
	Description string `yaml:"description"`

	// AllowedTools overrides the default tool allow-list for this command.
	AllowedTools StringList `yaml:"allowed-tools"`
}

// Template is a loaded command template document.
type Template struct {
	// Path is the resolved document path.
	Path string

	// Body is the template text with the frontmatter block stripped.
	Body string

	// Meta holds parsed frontmatter fields. Zero value when the document
	// has no (or malformed) frontmatter.
	Meta Frontmatter
}

// LoadTemplate reads a command template document, strips its frontmatter
// block, and best-effort parses the block's metadata. Malformed YAML in the
// frontmatter does not fail the load; stripping is purely delimiter-based.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from resolution
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read command template %s", path)
	}

	meta, body, found := splitFrontmatter(string(data))
	tmpl := &Template{Path: path, Body: body}
	if found {
		// Metadata is advisory; ignore parse failures and keep the body.
		_ = yaml.Unmarshal([]byte(meta), &tmpl.Meta)
	}
	return tmpl, nil
}

// splitFrontmatter separates a leading metadata block from the document body.
// The block opens with a delimiter line at the very start of the file and
// closes with a matching delimiter line; leading whitespace after the closing
// delimiter is dropped so prompts never start with blank lines. When no
// closing delimiter exists the block is treated as absent and the full text
// (opening line included) is returned as the body.
func splitFrontmatter(content string) (meta, body string, found bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != constants.FrontmatterDelimiter {
		return "", content, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == constants.FrontmatterDelimiter {
			meta = strings.Join(lines[1:i], "\n")
			body = strings.TrimLeft(strings.Join(lines[i+1:], "\n"), " \t\r\n")
			return meta, body, true
		}
	}

	// Unclosed block: keep everything.
	return "", content, false
}

// Expand substitutes the caller's argument string into a template body.
//
// Every occurrence of the whole-arguments placeholder is replaced with the
// raw argument string. The argument string is then split on whitespace and
// each 1-based positional placeholder ($1, $2, ...) is replaced with the
// corresponding value. Placeholders beyond the available argument count are
// left unexpanded.
func Expand(body, arguments string) string {
	expanded := strings.ReplaceAll(body, constants.ArgumentsPlaceholder, arguments)

	values := strings.Fields(arguments)
	return positionalPattern.ReplaceAllStringFunc(expanded, func(token string) string {
		index, err := strconv.Atoi(token[1:])
		if err != nil || index < 1 || index > len(values) {
			return token
		}
		return values[index-1]
	})
}
