package command

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mrz1836/prpflow/internal/config"
	"github.com/mrz1836/prpflow/internal/constants"
	"github.com/mrz1836/prpflow/internal/errors"
)

// Info describes one resolvable command template.
type Info struct {
	// Name is the command identifier (base name, suffix stripped).
	Name string `json:"name"`

	// Dir is the template's directory relative to the commands root.
	// Empty for templates in the root itself.
	Dir string `json:"dir,omitempty"`

	// Path is the template document path.
	Path string `json:"path"`

	// Description comes from the template's frontmatter, when present.
	Description string `json:"description,omitempty"`
}

// List returns every command template under the commands root, sorted by
// directory then name. Templates that cannot be read are skipped.
func List(cfg *config.Config) ([]Info, error) {
	root := cfg.CommandsRoot()

	var infos []Info
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), constants.TemplateSuffix) {
			return nil //nolint:nilerr // unreadable entries are skipped, not fatal
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil //nolint:nilerr // outside the root; skip
		}

		info := Info{
			Name: strings.TrimSuffix(d.Name(), constants.TemplateSuffix),
			Dir:  filepath.Dir(rel),
			Path: path,
		}
		if info.Dir == "." {
			info.Dir = ""
		}
		if tmpl, loadErr := LoadTemplate(path); loadErr == nil {
			info.Description = tmpl.Meta.Description
		}
		infos = append(infos, info)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to scan commands root %s", root)
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Dir != infos[j].Dir {
			return infos[i].Dir < infos[j].Dir
		}
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}
