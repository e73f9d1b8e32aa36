// Package catalog loads named template definitions from YAML or JSON files
// and seeds registries with the masters they describe. It is the collaborator
// a template service uses when masters are authored as data instead of built
// in code; the clone layer never depends on it.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-doctmpl/pkg/registry"
)

// LoadFS walks the provided filesystem and parses every catalog file it
// finds. Files declare templates under a top-level `templates:` mapping
// keyed by registry name. When fsys is nil or holds no catalog files, the
// result is empty. Duplicate template names across files are an error.
func LoadFS(fsys fs.FS) ([]Definition, error) {
	if fsys == nil {
		return nil, nil
	}

	byName := make(map[string]Definition)
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		var doc catalogFile
		// yaml.v3 handles JSON input too, so one decoder covers both
		// catalog formats.
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("catalog: parse %s: %w", path, err)
		}

		for name, def := range doc.Templates {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				return fmt.Errorf("catalog: file %s defines an empty template name", path)
			}
			if prev, exists := byName[trimmed]; exists {
				return fmt.Errorf("catalog: duplicate template %q (files %s and %s)", trimmed, prev.Source, path)
			}
			if strings.TrimSpace(def.Title) == "" {
				return fmt.Errorf("catalog: template %q in %s has no title", trimmed, path)
			}
			def.Name = trimmed
			def.Source = path
			byName[trimmed] = def
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	defs := make([]Definition, 0, len(byName))
	for _, def := range byName {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

// LoadDir loads catalog files from a directory on disk.
func LoadDir(dir string) ([]Definition, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("catalog: directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog: %s is not a directory", dir)
	}
	return LoadFS(os.DirFS(dir))
}

// Seed materialises every definition and registers the resulting master
// under the definition's name.
func Seed(reg *registry.Registry, defs []Definition) error {
	for _, def := range defs {
		if err := reg.Register(def.Name, def.Template()); err != nil {
			return fmt.Errorf("catalog: seed %q: %w", def.Name, err)
		}
	}
	return nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
