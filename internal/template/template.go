// Package template discovers deployable template directories. A template
// is any directory holding a terraform.tfvars file; the catalog keys them
// by their path relative to the search root.
package template

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// VarsFileName is the variables file every template must carry.
const VarsFileName = "terraform.tfvars"

// Template is one deployable configuration target.
type Template struct {
	Name       string `json:"name"`
	Path       string `json:"-"`
	TfvarsPath string `json:"-"`
}

// Catalog holds the discovered templates in walk order.
type Catalog struct {
	templates []Template
	byName    map[string]Template
}

// Discover walks root for template directories. When root itself contains
// a terraform.tfvars (the single-template workspace case) the catalog has
// exactly one entry named after the root directory. Dot-directories such
// as .terraform are skipped: provider caches copy modules, tfvars
// included, and those copies are not deployable targets.
func Discover(root string) (*Catalog, error) {
	root = filepath.Clean(root)
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("template root %s is not accessible: %w", root, err)
	}

	c := &Catalog{byName: make(map[string]Template)}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		varsPath := filepath.Join(path, VarsFileName)
		if _, err := os.Stat(varsPath); err != nil {
			return nil
		}
		name := templateName(root, path)
		c.add(Template{Name: name, Path: path, TfvarsPath: varsPath})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for templates: %w", root, err)
	}
	return c, nil
}

// templateName derives the catalog key for a template directory.
func templateName(root, path string) string {
	if path == root {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

func (c *Catalog) add(t Template) {
	if _, ok := c.byName[t.Name]; ok {
		return
	}
	c.byName[t.Name] = t
	c.templates = append(c.templates, t)
}

// List returns all templates in discovery order.
func (c *Catalog) List() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Get returns the template registered under name.
func (c *Catalog) Get(name string) (Template, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Len returns the number of discovered templates.
func (c *Catalog) Len() int { return len(c.templates) }
