package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mcunha/anvil/internal/models"
)

// Catalog is the on-disk template collection: one markdown file per
// template, identified by file name minus the .md extension.
type Catalog struct {
	dir string
}

func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Template reads and parses a single template by identifier.
func (c *Catalog) Template(name string) (*models.Template, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, name+".md"))
	if err != nil {
		return nil, fmt.Errorf("failed to read template %q: %w", name, err)
	}
	return Parse(string(content), name), nil
}

// All parses every .md file in the catalog directory. Files that cannot be
// read are skipped so one broken document does not hide the rest.
func (c *Catalog) All() ([]*models.Template, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates dir %q: %w", c.dir, err)
	}

	var all []*models.Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		tmpl, err := c.Template(name)
		if err != nil {
			continue
		}
		all = append(all, tmpl)
	}

	return all, nil
}
