// Package catalog maps related documents to the glossary terms they discuss.
package catalog

import (
	_ "embed"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

//go:embed default.toml
var defaultCatalog string

// Document is an external paper associated with a list of glossary terms.
type Document struct {
	ID      string   `toml:"id" json:"id"`
	Title   string   `toml:"title" json:"title"`
	Authors string   `toml:"authors" json:"authors,omitempty"`
	Year    string   `toml:"year" json:"year,omitempty"`
	URL     string   `toml:"url" json:"url,omitempty"`
	Terms   []string `toml:"terms" json:"terms"`
}

// Catalog is an ordered list of documents.
type Catalog struct {
	Documents []Document `toml:"document"`
}

// Default returns the catalog bundled with the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(errors.Wrap(err, "bundled catalog is invalid"))
	}
	return c
}

// Parse decodes and validates a TOML catalog.
func Parse(data string) (*Catalog, error) {
	var c Catalog
	meta, err := toml.Decode(data, &c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog")
	}
	for _, key := range meta.Undecoded() {
		log.WithFields(log.Fields{
			"key": key.String(),
		}).Warn("unknown catalog key ignored")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a catalog file. An empty path yields the bundled catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}
	c, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}

// Validate checks that every document has a unique, non-empty ID.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Documents))
	for i, d := range c.Documents {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return errors.Errorf("document %d has no id", i+1)
		}
		if seen[id] {
			return errors.Errorf("duplicate document id %q", id)
		}
		seen[id] = true
	}
	return nil
}

// Related returns the documents listing term, in catalog order. Matching is
// exact: no case folding or trimming.
func (c *Catalog) Related(term string) []Document {
	var docs []Document
	for _, d := range c.Documents {
		for _, t := range d.Terms {
			if t == term {
				docs = append(docs, d)
				break
			}
		}
	}
	return docs
}
