// Package store resolves configuration and loads the FAQ catalog, either the
// built-in question set or a YAML file.
package store

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"tableflip.dev/faq/pkg/faq"
)

// document is the on-disk catalog layout:
//
//	entries:
//	  - id: 1
//	    question: ...
//	    answer: ...
//	    icon: zap
//	    category: Basics
//	    tags: [React, Fundamentals]
type document struct {
	Entries []faq.Entry `yaml:"entries"`
}

// Load resolves the catalog named by cfg. A nil cfg loads configuration from
// the environment.
func Load(cfg Config) (*faq.Catalog, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if cfg.DataPath() == "" {
		return faq.Default(), nil
	}
	return LoadFile(cfg.DataPath())
}

// LoadFile decodes and validates a catalog file.
func LoadFile(path string) (*faq.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads a YAML catalog document.
func Decode(r io.Reader) (*faq.Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return faq.NewCatalog(doc.Entries)
}

// Encode writes the catalog in the layout Decode reads.
func Encode(w io.Writer, c *faq.Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Entries: c.Entries()}); err != nil {
		return err
	}
	return enc.Close()
}
