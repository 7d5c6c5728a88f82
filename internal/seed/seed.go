// Copyright (c) 2026 Backlist Club. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed imports a catalog from a YAML file.

Every record goes through the admin services, so the same validation and
defaults apply as for records created in the back-office. Books refer to tags
by the key given in the file:

	tags:
	  - key: krimi
	    name: Krimi
	    tag_type: genre
	books:
	  - title: Der Process
	    author: Kafka, Franz
	    tags: [krimi]
*/
package seed

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/backlist/internal/core/affiliate"
	"github.com/taibuivan/backlist/internal/core/book"
	"github.com/taibuivan/backlist/internal/core/curator"
	"github.com/taibuivan/backlist/internal/core/tag"
)

// Catalog is the content of a seed file.
type Catalog struct {
	Tags       []Tag               `yaml:"tags"`
	Curators   []curator.Payload   `yaml:"curators"`
	Affiliates []affiliate.Payload `yaml:"affiliates"`
	Books      []Book              `yaml:"books"`
}

// Tag is a tag with the key books use to refer to it.
type Tag struct {
	Key         string `yaml:"key"`
	tag.Payload `yaml:",inline"`
}

// Book is a book with the keys of its tags.
type Book struct {
	book.Payload `yaml:",inline"`
	Tags         []string `yaml:"tags"`
}

// Load reads and parses the seed file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a seed document. Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	catalog := &Catalog{}
	if err := decoder.Decode(catalog); err != nil {
		return nil, fmt.Errorf("seed: parse: %w", err)
	}
	return catalog, nil
}

// Check reports duplicate or missing tag keys and unknown tag references.
func (catalog *Catalog) Check() error {
	keys := make(map[string]bool, len(catalog.Tags))
	for i, entry := range catalog.Tags {
		if entry.Key == "" {
			return fmt.Errorf("seed: tag %d (%q) has no key", i, entry.Name)
		}
		if keys[entry.Key] {
			return fmt.Errorf("seed: duplicate tag key %q", entry.Key)
		}
		keys[entry.Key] = true
	}

	for _, entry := range catalog.Books {
		for _, key := range entry.Tags {
			if !keys[key] {
				return fmt.Errorf("seed: book %q refers to unknown tag %q", entry.Title, key)
			}
		}
	}
	return nil
}
