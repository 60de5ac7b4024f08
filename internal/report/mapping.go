// Copyright (c) 2026 Keymaster Team
// Secret Santa - gift exchange page generator
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/toeirei/secretsanta/internal/model"
)

// ErrMappingExists is returned when a mapping file is already present and
// overwriting was not forced. Replacing it would orphan links that were
// already handed out.
var ErrMappingExists = errors.New("mapping file already exists")

// MappingEntry is one row of the persisted mapping.
type MappingEntry struct {
	Giver    string `yaml:"giver" json:"giver"`
	Receiver string `yaml:"receiver" json:"receiver"`
	Filename string `yaml:"filename" json:"filename"`
	URL      string `yaml:"url" json:"url"`
}

// Mapping is the persisted form of a run.
type Mapping struct {
	Entries []MappingEntry `yaml:"entries" json:"entries"`
}

// NewMapping converts links, in the order given.
func NewMapping(links []model.PublishedLink) Mapping {
	m := Mapping{Entries: make([]MappingEntry, 0, len(links))}
	for _, l := range links {
		m.Entries = append(m.Entries, MappingEntry{
			Giver:    l.Giver.String(),
			Receiver: l.Receiver.String(),
			Filename: l.Filename,
			URL:      l.URL,
		})
	}
	return m
}

// SaveMapping writes the mapping to path. Files ending in .json are written
// as JSON, everything else as YAML. An existing file is left untouched
// unless force is set.
func SaveMapping(path string, links []model.PublishedLink, force bool) error {
	m := NewMapping(links)

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = yaml.MarshalWithOptions(m, yaml.JSON())
	} else {
		data, err = yaml.Marshal(m)
	}
	if err != nil {
		return fmt.Errorf("report: encode mapping: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrMappingExists, path)
		}
		return fmt.Errorf("report: open mapping file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("report: write mapping file: %w", err)
	}
	return f.Close()
}

// LoadMapping reads a mapping written by SaveMapping. JSON input parses as
// YAML, so one decoder covers both formats.
func LoadMapping(path string) (Mapping, error) {
	var m Mapping
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("report: decode mapping %s: %w", path, err)
	}
	return m, nil
}
