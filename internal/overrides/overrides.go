// Package overrides loads the hand-maintained artist data file.
//
// The data file maps artist slugs to sparse Override records:
//
//	{
//	  "queen": {"about": "Legendary UK rock band."},
//	  "mor-ve-otesi": {"moods": ["🎸 Enerjik"], "why": "..."}
//	}
//
// A missing file is not an error; it simply yields no overrides. A file
// that exists but cannot be parsed is.
package overrides

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/handiism/musicgenres/internal/model"
	"gopkg.in/yaml.v3"
)

// Store holds the overrides of one data file, keyed by slug.
type Store struct {
	dir     string
	records map[string]*model.Override
}

// Empty returns a Store without overrides.
func Empty() *Store {
	return &Store{records: map[string]*model.Override{}}
}

// Load reads the data file at path. Files ending in .yaml or .yml are
// decoded as YAML, anything else as JSON.
//
// Returns an empty Store if the file does not exist.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s := Empty()
			s.dir = filepath.Dir(path)
			return s, nil
		}
		return nil, fmt.Errorf("read overrides: %w", err)
	}

	records := map[string]*model.Override{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &records)
	default:
		err = json.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("parse overrides %s: %w", path, err)
	}
	if records == nil {
		records = map[string]*model.Override{}
	}

	return &Store{dir: filepath.Dir(path), records: records}, nil
}

// Get returns the override for slug, or nil if there is none.
func (s *Store) Get(slug string) *model.Override {
	return s.records[slug]
}

// Len returns the number of override records.
func (s *Store) Len() int {
	return len(s.records)
}

// Slugs returns the slugs that have a record, sorted.
func (s *Store) Slugs() []string {
	out := make([]string, 0, len(s.records))
	for slug := range s.records {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Path resolves a path written in the data file. Relative paths are taken
// relative to the data file's directory.
func (s *Store) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.dir, p)
}
