package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Override is the optional per-artist record from the data file.
//
// Nil fields are absent from the document and fall back to defaults.
// Slices distinguish absent (nil) from an explicit empty list; both render
// the same placeholders.
type Override struct {
	Name        *string      `json:"name,omitempty" yaml:"name,omitempty"`
	Genre       *string      `json:"genre,omitempty" yaml:"genre,omitempty"`
	About       *string      `json:"about,omitempty" yaml:"about,omitempty"`
	Works       []string     `json:"works,omitempty" yaml:"works,omitempty"`
	Albums      []Album      `json:"albums,omitempty" yaml:"albums,omitempty"`
	CompareWith string       `json:"compare_with,omitempty" yaml:"compare_with,omitempty"`
	CompareRows []CompareRow `json:"compare_rows,omitempty" yaml:"compare_rows,omitempty"`
	Moods       []string     `json:"moods,omitempty" yaml:"moods,omitempty"`
	Why         string       `json:"why,omitempty" yaml:"why,omitempty"`

	// Image is a JPEG or PNG path, relative to the data file's directory.
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

// Album is one entry of the album timeline. Both fields may be empty.
type Album struct {
	Year  Year   `json:"year,omitempty" yaml:"year,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// CompareRow is one row of the comparison table.
type CompareRow struct {
	Feature string `json:"feature,omitempty" yaml:"feature,omitempty"`
	Me      string `json:"me,omitempty" yaml:"me,omitempty"`
	Other   string `json:"other,omitempty" yaml:"other,omitempty"`
}

// Year is an album year. Data files write it either as a number (1975)
// or as a string ("1975", "1975–1976"), so both decode into Year.
type Year string

// UnmarshalJSON accepts a JSON string, number or null.
func (y *Year) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "null":
		*y = ""
		return nil
	case strings.HasPrefix(s, `"`):
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*y = Year(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("year: expected string or number, got %s", s)
	}
	*y = Year(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar node.
func (y *Year) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("year: expected scalar at line %d", node.Line)
	}
	if node.Tag == "!!null" {
		*y = ""
		return nil
	}
	*y = Year(node.Value)
	return nil
}

// Int returns the numeric year, or 0 when the year is empty or not a
// plain number.
func (y Year) Int() int {
	n, err := strconv.Atoi(strings.TrimSpace(string(y)))
	if err != nil {
		return 0
	}
	return n
}
