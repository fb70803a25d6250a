package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/musicgenres/internal/render"
	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// Inputs
	DataFile    string `json:"data_file" yaml:"data_file"`
	CatalogFile string `json:"catalog_file,omitempty" yaml:"catalog_file,omitempty"` // empty: built-in catalog
	LibraryPath string `json:"library_path,omitempty" yaml:"library_path,omitempty"` // empty: no MP3 scan

	// Output
	OutputDir     string `json:"output_dir" yaml:"output_dir"`
	AssetPrefix   string `json:"asset_prefix" yaml:"asset_prefix"`
	HTMLMode      string `json:"html_mode" yaml:"html_mode"` // raw, escape, sanitize
	ThumbnailSize int    `json:"thumbnail_size" yaml:"thumbnail_size"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DataFile:      filepath.Join("data", "artists.json"),
		OutputDir:     "artist",
		AssetPrefix:   "..",
		HTMLMode:      "escape",
		ThumbnailSize: 400,
	}
}

// Load reads settings from a JSON or YAML file, layered over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or YAML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks enumerated and numeric fields.
func (s *Settings) Validate() error {
	if _, err := render.ParseMode(s.HTMLMode); err != nil {
		return err
	}
	if s.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if s.ThumbnailSize < 0 {
		return fmt.Errorf("thumbnail_size must not be negative, got %d", s.ThumbnailSize)
	}
	return nil
}

// Mode returns the parsed HTML mode. Invalid values fall back to escape.
func (s *Settings) Mode() render.Mode {
	m, _ := render.ParseMode(s.HTMLMode)
	return m
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
