// Package config provides configuration management for the page
// generator.
//
// This package handles:
//   - Loading and saving settings from JSON or YAML files
//   - Default configuration values
//   - Validation of enumerated values such as the HTML mode
//
// # Default Settings
//
// Use DefaultSettings() to get the layout of the site repository:
//
//	settings := config.DefaultSettings()
//	// Reads data/artists.json, writes artist/<slug>.html
//	// Escapes interpolated text
//	// Uses the built-in catalog
//
// # Loading from File
//
//	settings, err := config.Load("artistgen.yaml")
//	if err != nil {
//	    // Malformed file; a missing file yields the defaults
//	}
//
// # Saving Settings
//
//	settings.HTMLMode = "sanitize"
//	err := settings.Save("artistgen.yaml")
package config
