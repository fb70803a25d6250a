package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/handiism/musicgenres/internal/render"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "artistgen.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(DefaultSettings(), got); diff != "" {
		t.Errorf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_LayersOverDefaults(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", "artistgen.json", `{"output_dir": "public/artist", "html_mode": "sanitize"}`},
		{"yaml", "artistgen.yaml", "output_dir: public/artist\nhtml_mode: sanitize\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			want := DefaultSettings()
			want.OutputDir = "public/artist"
			want.HTMLMode = "sanitize"
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
			if got.Mode() != render.ModeSanitize {
				t.Errorf("Mode() = %v, want sanitize", got.Mode())
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `{"output_dir": `},
		{"unknown mode", `{"html_mode": "markdown"}`},
		{"empty output", `{"output_dir": ""}`},
		{"negative thumbnail", `{"thumbnail_size": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "artistgen.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	for _, file := range []string{"nested/artistgen.json", "nested/artistgen.yml"} {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), file)

			s := DefaultSettings()
			s.LibraryPath = "/music"
			s.ThumbnailSize = 256
			if err := s.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if diff := cmp.Diff(s, got); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
