package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"unicode"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Queen", "queen"},
		{"Mor ve Ötesi", "mor-ve-otesi"},
		{"Red Hot Chili Peppers", "red-hot-chili-peppers"},
		{"Pentagram (Mezarkabul)", "pentagram-mezarkabul"},
		{"B.B. King", "bb-king"},
		{"İlhan Erşahin", "ilhan-ersahin"},
		{"Barış Manço", "baris-manco"},
		{"Müzeyyen Senar", "muzeyyen-senar"},
		{"Neşet Ertaş", "neset-ertas"},
		{"Moğollar", "mogollar"},
		{"Yavuz Çetin", "yavuz-cetin"},
		{"ISTANBUL", "istanbul"},
		{"  padded  name  ", "padded-name"},
		{"snake_case__name", "snake-case-name"},
		{"a - b", "a-b"},
		{"AC/DC", "acdc"},
		{"Sigur Rós", "sigur-rós"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	names := []string{
		"Mor ve Ötesi", "Hip-Hop / Rap", "Elektronik (EDM)", "Türk Sanat Müziği",
		"Yüzyüzeyken Konuşuruz", "-leading and trailing-", "x__y--z", "Ça Ğ İ",
	}

	for _, name := range names {
		once := Slugify(name)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify(Slugify(%q)) = %q, want %q", name, twice, once)
		}
	}
}

func TestSlugify_NoTurkishLettersRemain(t *testing.T) {
	got := Slugify("ÇĞİIÖŞÜ çğıöşü")
	for _, r := range got {
		if r > unicode.MaxASCII {
			t.Fatalf("Slugify left non-ASCII rune %q in %q", r, got)
		}
	}
	if got != "cgiiosu-cgiosu" {
		t.Errorf("Slugify = %q, want %q", got, "cgiiosu-cgiosu")
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "queen.html")
	ctx := context.Background()

	if err := WriteFile(ctx, path, []byte("first run, longer content")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := WriteFile(ctx, path, []byte("second")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
}

func TestWriteFile_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "never.html")
	if err := WriteFile(ctx, path, []byte("x")); err == nil {
		t.Error("expected error for cancelled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not exist after cancelled write")
	}
}

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artist", "img")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if err := EnsureDir(path); err != nil {
		t.Fatalf("EnsureDir on existing dir failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}
