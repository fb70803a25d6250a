package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"
	"github.com/google/go-cmp/cmp"
	"github.com/handiism/musicgenres/internal/model"
)

type testTrack struct {
	file        string
	artist      string
	albumArtist string
	album       string
	year        string
}

func writeTrack(t *testing.T, root string, tr testTrack) {
	t.Helper()

	path := filepath.Join(root, tr.file)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tag := id3v2.NewEmptyTag()
	tag.SetArtist(tr.artist)
	tag.SetAlbum(tr.album)
	if tr.year != "" {
		tag.SetYear(tr.year)
	}
	if tr.albumArtist != "" {
		tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, tr.albumArtist)
	}
	if _, err := tag.WriteTo(f); err != nil {
		t.Fatalf("write tag: %v", err)
	}
	// Stand-in for audio frames.
	if _, err := f.Write(make([]byte, 128)); err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()

	for _, tr := range []testTrack{
		{file: "queen/innuendo/01.mp3", artist: "Queen", album: "Innuendo", year: "1991"},
		{file: "queen/innuendo/02.mp3", artist: "Queen", album: "Innuendo", year: "1991"},
		{file: "queen/opera/01.mp3", artist: "Queen", album: "A Night at the Opera", year: "1975"},
		{file: "queen/live/01.MP3", artist: "Queen", album: "Live Killers"},
		{file: "mvo/01.mp3", artist: "Harun Tekin", albumArtist: "Mor ve Ötesi", album: "Dünya Yalan Söylüyor", year: "2004"},
		{file: "untitled/01.mp3", artist: "Nobody"},
	} {
		writeTrack(t, root, tr)
	}
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("not music"), 0644); err != nil {
		t.Fatal(err)
	}

	idx, err := Scan(context.Background(), root)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := []model.Album{
		{Year: "1975", Title: "A Night at the Opera"},
		{Year: "1991", Title: "Innuendo"},
		{Title: "Live Killers"},
	}
	if diff := cmp.Diff(want, idx.Albums("queen")); diff != "" {
		t.Errorf("Albums(queen) mismatch (-want +got):\n%s", diff)
	}

	wantMVO := []model.Album{{Year: "2004", Title: "Dünya Yalan Söylüyor"}}
	if diff := cmp.Diff(wantMVO, idx.Albums("mor-ve-otesi")); diff != "" {
		t.Errorf("Albums(mor-ve-otesi) mismatch (-want +got):\n%s", diff)
	}

	if idx.Albums("harun-tekin") != nil {
		t.Error("album artist should take precedence over lead artist")
	}
	if idx.Artists() != 2 {
		t.Errorf("Artists() = %d, want 2", idx.Artists())
	}
	if idx.Files() != 5 {
		t.Errorf("Files() = %d, want 5", idx.Files())
	}
}

func TestScan_MissingRoot(t *testing.T) {
	if _, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing library root")
	}
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	writeTrack(t, root, testTrack{file: "a.mp3", artist: "Queen", album: "Innuendo"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Scan(ctx, root); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestIndex_Nil(t *testing.T) {
	var idx *Index
	if idx.Albums("queen") != nil || idx.Artists() != 0 || idx.Files() != 0 {
		t.Error("nil Index should behave as empty")
	}
}
