package library

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bogem/id3v2"
	ioutils "github.com/handiism/musicgenres/internal/io"
	"github.com/handiism/musicgenres/internal/model"
)

// Index maps artist slugs to their albums.
type Index struct {
	albums map[string][]model.Album
	files  int
}

// Scan walks root and indexes the ID3 tags of every MP3 file under it.
//
// Unreadable or untagged files are skipped; only a failure to walk root
// itself is returned as an error.
func Scan(ctx context.Context, root string) (*Index, error) {
	idx := &Index{albums: make(map[string][]model.Album)}
	seen := make(map[string]map[string]bool)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".mp3") {
			return nil
		}

		artist, album, ok := readTags(path)
		if !ok {
			return nil
		}
		idx.files++

		slug := ioutils.Slugify(artist)
		key := strings.ToLower(album.Title)
		if seen[slug] == nil {
			seen[slug] = make(map[string]bool)
		}
		if seen[slug][key] {
			return nil
		}
		seen[slug][key] = true
		idx.albums[slug] = append(idx.albums[slug], album)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, albums := range idx.albums {
		sortAlbums(albums)
	}
	return idx, nil
}

// Albums returns the albums indexed for slug, oldest first. Albums without
// a numeric year come last.
func (idx *Index) Albums(slug string) []model.Album {
	if idx == nil {
		return nil
	}
	return idx.albums[slug]
}

// Artists returns the number of distinct artist slugs in the index.
func (idx *Index) Artists() int {
	if idx == nil {
		return 0
	}
	return len(idx.albums)
}

// Files returns the number of tagged MP3 files that were read.
func (idx *Index) Files() int {
	if idx == nil {
		return 0
	}
	return idx.files
}

// readTags returns the album artist (falling back to the lead artist) and
// the album of an MP3 file.
func readTags(path string) (string, model.Album, bool) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return "", model.Album{}, false
	}
	defer tag.Close()

	name := strings.TrimSpace(tag.GetTextFrame("TPE2").Text)
	if name == "" {
		name = strings.TrimSpace(tag.Artist())
	}
	title := strings.TrimSpace(tag.Album())
	if name == "" || title == "" {
		return "", model.Album{}, false
	}

	return name, model.Album{Year: model.Year(year(tag)), Title: title}, true
}

// year returns the four-digit year from TYER (ID3v2.3) or TDRC (ID3v2.4).
func year(tag *id3v2.Tag) string {
	y := strings.TrimSpace(tag.Year())
	if y == "" {
		y = strings.TrimSpace(tag.GetTextFrame("TDRC").Text)
	}
	if len(y) > 4 {
		y = y[:4]
	}
	return y
}

func sortAlbums(albums []model.Album) {
	sort.SliceStable(albums, func(i, j int) bool {
		yi, yj := albums[i].Year.Int(), albums[j].Year.Int()
		switch {
		case yi == 0:
			return false
		case yj == 0:
			return true
		default:
			return yi < yj
		}
	})
}
