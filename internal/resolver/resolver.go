// Package resolver merges an artist's override record with the defaults
// computed from the catalog.
package resolver

import (
	"fmt"

	ioutils "github.com/handiism/musicgenres/internal/io"
	"github.com/handiism/musicgenres/internal/model"
)

// DefaultWorks is used when the override has no works.
var DefaultWorks = []string{"Örnek eser 1", "Örnek eser 2"}

// DefaultAbout returns the placeholder about text for name.
func DefaultAbout(name string) string {
	return fmt.Sprintf("%s hakkında kısa bilgi ekleyebilirsiniz (2–4 cümle).", name)
}

// Input is one catalog position to resolve.
type Input struct {
	// Genre is the catalog genre name.
	Genre string

	// Name is the catalog artist name.
	Name string

	// Index is the artist's zero-based position in Artists.
	Index int

	// Artists is the full artist list of Genre.
	Artists []string

	// Override is the data file record for the artist's slug, or nil.
	Override *model.Override
}

// Resolve builds the merged record for in. Each field of the override
// wins when present; every other field takes its default:
//   - name, genre: the catalog values
//   - about: DefaultAbout(name)
//   - works: DefaultWorks
//   - albums, compare rows, moods: empty
//   - why: empty
//   - compare with: the next artist of the genre, wrapping around; the
//     artist itself when it is alone in its genre
//
// The slug is always derived from the catalog name, never from an
// overridden name, so the page stays where the data file expects it.
func Resolve(in Input) model.Artist {
	o := in.Override
	if o == nil {
		o = &model.Override{}
	}

	a := model.Artist{
		Slug:        ioutils.Slugify(in.Name),
		Name:        in.Name,
		Genre:       in.Genre,
		About:       DefaultAbout(in.Name),
		Works:       append([]string(nil), DefaultWorks...),
		Albums:      []model.Album{},
		CompareWith: o.CompareWith,
		CompareRows: []model.CompareRow{},
		Moods:       []string{},
		Why:         o.Why,
	}

	if o.Name != nil {
		a.Name = *o.Name
	}
	if o.Genre != nil {
		a.Genre = *o.Genre
	}
	if o.About != nil {
		a.About = *o.About
	}
	if o.Works != nil {
		a.Works = o.Works
	}
	if o.Albums != nil {
		a.Albums = o.Albums
	}
	if o.CompareRows != nil {
		a.CompareRows = o.CompareRows
	}
	if o.Moods != nil {
		a.Moods = o.Moods
	}
	if a.CompareWith == "" {
		a.CompareWith = Partner(in.Name, in.Index, in.Artists)
	}

	return a
}

// Partner returns the artist after index in artists, wrapping to the
// first. A single-artist genre pairs the artist with itself, as does an
// index outside the list.
func Partner(name string, index int, artists []string) string {
	if len(artists) <= 1 || index < 0 || index >= len(artists) {
		return name
	}
	return artists[(index+1)%len(artists)]
}
