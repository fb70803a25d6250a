// Package catalog holds the ordered genre → artist list the site is built
// from.
//
// The built-in catalog mirrors the genres page of the site. A catalog file
// (YAML or JSON) can replace it:
//
//	[
//	  {"name": "Rock", "artists": ["Queen", "Nirvana"]},
//	  {"name": "Jazz", "artists": ["Miles Davis"]}
//	]
//
// Order matters: an artist is compared with the next artist of its genre
// unless the data file says otherwise.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/musicgenres/internal/io"
	"gopkg.in/yaml.v3"
)

// Genre is one genre and its artists, in display order.
type Genre struct {
	Name    string   `json:"name" yaml:"name"`
	Artists []string `json:"artists" yaml:"artists"`
}

// Catalog is the ordered list of genres. Treat it as read-only once built.
type Catalog []Genre

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		{"Rock", []string{"Duman", "Mor ve Ötesi", "Manga", "Queen", "Nirvana", "Pink Floyd", "Red Hot Chili Peppers"}},
		{"Pop", []string{"Tarkan", "Sezen Aksu", "Sertab Erener", "Michael Jackson", "Madonna", "Taylor Swift", "Dua Lipa"}},
		{"Hip-Hop / Rap", []string{"Ceza", "Sagopa Kajmer", "Ezhel", "Eminem", "Kendrick Lamar", "Tupac", "Drake"}},
		{"Jazz", []string{"Kerem Görsev", "İlhan Erşahin", "Miles Davis", "John Coltrane", "Louis Armstrong", "Ella Fitzgerald"}},
		{"Elektronik (EDM)", []string{"Mahmut Orhan", "Burak Yeter", "Mercan Dede", "Daft Punk", "Avicii", "Calvin Harris", "David Guetta"}},
		{"Metal", []string{"Pentagram (Mezarkabul)", "Kurban", "Hayko Cepkin", "Metallica", "Iron Maiden", "Slipknot"}},
		{"Anadolu Rock", []string{"Barış Manço", "Cem Karaca", "Erkin Koray", "Moğollar"}},
		{"Türk Halk Müziği", []string{"Neşet Ertaş", "Musa Eroğlu", "Arif Sağ", "Zara"}},
		{"Türk Sanat Müziği", []string{"Zeki Müren", "Müzeyyen Senar", "Bülent Ersoy"}},
		{"Indie / Alternative", []string{"Yüzyüzeyken Konuşuruz", "Adamlar", "Arctic Monkeys", "Radiohead"}},
		{"Blues", []string{"Yavuz Çetin", "B.B. King", "Eric Clapton"}},
		{"Klasik Müzik", []string{"Fazıl Say", "İdil Biret", "Mozart", "Beethoven"}},
	}
}

// Load reads a catalog file. Files ending in .yaml or .yml are decoded as
// YAML, anything else as JSON.
//
// Returns an error if the file cannot be read or decoded, or if the
// catalog fails Validate.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	default:
		err = json.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	return c, nil
}

// Validate reports the first genre with an empty name or no artists.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("no genres")
	}
	for i, g := range c {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("genre %d has no name", i)
		}
		if len(g.Artists) == 0 {
			return fmt.Errorf("genre %q has no artists", g.Name)
		}
	}
	return nil
}

// Len returns the number of artist entries across all genres.
// An artist listed under two genres counts twice.
func (c Catalog) Len() int {
	n := 0
	for _, g := range c {
		n += len(g.Artists)
	}
	return n
}

// Collision is a slug shared by more than one distinct artist name.
type Collision struct {
	Slug  string
	Names []string
}

// Collisions returns every slug produced by two or more distinct names,
// in catalog order. The same name listed under several genres is not a
// collision: it renders the same page twice.
func (c Catalog) Collisions() []Collision {
	names := make(map[string][]string)
	var order []string

	for _, g := range c {
		for _, name := range g.Artists {
			slug := ioutils.Slugify(name)
			seen, ok := names[slug]
			if !ok {
				order = append(order, slug)
			}
			if !contains(seen, name) {
				names[slug] = append(seen, name)
			}
		}
	}

	var out []Collision
	for _, slug := range order {
		if len(names[slug]) > 1 {
			out = append(out, Collision{Slug: slug, Names: names[slug]})
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
