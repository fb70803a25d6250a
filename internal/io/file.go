package ioutils

import (
	"context"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// turkishASCII maps the Turkish letters outside ASCII, in both cases, to
// their plain ASCII letter. Dotted and dotless I both become "i".
var turkishASCII = map[rune]rune{
	'ç': 'c', 'ğ': 'g', 'ı': 'i', 'ö': 'o', 'ş': 's', 'ü': 'u',
	'Ç': 'c', 'Ğ': 'g', 'İ': 'i', 'I': 'i', 'Ö': 'o', 'Ş': 's', 'Ü': 'u',
}

var (
	nonSlugChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Z}\v-]`)
	separators   = regexp.MustCompile(`[\s\p{Z}\v_]+`)
	hyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// Slugify returns the identifier for an artist name.
//
// The following transformations are applied, in order:
//   - Turkish letters → ASCII (ç→c, ğ→g, ı/İ/I→i, ö→o, ş→s, ü→u)
//   - lowercase, then trim surrounding whitespace
//   - characters other than letters, digits, underscore, whitespace and
//     hyphen are removed (letters of other scripts are kept)
//   - runs of whitespace and underscores → single hyphen
//   - runs of hyphens → single hyphen
//
// Slugify is total and idempotent. Distinct names may share a slug.
//
// Example:
//
//	Slugify("Red Hot Chili Peppers") // "red-hot-chili-peppers"
//	Slugify("B.B. King")             // "bb-king"
func Slugify(name string) string {
	s, _, err := transform.String(transliterator(), name)
	if err != nil {
		s = name
	}
	s = strings.TrimSpace(strings.ToLower(s))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return s
}

// transliterator is rebuilt per call; transform.Transformer values carry
// state and are not safe for concurrent use.
func transliterator() transform.Transformer {
	return runes.Map(func(r rune) rune {
		if ascii, ok := turkishASCII[r]; ok {
			return ascii
		}
		return r
	})
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. An existing file is truncated,
// so every run overwrites the previous page.
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
