package model

// Artist is the fully resolved record for one artist page.
//
// Every field has a value after resolution. Empty Albums, CompareRows,
// Moods and Why are legal: the renderer substitutes its own placeholders
// for them.
type Artist struct {
	// Slug is the normalized identifier, also the output filename stem.
	Slug string

	// Name is the display name shown in the hero and the comparison header.
	Name string

	// Genre is the genre the artist is listed under.
	Genre string

	// About is the free text of the "Hakkında" section.
	About string

	// Works lists notable works.
	Works []string

	// Albums is the album timeline, in the order it should be shown.
	Albums []Album

	// CompareWith names the artist in the other comparison column.
	CompareWith string

	// CompareRows are the comparison table rows.
	CompareRows []CompareRow

	// Moods are shown as tags in the interactive section.
	Moods []string

	// Why explains the artist's association with the genre.
	Why string

	// Image is the page-relative path of the artist thumbnail.
	// Empty when no image was supplied.
	Image string
}

// HasImage returns true if a thumbnail was produced for the artist.
func (a *Artist) HasImage() bool {
	return a.Image != ""
}
