// Package render turns resolved artist records into HTML pages.
//
// Rendering is pure: a Renderer takes a model.Artist and returns the page
// as a string, so pages can be tested without touching the file system.
//
//	r := render.NewRenderer(render.ModeEscape, "..")
//	page := r.Page(&artist)
//	os.WriteFile("artist/queen.html", []byte(page), 0644)
//
// # Sections
//
// Each section has its own renderer with a placeholder for empty input:
//   - Timeline: album years and titles, or one "add albums" entry
//   - Compare: a feature table, or four placeholder feature rows
//   - Works: notable works, or one "add works" item
//   - Moods: mood tags, or three default tags
//
// # HTML Modes
//
// Override text is written by hand and may contain markup characters.
// The mode decides what happens to every interpolated value:
//   - ModeRaw: inserted verbatim (matches the first version of the site)
//   - ModeEscape: HTML-escaped
//   - ModeSanitize: passed through a bluemonday UGC policy, so simple
//     inline markup such as <em> or links survives and scripts do not
package render
