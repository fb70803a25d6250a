package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/handiism/musicgenres/internal/model"
	"github.com/microcosm-cc/bluemonday"
)

// Mode selects how interpolated text is treated.
type Mode int

const (
	// ModeRaw inserts text verbatim.
	ModeRaw Mode = iota

	// ModeEscape HTML-escapes text.
	ModeEscape

	// ModeSanitize strips unsafe markup and keeps safe inline markup.
	ModeSanitize
)

// ParseMode maps a settings value ("raw", "escape", "sanitize") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return ModeRaw, nil
	case "", "escape":
		return ModeEscape, nil
	case "sanitize":
		return ModeSanitize, nil
	default:
		return ModeEscape, fmt.Errorf("unknown html mode %q (want raw, escape or sanitize)", s)
	}
}

// String returns the settings value for m.
func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw"
	case ModeSanitize:
		return "sanitize"
	default:
		return "escape"
	}
}

// Placeholders shown when a record field is empty.
const (
	EmptyMark      = "—"
	DefaultAlbum   = "Albüm"
	EmptyTimeline  = "Albüm bilgisi ekleyebilirsiniz."
	DefaultFeature = "Özellik"
	EmptyWorks     = "Ödev için eser ekleyebilirsiniz."
	DefaultWhy     = "Gitar/ritim yapısı, üretim tarzı ve genel atmosfer bu sanatçıyı bu türle ilişkilendirir."
)

// DefaultMoods are shown when the record has no moods.
var DefaultMoods = []string{"🎧 Düşünceli", "🔥 Enerjik", "🌙 Gece"}

// DefaultCompareRows are shown when the record has no comparison rows.
var DefaultCompareRows = []model.CompareRow{
	{Feature: "Söz Teması", Me: EmptyMark, Other: EmptyMark},
	{Feature: "Tempo", Me: EmptyMark, Other: EmptyMark},
	{Feature: "Tarz", Me: EmptyMark, Other: EmptyMark},
	{Feature: "Sahne Havası", Me: EmptyMark, Other: EmptyMark},
}

// Renderer renders artist pages and their sections.
type Renderer struct {
	mode        Mode
	policy      *bluemonday.Policy
	assetPrefix string
}

// NewRenderer creates a Renderer.
//
// Parameters:
//   - mode: how interpolated text is treated
//   - assetPrefix: path from an artist page to the site root, used for
//     stylesheet, script, logo and navigation links (".." for pages in
//     artist/)
func NewRenderer(mode Mode, assetPrefix string) *Renderer {
	r := &Renderer{
		mode:        mode,
		assetPrefix: strings.TrimSuffix(assetPrefix, "/"),
	}
	if mode == ModeSanitize {
		r.policy = bluemonday.UGCPolicy()
	}
	return r
}

// Mode returns the renderer's HTML mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// text prepares a value for element content.
func (r *Renderer) text(s string) string {
	switch r.mode {
	case ModeEscape:
		return html.EscapeString(s)
	case ModeSanitize:
		return r.policy.Sanitize(s)
	default:
		return s
	}
}

// attr prepares a value for an attribute. Markup is never meaningful
// inside an attribute, so sanitize mode escapes here.
func (r *Renderer) attr(s string) string {
	if r.mode == ModeRaw {
		return s
	}
	return html.EscapeString(s)
}

// Timeline renders the album list items.
//
// Each album shows its year (EmptyMark if missing) and title
// (DefaultAlbum if missing). An empty list renders one placeholder item.
//
// Example output:
//
//	<li><span class='year'>1975</span> A Night at the Opera</li>
func (r *Renderer) Timeline(albums []model.Album) string {
	if len(albums) == 0 {
		return fmt.Sprintf("<li><span class='year'>%s</span> %s</li>", EmptyMark, EmptyTimeline)
	}

	items := make([]string, 0, len(albums))
	for _, a := range albums {
		year := string(a.Year)
		if year == "" {
			year = EmptyMark
		}
		title := a.Title
		if title == "" {
			title = DefaultAlbum
		}
		items = append(items, fmt.Sprintf("<li><span class='year'>%s</span> %s</li>", r.text(year), r.text(title)))
	}
	return strings.Join(items, "\n        ")
}

// Compare renders the comparison table of me against other.
//
// The header row holds a feature label and both names; one row follows per
// entry with missing cells shown as DefaultFeature or EmptyMark. An empty
// rows list is replaced by DefaultCompareRows.
func (r *Renderer) Compare(me, other string, rows []model.CompareRow) string {
	if len(rows) == 0 {
		rows = DefaultCompareRows
	}

	var trs strings.Builder
	for _, row := range rows {
		trs.WriteString(fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td></tr>",
			r.text(orDefault(row.Feature, DefaultFeature)),
			r.text(orDefault(row.Me, EmptyMark)),
			r.text(orDefault(row.Other, EmptyMark))))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  <div class=\"table-wrap\">\n")
	sb.WriteString("    <table class=\"compare\">\n")
	sb.WriteString("      <tr>\n")
	sb.WriteString(fmt.Sprintf("        <th>%s</th>\n", DefaultFeature))
	sb.WriteString(fmt.Sprintf("        <th>%s</th>\n", r.text(me)))
	sb.WriteString(fmt.Sprintf("        <th>%s</th>\n", r.text(other)))
	sb.WriteString("      </tr>\n")
	sb.WriteString("      " + trs.String() + "\n")
	sb.WriteString("    </table>\n")
	sb.WriteString("  </div>\n")
	return sb.String()
}

// Works renders the notable works list items, one per line.
func (r *Renderer) Works(works []string) string {
	if len(works) == 0 {
		return "        <li>" + EmptyWorks + "</li>"
	}

	items := make([]string, 0, len(works))
	for _, w := range works {
		items = append(items, "        <li>"+r.text(w)+"</li>")
	}
	return strings.Join(items, "\n")
}

// Moods renders the mood tags. An empty list renders DefaultMoods.
func (r *Renderer) Moods(moods []string) string {
	if len(moods) == 0 {
		moods = DefaultMoods
	}

	tags := make([]string, 0, len(moods))
	for _, m := range moods {
		tags = append(tags, "<span class='tag'>"+r.text(m)+"</span>")
	}
	return strings.Join(tags, "\n          ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
