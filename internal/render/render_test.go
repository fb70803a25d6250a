package render

import (
	"strings"
	"testing"

	"github.com/handiism/musicgenres/internal/model"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"raw", ModeRaw, false},
		{"escape", ModeEscape, false},
		{"", ModeEscape, false},
		{" Sanitize ", ModeSanitize, false},
		{"markdown", ModeEscape, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !tt.wantErr && tt.input != "" {
				if back, _ := ParseMode(got.String()); back != got {
					t.Errorf("String() %q does not parse back to %v", got.String(), got)
				}
			}
		})
	}
}

func TestTimeline_Empty(t *testing.T) {
	r := NewRenderer(ModeRaw, "..")
	got := r.Timeline(nil)

	want := "<li><span class='year'>—</span> Albüm bilgisi ekleyebilirsiniz.</li>"
	if got != want {
		t.Errorf("Timeline(nil) = %q, want %q", got, want)
	}
	if n := strings.Count(got, "<li>"); n != 1 {
		t.Errorf("entry count = %d, want 1", n)
	}
}

func TestTimeline_Entries(t *testing.T) {
	r := NewRenderer(ModeRaw, "..")
	got := r.Timeline([]model.Album{
		{Year: "1975", Title: "A Night at the Opera"},
		{Title: "Innuendo"},
		{Year: "1991"},
	})

	if n := strings.Count(got, "<li>"); n != 3 {
		t.Fatalf("entry count = %d, want 3", n)
	}
	for _, want := range []string{
		"<li><span class='year'>1975</span> A Night at the Opera</li>",
		"<li><span class='year'>—</span> Innuendo</li>",
		"<li><span class='year'>1991</span> Albüm</li>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Timeline missing %q in:\n%s", want, got)
		}
	}
}

func TestCompare_DefaultRows(t *testing.T) {
	r := NewRenderer(ModeRaw, "..")
	got := r.Compare("Queen", "Nirvana", nil)

	if n := strings.Count(got, "<tr><td>"); n != 4 {
		t.Errorf("row count = %d, want 4", n)
	}
	for _, feature := range []string{"Söz Teması", "Tempo", "Tarz", "Sahne Havası"} {
		if !strings.Contains(got, "<tr><td>"+feature+"</td><td>—</td><td>—</td></tr>") {
			t.Errorf("missing placeholder row %q", feature)
		}
	}
	for _, header := range []string{"<th>Özellik</th>", "<th>Queen</th>", "<th>Nirvana</th>"} {
		if !strings.Contains(got, header) {
			t.Errorf("missing header %q", header)
		}
	}
}

func TestCompare_SuppliedRows(t *testing.T) {
	r := NewRenderer(ModeRaw, "..")
	rows := []model.CompareRow{
		{Feature: "Tempo", Me: "Orta", Other: "Hızlı"},
		{Me: "Teatral"},
	}
	got := r.Compare("Queen", "Nirvana", rows)

	if n := strings.Count(got, "<tr><td>"); n != 2 {
		t.Errorf("row count = %d, want 2", n)
	}
	if !strings.Contains(got, "<tr><td>Tempo</td><td>Orta</td><td>Hızlı</td></tr>") {
		t.Error("missing literal row")
	}
	if !strings.Contains(got, "<tr><td>Özellik</td><td>Teatral</td><td>—</td></tr>") {
		t.Error("missing row with defaulted cells")
	}
}

func TestWorks(t *testing.T) {
	r := NewRenderer(ModeRaw, "..")

	if got := r.Works(nil); got != "        <li>Ödev için eser ekleyebilirsiniz.</li>" {
		t.Errorf("Works(nil) = %q", got)
	}

	got := r.Works([]string{"Bohemian Rhapsody", "Radio Ga Ga"})
	if n := strings.Count(got, "<li>"); n != 2 {
		t.Errorf("item count = %d, want 2", n)
	}
	if !strings.Contains(got, "<li>Radio Ga Ga</li>") {
		t.Errorf("missing work in %q", got)
	}
}

func TestMoods(t *testing.T) {
	r := NewRenderer(ModeRaw, "..")

	got := r.Moods(nil)
	if n := strings.Count(got, "<span class='tag'>"); n != 3 {
		t.Errorf("default tag count = %d, want 3", n)
	}
	for _, m := range DefaultMoods {
		if !strings.Contains(got, m) {
			t.Errorf("missing default mood %q", m)
		}
	}

	got = r.Moods([]string{"🎸 Epik"})
	if got != "<span class='tag'>🎸 Epik</span>" {
		t.Errorf("Moods = %q", got)
	}
}

func TestModes(t *testing.T) {
	input := `Rock & <em>roll</em><script>alert(1)</script>`

	tests := []struct {
		mode       Mode
		contain    string
		notContain string
	}{
		{ModeRaw, input, ""},
		{ModeEscape, "Rock &amp; &lt;em&gt;roll&lt;/em&gt;&lt;script&gt;", "<script>"},
		{ModeSanitize, "<em>roll</em>", "<script>"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r := NewRenderer(tt.mode, "..")
			got := r.Works([]string{input})
			if !strings.Contains(got, tt.contain) {
				t.Errorf("output %q does not contain %q", got, tt.contain)
			}
			if tt.notContain != "" && strings.Contains(got, tt.notContain) {
				t.Errorf("output %q should not contain %q", got, tt.notContain)
			}
		})
	}
}

func TestPage(t *testing.T) {
	a := &model.Artist{
		Slug:        "queen",
		Name:        "Queen",
		Genre:       "Rock",
		About:       "Legendary UK rock band.",
		Works:       []string{"Örnek eser 1", "Örnek eser 2"},
		CompareWith: "Nirvana",
	}

	page := NewRenderer(ModeEscape, "..").Page(a)

	for _, want := range []string{
		"<!doctype html>",
		"<title>Queen • Sanatçı</title>",
		`<link rel="stylesheet" href="../css/style.css" />`,
		"<h1>Queen</h1>",
		"<p>Rock türü ile ilişkilendirilen sanatçı/grup.</p>",
		`<p class="muted">Legendary UK rock band.</p>`,
		"<li>Örnek eser 2</li>",
		"Albüm bilgisi ekleyebilirsiniz.",
		"<th>Nirvana</th>",
		"Bu sanatçı neden Rock?",
		"<p>" + DefaultWhy + "</p>",
		"🌙 Gece",
		`<a class="btn" href="../genres.html">← Türlere Geri Dön</a>`,
		"©️ 2025 MusicGenres",
		`<script src="../js/app.js"></script>`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}

	if strings.Contains(page, "artist-photo") {
		t.Error("page without image should not render a photo")
	}
	if !strings.HasSuffix(page, "</html>\n") {
		t.Error("page should end with </html>")
	}
}

func TestPage_ImageAndPrefix(t *testing.T) {
	a := &model.Artist{Name: `Guns "N" Roses`, Genre: "Rock", Image: "img/guns-n-roses.jpg"}

	page := NewRenderer(ModeEscape, "/site/").Page(a)

	if !strings.Contains(page, `<img class="artist-photo" src="img/guns-n-roses.jpg" alt="Guns &#34;N&#34; Roses">`) {
		t.Errorf("missing escaped photo tag in:\n%s", page)
	}
	if !strings.Contains(page, `href="/site/genres.html"`) {
		t.Error("asset prefix not applied to navigation")
	}
}

func TestPage_WhyOverride(t *testing.T) {
	a := &model.Artist{Name: "Ezhel", Genre: "Hip-Hop / Rap", Why: "Trap ritimleri."}
	page := NewRenderer(ModeRaw, "..").Page(a)

	if !strings.Contains(page, "<p>Trap ritimleri.</p>") {
		t.Error("why text not rendered")
	}
	if strings.Contains(page, DefaultWhy) {
		t.Error("default why should not appear when why is set")
	}
}
