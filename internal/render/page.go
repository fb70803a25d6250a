package render

import (
	"fmt"
	"strings"

	"github.com/handiism/musicgenres/internal/model"
)

// Page renders the complete HTML document for an artist.
//
// The document contains, in order: the site header and navigation, the
// hero (name, genre, optional photo), the about section, the info boxes
// (genre and works), the album timeline, the comparison table, the
// "why this genre" accordion with mood tags, a link back to the genres
// page and the site footer.
func (r *Renderer) Page(a *model.Artist) string {
	name := r.text(a.Name)
	genre := r.text(a.Genre)
	root := r.assetPrefix

	why := a.Why
	if why == "" {
		why = DefaultWhy
	}

	var sb strings.Builder

	// Head
	sb.WriteString("<!doctype html>\n")
	sb.WriteString("<html lang=\"tr\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("  <meta charset=\"utf-8\" />\n")
	sb.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\" />\n")
	sb.WriteString(fmt.Sprintf("  <title>%s • Sanatçı</title>\n", name))
	sb.WriteString(fmt.Sprintf("  <link rel=\"stylesheet\" href=\"%s/css/style.css\" />\n", root))
	sb.WriteString("</head>\n")
	sb.WriteString("<body>\n\n")

	// Header, navigation and hero
	sb.WriteString("<header class=\"site-header small\">\n")
	sb.WriteString("  <nav class=\"nav container\">\n")
	sb.WriteString(fmt.Sprintf("    <a class=\"logo\" href=\"%s/index.html\">\n", root))
	sb.WriteString(fmt.Sprintf("      <img src=\"%s/img/picture.webp\" alt=\"MusicGenres Logo\">\n", root))
	sb.WriteString("      <span>MusicGenres</span>\n")
	sb.WriteString("    </a>\n")
	sb.WriteString("    <ul class=\"nav-links\">\n")
	sb.WriteString(fmt.Sprintf("      <li><a href=\"%s/index.html\">Ana Sayfa</a></li>\n", root))
	sb.WriteString(fmt.Sprintf("      <li><a class=\"active\" href=\"%s/genres.html\">Türler</a></li>\n", root))
	sb.WriteString(fmt.Sprintf("      <li><a href=\"%s/contact.html\">İletişim</a></li>\n", root))
	sb.WriteString("    </ul>\n")
	sb.WriteString("  </nav>\n\n")
	sb.WriteString("  <div class=\"hero container\">\n")
	if a.HasImage() {
		sb.WriteString(fmt.Sprintf("    <img class=\"artist-photo\" src=\"%s\" alt=\"%s\">\n", r.attr(a.Image), r.attr(a.Name)))
	}
	sb.WriteString(fmt.Sprintf("    <h1>%s</h1>\n", name))
	sb.WriteString(fmt.Sprintf("    <p>%s türü ile ilişkilendirilen sanatçı/grup.</p>\n", genre))
	sb.WriteString("  </div>\n")
	sb.WriteString("</header>\n\n")

	sb.WriteString("<main class=\"container\">\n\n")

	// About
	sb.WriteString("  <section class=\"section\">\n")
	sb.WriteString("    <h2>Hakkında</h2>\n")
	sb.WriteString(fmt.Sprintf("    <p class=\"muted\">%s</p>\n", r.text(a.About)))
	sb.WriteString("  </section>\n\n")

	// Info
	sb.WriteString("  <section class=\"section info\">\n")
	sb.WriteString("    <div class=\"info-box\">\n")
	sb.WriteString("      <h3>Müzik Türü</h3>\n")
	sb.WriteString(fmt.Sprintf("      <p>%s</p>\n", genre))
	sb.WriteString("    </div>\n")
	sb.WriteString("    <div class=\"info-box\">\n")
	sb.WriteString("      <h3>Öne Çıkan Eserler</h3>\n")
	sb.WriteString("      <ul class=\"mini-list\">\n")
	sb.WriteString(r.Works(a.Works) + "\n")
	sb.WriteString("      </ul>\n")
	sb.WriteString("    </div>\n")
	sb.WriteString("  </section>\n\n")

	// Timeline
	sb.WriteString("  <section class=\"section\">\n")
	sb.WriteString("    <h2>Albüm Zaman Çizelgesi</h2>\n")
	sb.WriteString("    <ul class=\"timeline\">\n")
	sb.WriteString("        " + r.Timeline(a.Albums) + "\n")
	sb.WriteString("    </ul>\n")
	sb.WriteString("  </section>\n\n")

	// Comparison
	sb.WriteString("  <section class=\"section\">\n")
	sb.WriteString("    <h2>Karşılaştırma</h2>\n")
	sb.WriteString("    <p class=\"muted\">Aynı türde iki sanatçının bazı özelliklerinin karşılaştırılması.</p>\n")
	sb.WriteString("    " + r.Compare(a.Name, a.CompareWith, a.CompareRows) + "\n")
	sb.WriteString("  </section>\n\n")

	// Why this genre
	sb.WriteString("  <section class=\"section\">\n")
	sb.WriteString("    <h2>Etkileşimli Bilgi</h2>\n")
	sb.WriteString("    <div class=\"accordion\">\n")
	sb.WriteString(fmt.Sprintf("      <button class=\"acc-btn\" type=\"button\">Bu sanatçı neden %s?</button>\n", genre))
	sb.WriteString("      <div class=\"acc-content\">\n")
	sb.WriteString(fmt.Sprintf("        <p>%s</p>\n", r.text(why)))
	sb.WriteString("        <p><strong>Uygun Ruh Halleri:</strong></p>\n")
	sb.WriteString("        <div class=\"tags\">\n")
	sb.WriteString("          " + r.Moods(a.Moods) + "\n")
	sb.WriteString("        </div>\n")
	sb.WriteString("      </div>\n")
	sb.WriteString("    </div>\n")
	sb.WriteString("  </section>\n\n")

	// Back link
	sb.WriteString("  <section class=\"section\">\n")
	sb.WriteString(fmt.Sprintf("    <a class=\"btn\" href=\"%s/genres.html\">← Türlere Geri Dön</a>\n", root))
	sb.WriteString("  </section>\n\n")

	sb.WriteString("</main>\n\n")

	// Footer
	sb.WriteString("<footer class=\"footer\">\n")
	sb.WriteString("  <div class=\"container footer-inner\">\n")
	sb.WriteString("    <p>©️ 2025 MusicGenres</p>\n")
	sb.WriteString("    <p class=\"muted\">Sanatçı Bilgi Sayfası</p>\n")
	sb.WriteString("  </div>\n")
	sb.WriteString("</footer>\n\n")
	sb.WriteString(fmt.Sprintf("<script src=\"%s/js/app.js\"></script>\n", root))
	sb.WriteString("</body>\n")
	sb.WriteString("</html>\n")

	return sb.String()
}
