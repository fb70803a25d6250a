package build

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/handiism/musicgenres/internal/catalog"
	"github.com/handiism/musicgenres/internal/config"
	ioutils "github.com/handiism/musicgenres/internal/io"
	"github.com/handiism/musicgenres/internal/library"
	"github.com/handiism/musicgenres/internal/model"
	"github.com/handiism/musicgenres/internal/overrides"
	"github.com/handiism/musicgenres/internal/render"
	"github.com/handiism/musicgenres/internal/resolver"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lowercase level name.
func (l ProgressLevel) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// ProgressEvent represents a generation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Slug is set for events about a single page.
	Slug string
}

// Result summarizes a finished run.
type Result struct {
	// Pages is the number of pages rendered, one per catalog entry.
	Pages int

	// Written is the number of page files written. Zero on a dry run.
	Written int

	// Images is the number of thumbnails produced.
	Images int

	// Collisions is the number of slugs shared by different names.
	Collisions int

	// OutputDir is where the pages went.
	OutputDir string
}

// imageDir is the thumbnail directory, relative to the output directory.
const imageDir = "img"

// LoadCatalog returns the catalog named by settings, or the built-in one.
func LoadCatalog(s *config.Settings) (catalog.Catalog, error) {
	if s.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(s.CatalogFile)
}

// Builder generates artist pages.
type Builder struct {
	settings  *config.Settings
	catalog   catalog.Catalog
	overrides *overrides.Store
	library   *library.Index
	renderer  *render.Renderer
	images    *ioutils.ImageService
	dryRun    bool

	totalPages int32
	donePages  int32

	onProgress func(ProgressEvent)
}

// NewBuilder creates a new Builder for cat.
//
// The builder starts without overrides; Initialize loads them.
func NewBuilder(settings *config.Settings, cat catalog.Catalog, onProgress func(ProgressEvent)) *Builder {
	return &Builder{
		settings:   settings,
		catalog:    cat,
		overrides:  overrides.Empty(),
		renderer:   render.NewRenderer(settings.Mode(), settings.AssetPrefix),
		images:     ioutils.NewImageService(),
		totalPages: int32(cat.Len()),
		onProgress: onProgress,
	}
}

// SetDryRun makes Run render every page without writing anything.
func (b *Builder) SetDryRun(dryRun bool) {
	b.dryRun = dryRun
}

// Initialize loads the overrides data file and, if configured, scans the
// MP3 library.
//
// A missing data file is reported and ignored. A malformed data file or
// an unreadable library root is returned as an error.
func (b *Builder) Initialize(ctx context.Context) error {
	if err := b.catalog.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	store, err := overrides.Load(b.settings.DataFile)
	if err != nil {
		return err
	}
	b.overrides = store
	if store.Len() == 0 {
		b.progress(ProgressEvent{Message: fmt.Sprintf("No overrides in %s, using defaults", b.settings.DataFile), Level: LevelInfo})
	} else {
		b.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d overrides from %s", store.Len(), b.settings.DataFile), Level: LevelInfo})
	}

	if b.settings.LibraryPath != "" {
		idx, err := library.Scan(ctx, b.settings.LibraryPath)
		if err != nil {
			return fmt.Errorf("scan library: %w", err)
		}
		b.library = idx
		b.progress(ProgressEvent{
			Message: fmt.Sprintf("Indexed %d tagged files for %d artists in %s", idx.Files(), idx.Artists(), b.settings.LibraryPath),
			Level:   LevelInfo,
		})
	}

	return nil
}

// Run renders and writes every page of the catalog.
//
// The run stops at the first write failure; pages written before it are
// kept.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	result := &Result{OutputDir: b.settings.OutputDir}
	atomic.StoreInt32(&b.donePages, 0)

	for _, c := range b.catalog.Collisions() {
		result.Collisions++
		b.progress(ProgressEvent{
			Message: fmt.Sprintf("Slug %q is shared by %s; the last one listed wins", c.Slug, strings.Join(quoteAll(c.Names), ", ")),
			Level:   LevelWarning,
			Slug:    c.Slug,
		})
	}

	if !b.dryRun {
		if err := ioutils.EnsureDir(b.settings.OutputDir); err != nil {
			return result, fmt.Errorf("create output directory: %w", err)
		}
	}

	for _, genre := range b.catalog {
		for i, name := range genre.Artists {
			if err := ctx.Err(); err != nil {
				return result, err
			}

			artist, err := b.buildPage(ctx, genre, i, name, result)
			if err != nil {
				b.progress(ProgressEvent{Message: fmt.Sprintf("Error writing %s: %v", name, err), Level: LevelError, Slug: artist.Slug})
				return result, err
			}
			result.Pages++
			atomic.AddInt32(&b.donePages, 1)
		}
	}

	if b.dryRun {
		b.progress(ProgressEvent{Message: fmt.Sprintf("Dry run: %d artist pages rendered, nothing written", result.Pages), Level: LevelSuccess})
	} else {
		b.progress(ProgressEvent{Message: fmt.Sprintf("Generated %d artist pages in %s", result.Written, b.settings.OutputDir), Level: LevelSuccess})
	}

	return result, nil
}

// GetProgress returns the number of pages finished and the total.
func (b *Builder) GetProgress() (done, total int32) {
	return atomic.LoadInt32(&b.donePages), b.totalPages
}

// Catalog returns the catalog the builder works on.
func (b *Builder) Catalog() catalog.Catalog {
	return b.catalog
}

// buildPage resolves, renders and writes one catalog entry.
func (b *Builder) buildPage(ctx context.Context, genre catalog.Genre, index int, name string, result *Result) (model.Artist, error) {
	slug := ioutils.Slugify(name)
	override := b.withLibraryAlbums(slug, b.overrides.Get(slug))

	artist := resolver.Resolve(resolver.Input{
		Genre:    genre.Name,
		Name:     name,
		Index:    index,
		Artists:  genre.Artists,
		Override: override,
	})

	if override != nil && override.Image != "" {
		if b.writeImage(ctx, &artist, override.Image) {
			result.Images++
		}
	}

	page := b.renderer.Page(&artist)
	if b.dryRun {
		b.progress(ProgressEvent{Message: fmt.Sprintf("Rendered %s (%d bytes)", artist.Slug, len(page)), Level: LevelVerbose, Slug: artist.Slug})
		return artist, nil
	}

	target := filepath.Join(b.settings.OutputDir, artist.Slug+".html")
	if err := ioutils.WriteFile(ctx, target, []byte(page)); err != nil {
		return artist, err
	}
	result.Written++

	b.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s", target), Level: LevelVerbose, Slug: artist.Slug})
	return artist, nil
}

// withLibraryAlbums fills in albums from the MP3 library when the
// override does not list any. The stored override is never modified.
func (b *Builder) withLibraryAlbums(slug string, o *model.Override) *model.Override {
	if o != nil && o.Albums != nil {
		return o
	}
	albums := b.library.Albums(slug)
	if len(albums) == 0 {
		return o
	}

	merged := model.Override{}
	if o != nil {
		merged = *o
	}
	merged.Albums = albums
	return &merged
}

// writeImage writes the thumbnail for artist and points the page at it.
// Failures are reported as warnings; the page is rendered without a photo.
func (b *Builder) writeImage(ctx context.Context, artist *model.Artist, source string) bool {
	data, err := os.ReadFile(b.overrides.Path(source))
	if err != nil {
		b.progress(ProgressEvent{Message: fmt.Sprintf("Skipping image for %s: %v", artist.Name, err), Level: LevelWarning, Slug: artist.Slug})
		return false
	}

	thumb, err := b.images.Thumbnail(ctx, data, b.settings.ThumbnailSize)
	if err != nil {
		b.progress(ProgressEvent{Message: fmt.Sprintf("Skipping image for %s: %v", artist.Name, err), Level: LevelWarning, Slug: artist.Slug})
		return false
	}

	rel := path.Join(imageDir, artist.Slug+".jpg")
	if !b.dryRun {
		dir := filepath.Join(b.settings.OutputDir, imageDir)
		if err := ioutils.EnsureDir(dir); err != nil {
			b.progress(ProgressEvent{Message: fmt.Sprintf("Skipping image for %s: %v", artist.Name, err), Level: LevelWarning, Slug: artist.Slug})
			return false
		}
		if err := ioutils.WriteFile(ctx, filepath.Join(b.settings.OutputDir, filepath.FromSlash(rel)), thumb); err != nil {
			b.progress(ProgressEvent{Message: fmt.Sprintf("Skipping image for %s: %v", artist.Name, err), Level: LevelWarning, Slug: artist.Slug})
			return false
		}
	}

	artist.Image = rel
	return true
}

func (b *Builder) progress(event ProgressEvent) {
	if b.onProgress != nil {
		b.onProgress(event)
	}
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}
